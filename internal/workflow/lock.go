package workflow

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"

	"substation/internal/config"
)

// ErrAlreadyRunning indicates another process holds the run lock.
var ErrAlreadyRunning = errors.New("another substation run is already in progress")

// AcquireLock takes the single-instance run lock. The caller must Unlock the
// returned lock when processing finishes.
func AcquireLock(cfg *config.Config) (*flock.Flock, error) {
	lockPath := filepath.Join(cfg.Paths.DatabaseDir, "substation.lock")
	lock := flock.New(lockPath)
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return nil, ErrAlreadyRunning
	}
	return lock, nil
}
