package queue

import (
	"strings"
	"time"
)

// Status represents the lifecycle of a queue item.
type Status string

const (
	StatusPending   Status = "pending"
	StatusProbing   Status = "probing"
	StatusProbed    Status = "probed"
	StatusStyling   Status = "styling"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

var allStatuses = []Status{
	StatusPending,
	StatusProbing,
	StatusProbed,
	StatusStyling,
	StatusCompleted,
	StatusFailed,
}

var statusSet = func() map[Status]struct{} {
	set := make(map[Status]struct{}, len(allStatuses))
	for _, status := range allStatuses {
		set[status] = struct{}{}
	}
	return set
}()

var processingStatuses = map[Status]struct{}{
	StatusProbing: {},
	StatusStyling: {},
}

type statusTransition struct {
	from Status
	to   Status
}

// Stuck in-flight items roll back to the state that re-runs their stage.
var stageRollbackTransitions = []statusTransition{
	{from: StatusProbing, to: StatusPending},
	{from: StatusStyling, to: StatusProbed},
}

// Item represents a queue item persisted in SQLite. SourcePath is the
// subtitle file; VideoPath optionally names the video whose geometry drives
// the margins. StatsJSON holds the pipeline result for completed items.
type Item struct {
	ID              int64
	SourcePath      string
	VideoPath       string
	OutputPath      string
	Title           string
	Status          Status
	Width           int
	Height          int
	StatsJSON       string
	ErrorMessage    string
	CreatedAt       time.Time
	UpdatedAt       time.Time
	ProgressStage   string
	ProgressPercent float64
	ProgressMessage string
}

// AllStatuses returns the ordered list of known statuses.
func AllStatuses() []Status {
	cp := make([]Status, len(allStatuses))
	copy(cp, allStatuses)
	return cp
}

// ParseStatus converts a string into a known Status.
func ParseStatus(value string) (Status, bool) {
	normalized := Status(strings.ToLower(strings.TrimSpace(value)))
	if normalized == "" {
		return "", false
	}
	_, ok := statusSet[normalized]
	return normalized, ok
}

// IsProcessing returns true when the status reflects an in-flight operation.
func (i Item) IsProcessing() bool {
	return IsProcessingStatus(i.Status)
}

// IsProcessingStatus reports whether a status reflects an in-flight operation.
func IsProcessingStatus(status Status) bool {
	_, ok := processingStatuses[status]
	return ok
}

// SetProgress updates the progress fields together.
func (i *Item) SetProgress(stage, message string, percent float64) {
	i.ProgressStage = stage
	i.ProgressMessage = message
	i.ProgressPercent = percent
}

// SetFailed marks the item as failed with the given error message.
func (i *Item) SetFailed(message string) {
	i.Status = StatusFailed
	i.ErrorMessage = message
	i.ProgressStage = "Failed"
	i.ProgressMessage = message
	i.ProgressPercent = 0
}

// HealthSummary describes aggregated queue counts per key lifecycle states.
type HealthSummary struct {
	Total      int
	Pending    int
	Processing int
	Failed     int
	Completed  int
}
