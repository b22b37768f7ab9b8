package workflow

import (
	"log/slog"
	"sync"
	"time"

	"substation/internal/config"
	"substation/internal/logging"
	"substation/internal/notifications"
	"substation/internal/queue"
	"substation/internal/stage"
)

type pipelineStage struct {
	name             string
	handler          stage.Handler
	startStatus      queue.Status
	processingStatus queue.Status
	doneStatus       queue.Status
}

// StageSet bundles the concrete workflow handlers the manager orchestrates.
type StageSet struct {
	Prober stage.Handler
	Styler stage.Handler
}

// Manager coordinates queue processing using registered stage handlers.
type Manager struct {
	cfg          *config.Config
	store        *queue.Store
	logger       *slog.Logger
	notifier     notifications.Service
	pollInterval time.Duration

	stages       []pipelineStage
	stageByStart map[queue.Status]pipelineStage
	statusOrder  []queue.Status

	mu       sync.RWMutex
	running  bool
	lastErr  error
	lastItem *queue.Item

	batchActive bool
	batchStart  time.Time
	processed   int
	failed      int
}

// NewManager constructs a workflow manager over the given stage handlers.
func NewManager(cfg *config.Config, store *queue.Store, logger *slog.Logger, notifier notifications.Service, stages StageSet) *Manager {
	if logger == nil {
		logger = logging.NewNop()
	}
	if notifier == nil {
		notifier = notifications.NewService(cfg)
	}
	m := &Manager{
		cfg:          cfg,
		store:        store,
		logger:       logging.WithComponent(logger, "workflow"),
		notifier:     notifier,
		pollInterval: time.Duration(cfg.Workflow.QueuePollInterval) * time.Second,
		stages: []pipelineStage{
			{
				name:             "probing",
				handler:          stages.Prober,
				startStatus:      queue.StatusPending,
				processingStatus: queue.StatusProbing,
				doneStatus:       queue.StatusProbed,
			},
			{
				name:             "styling",
				handler:          stages.Styler,
				startStatus:      queue.StatusProbed,
				processingStatus: queue.StatusStyling,
				doneStatus:       queue.StatusCompleted,
			},
		},
	}
	m.stageByStart = make(map[queue.Status]pipelineStage, len(m.stages))
	m.statusOrder = make([]queue.Status, 0, len(m.stages))
	for _, stg := range m.stages {
		m.stageByStart[stg.startStatus] = stg
		m.statusOrder = append(m.statusOrder, stg.startStatus)
	}
	return m
}

func (m *Manager) setLastError(err error) {
	m.mu.Lock()
	m.lastErr = err
	m.mu.Unlock()
}

func (m *Manager) setLastItem(item *queue.Item) {
	m.mu.Lock()
	if item != nil {
		cp := *item
		m.lastItem = &cp
	} else {
		m.lastItem = nil
	}
	m.mu.Unlock()
}

func (m *Manager) setRunning(running bool) {
	m.mu.Lock()
	m.running = running
	m.mu.Unlock()
}
