package console

import (
	"sync"

	"go.uber.org/zap"

	"fireguard.xyz/fireguard-console/pkg/backend"
	"fireguard.xyz/fireguard-console/pkg/common"
	"fireguard.xyz/fireguard-console/pkg/models"
)

// HistoryFetchLimit caps how many archived events one session requests.
const HistoryFetchLimit = 100

// HistorySession is the modal-scoped view of the event archive. It fetches
// once per Open, never on a timer; Close discards everything.
type HistorySession struct {
	api backend.API

	mu       sync.Mutex
	open     bool
	events   []models.HistoryEvent
	selected string

	logger *zap.Logger
}

func NewHistorySession(api backend.API) *HistorySession {
	return &HistorySession{
		api: api,
		logger: common.GetLoggerWith(
			common.LoggerNameConsoleCore,
			zap.String(common.LoggerFieldCategory, common.LoggerCategoryHistory),
		),
	}
}

// Open marks the session active and fetches the bounded event log. A fetch
// failure leaves the session open with an empty log; reopening re-fetches.
func (h *HistorySession) Open() error {
	h.mu.Lock()
	h.open = true
	h.events = nil
	h.selected = ""
	h.mu.Unlock()

	events, err := h.api.FetchHistory(HistoryFetchLimit)
	if err != nil {
		h.logger.Warn("history fetch failed", zap.Error(err))
		return err
	}

	h.mu.Lock()
	h.events = events
	h.mu.Unlock()
	return nil
}

func (h *HistorySession) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.open = false
	h.events = nil
	h.selected = ""
}

func (h *HistorySession) IsOpen() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.open
}

func (h *HistorySession) Events() []models.HistoryEvent {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]models.HistoryEvent, len(h.events))
	copy(out, h.events)
	return out
}

// SelectSnapshot records the chosen snapshot path. Purely local state used
// only to build an image URL; no network call is made.
func (h *HistorySession) SelectSnapshot(path string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.open {
		return
	}
	h.selected = path
}

func (h *HistorySession) SelectedSnapshot() (string, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.selected, h.selected != ""
}

// SelectedSnapshotURL resolves the selection against the backend origin.
func (h *HistorySession) SelectedSnapshotURL() string {
	path, ok := h.SelectedSnapshot()
	if !ok {
		return ""
	}
	return h.api.SnapshotURL(path)
}
