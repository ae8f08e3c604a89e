package console

import (
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"fireguard.xyz/fireguard-console/pkg/backend"
	"fireguard.xyz/fireguard-console/pkg/common"
	"fireguard.xyz/fireguard-console/pkg/models"
)

const (
	AlertPollInterval = 1 * time.Second

	// head-of-list confidence above which the chime rings
	chimeConfidenceThreshold = 0.6
)

// SyncState describes the alert feed: Synced means the last poll succeeded,
// Degraded means it failed and the held list is stale but still displayed.
type SyncState string

const (
	StateSynced   SyncState = "synced"
	StateDegraded SyncState = "degraded"
)

// Chime is the audible-alert sink. Play is invoked at most once per poll tick.
type Chime interface {
	Play()
}

// AlertSynchronizer keeps the live alert list in sync with the backend feed
// on a fixed cadence. There is no backoff: the same interval continues while
// Degraded, so recovery is noticed within one tick of the backend returning.
type AlertSynchronizer struct {
	Interval time.Duration

	api   backend.API
	chime Chime

	mu           sync.Mutex
	alerts       []models.Alert
	state        SyncState
	soundEnabled bool

	inFlight atomic.Bool
	failLog  *rate.Limiter
	logger   *zap.Logger
}

func NewAlertSynchronizer(api backend.API, chime Chime) *AlertSynchronizer {
	return &AlertSynchronizer{
		Interval: AlertPollInterval,
		api:      api,
		chime:    chime,
		state:    StateSynced,
		// at the 1s cadence a dead backend would log every tick; cap it
		failLog: rate.NewLimiter(rate.Every(30*time.Second), 1),
		logger: common.GetLoggerWith(
			common.LoggerNameConsoleCore,
			zap.String(common.LoggerFieldCategory, common.LoggerCategoryAlerts),
		),
	}
}

// Run polls until kill is closed. The ticker is owned here and stopped on the
// way out, so no timer outlives the loop.
func (s *AlertSynchronizer) Run(wg *sync.WaitGroup, kill chan struct{}) {
	wg.Add(1)
	defer wg.Done()

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	s.logger.Info("alert synchronizer started", zap.Duration("interval", s.Interval))

	s.Poll()
	for {
		select {
		case <-kill:
			s.logger.Info("alert synchronizer stopped")
			return
		case <-ticker.C:
			s.Poll()
		}
	}
}

// Poll fetches the feed once. On success the held list is replaced wholesale,
// never merged; on failure the list is left untouched and only the state
// flips to Degraded.
func (s *AlertSynchronizer) Poll() {
	if !s.inFlight.CompareAndSwap(false, true) {
		// previous poll still in flight, skip this tick
		return
	}
	defer s.inFlight.Store(false)

	alerts, err := s.api.FetchAlerts()
	if err != nil {
		s.mu.Lock()
		s.state = StateDegraded
		s.mu.Unlock()

		if s.failLog.Allow() {
			s.logger.Warn("alert poll failed, keeping stale list", zap.Error(err))
		}
		return
	}

	s.mu.Lock()
	s.alerts = alerts
	s.state = StateSynced
	ring := len(alerts) > 0 && s.soundEnabled && alerts[0].Confidence > chimeConfidenceThreshold
	s.mu.Unlock()

	// Rings again on every tick the head entry stays above threshold. That
	// matches the original panel; see DESIGN.md before changing it.
	if ring && s.chime != nil {
		s.chime.Play()
	}
}

// Alerts returns a copy of the held list, newest first as delivered.
func (s *AlertSynchronizer) Alerts() []models.Alert {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Alert, len(s.alerts))
	copy(out, s.alerts)
	return out
}

func (s *AlertSynchronizer) State() SyncState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *AlertSynchronizer) SetSoundEnabled(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.soundEnabled = enabled
}

func (s *AlertSynchronizer) SoundEnabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.soundEnabled
}
