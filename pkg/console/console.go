// Package console implements the client-side session layer of the fire/smoke
// monitoring dashboard: the controllers and pollers that reconcile local UI
// state against the remote detection backend. The backend is the sole source
// of durable truth; everything held here is an in-memory reflection that a
// restart fully re-hydrates.
package console

import (
	"sync"

	"fireguard.xyz/fireguard-console/pkg/backend"
	"fireguard.xyz/fireguard-console/pkg/i18n"
)

// Console aggregates one instance of every session component. Components
// never read each other's state; cross-component consistency happens only by
// re-fetching from the backend after mutations.
type Console struct {
	Backend  backend.API
	Locale   *i18n.Provider
	Alerts   *AlertSynchronizer
	Cameras  *CameraController
	Settings *SettingsController
	Stats    *StatsPoller
	History  *HistorySession
}

type Opts struct {
	// Chime receives the audible alert; nil disables sound entirely.
	Chime Chime
	// ConfirmRemove gates camera deletion; nil skips the gate.
	ConfirmRemove ConfirmFunc
}

func New(api backend.API, locale *i18n.Provider, opts Opts) *Console {
	return &Console{
		Backend:  api,
		Locale:   locale,
		Alerts:   NewAlertSynchronizer(api, opts.Chime),
		Cameras:  NewCameraController(api, opts.ConfirmRemove),
		Settings: NewSettingsController(api),
		Stats:    NewStatsPoller(api),
		History:  NewHistorySession(api),
	}
}

// StartPolling launches the two recurring pollers and returns their
// cancellation handle. Stopping is idempotent; callers wait on wg for the
// loops to drain.
func (c *Console) StartPolling(wg *sync.WaitGroup) (stop func()) {
	alertKill := make(chan struct{})
	statsKill := make(chan struct{})

	go c.Alerts.Run(wg, alertKill)
	go c.Stats.Run(wg, statsKill)

	var once sync.Once
	return func() {
		once.Do(func() {
			close(alertKill)
			close(statsKill)
		})
	}
}
