package console

import (
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"fireguard.xyz/fireguard-console/pkg/backend"
	"fireguard.xyz/fireguard-console/pkg/common"
	"fireguard.xyz/fireguard-console/pkg/models"
)

const StatsPollInterval = 30 * time.Second

// StatsPoller keeps the daily detection series for the chart. Statistics are
// cosmetic: a failed poll keeps the prior series and surfaces no error state.
type StatsPoller struct {
	Interval time.Duration

	api backend.API

	mu    sync.Mutex
	stats []models.Stat

	inFlight atomic.Bool
	logger   *zap.Logger
}

func NewStatsPoller(api backend.API) *StatsPoller {
	return &StatsPoller{
		Interval: StatsPollInterval,
		api:      api,
		logger: common.GetLoggerWith(
			common.LoggerNameConsoleCore,
			zap.String(common.LoggerFieldCategory, common.LoggerCategoryStats),
		),
	}
}

func (p *StatsPoller) Run(wg *sync.WaitGroup, kill chan struct{}) {
	wg.Add(1)
	defer wg.Done()

	ticker := time.NewTicker(p.Interval)
	defer ticker.Stop()

	p.logger.Info("stats poller started", zap.Duration("interval", p.Interval))

	p.Poll()
	for {
		select {
		case <-kill:
			p.logger.Info("stats poller stopped")
			return
		case <-ticker.C:
			p.Poll()
		}
	}
}

func (p *StatsPoller) Poll() {
	if !p.inFlight.CompareAndSwap(false, true) {
		return
	}
	defer p.inFlight.Store(false)

	stats, err := p.api.FetchStats()
	if err != nil {
		p.logger.Debug("stats poll failed, keeping prior series", zap.Error(err))
		return
	}

	p.mu.Lock()
	p.stats = stats
	p.mu.Unlock()
}

// Stats returns a copy of the held series, ascending by date as delivered.
func (p *StatsPoller) Stats() []models.Stat {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]models.Stat, len(p.stats))
	copy(out, p.stats)
	return out
}
