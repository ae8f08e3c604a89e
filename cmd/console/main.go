package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"fireguard.xyz/fireguard-console/pkg/backend"
	"fireguard.xyz/fireguard-console/pkg/common"
	"fireguard.xyz/fireguard-console/pkg/console"
	"fireguard.xyz/fireguard-console/pkg/i18n"
	"fireguard.xyz/fireguard-console/pkg/models"
)

// terminalChime rings the terminal bell for high-confidence alerts.
type terminalChime struct{}

func (terminalChime) Play() {
	fmt.Print("\a")
}

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file, copy .env.example to .env first if in development")
	}

	origin := strings.TrimSpace(os.Getenv(common.EnvKeyFGBackendOrigin))
	if origin == "" {
		// fallback to the backend's default port
		origin = "http://localhost:8000"
	}

	logger := common.GetLogger()
	logger.Info("Starting console against backend: " + origin)

	client := backend.NewClient(origin)

	locale := i18n.NewProvider(client)
	locale.Hydrate()

	core := console.New(client, locale, console.Opts{
		Chime: terminalChime{},
		ConfirmRemove: func(cam models.Camera) bool {
			// headless runtime has nobody to ask; log and proceed
			logger.Info("confirming camera removal", zap.Int("id", cam.ID), zap.String("name", cam.Name))
			return true
		},
	})

	// initial hydration; both are retried by user action or the pollers, so
	// failures here only log
	if err := core.Cameras.Refresh(); err != nil {
		logger.Warn("initial camera list failed", zap.Error(err))
	}
	if err := core.Settings.Load(); err != nil {
		logger.Warn("initial settings load failed", zap.Error(err))
	}

	wg := &sync.WaitGroup{}
	stopPolling := core.StartPolling(wg)

	summaryKill := make(chan struct{})
	wg.Add(1)
	go func() {
		defer wg.Done()
		ticker := time.NewTicker(10 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-summaryKill:
				return
			case <-ticker.C:
				state := core.Snapshot()
				logger.Info("dashboard state",
					zap.String("language", string(state.Language)),
					zap.Bool("degraded", state.Degraded),
					zap.Int("alerts", state.AlertCount),
					zap.Int("cameras", len(state.Cameras)),
					zap.Int("total_events", state.TotalEvents))
			}
		}
	}()

	killSig := make(chan os.Signal, 1)
	signal.Notify(killSig, syscall.SIGINT, syscall.SIGQUIT, syscall.SIGTERM)
	<-killSig

	logger.Info("Caught kill signal, shutting down")
	stopPolling()
	close(summaryKill)
	wg.Wait()

	logger.Info("All pollers exited")
}
