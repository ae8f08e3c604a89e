package main

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"golang.org/x/time/rate"

	"fireguard.xyz/fireguard-console/pkg/backendstub"
	"fireguard.xyz/fireguard-console/pkg/common"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file, copy .env.example to .env first if in development")
	}

	var store *backendstub.Store
	stubDbType := os.Getenv(common.EnvKeyFGStubDBType)
	switch stubDbType {
	case "file":
		store = backendstub.GetStore(backendstub.UseSqliteDialector())
	case "memory":
		store = backendstub.GetStore(backendstub.UseMemorySqliteDialector())
	default:
		log.Fatal("Unknown FG_STUB_DB_TYPE: " + stubDbType)
	}

	hostPort := strings.TrimSpace(os.Getenv(common.EnvKeyFGStubHostPort))
	if hostPort == "" {
		hostPort = ":8000"
	}

	logger := common.GetLogger()

	stub := backendstub.NewStubServer(gin.Default(), store)

	if rawRate := os.Getenv(common.EnvKeyFGStubRate); rawRate != "" {
		defaultRate, err := strconv.ParseFloat(rawRate, 64)
		if err != nil {
			log.Fatal("Invalid FG_STUB_RATE, should be a float64 value")
		}
		defaultBurst, err := strconv.ParseInt(os.Getenv(common.EnvKeyFGStubBurst), 10, 64)
		if err != nil {
			log.Fatal("Invalid FG_STUB_BURST, or not set in .env, should be an int value")
		}
		stub.RateLimiterStore = backendstub.NewRateLimiterStore(rate.Limit(defaultRate), int(defaultBurst))
	}

	stub.Setup()

	logger.Info("Starting stub backend on: " + hostPort)
	if err := stub.Server.Run(hostPort); err != nil {
		log.Fatalf("stub backend failed to serve: %v", err)
	}
}
