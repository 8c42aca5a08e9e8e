// cmd/epijinn/main.go
package main

import (
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"

	"github.com/Edinburgh-Genome-Foundry/EpiJinn/internal/cli"
	"github.com/Edinburgh-Genome-Foundry/EpiJinn/internal/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	level := zapcore.InfoLevel
	if os.Getenv("EPIJINN_DEBUG") != "" {
		level = zapcore.DebugLevel
	}
	if err := logger.Init(level); err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	// .env is optional; environment variables win either way.
	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env found, using local environment")
	}

	if err := cli.Execute(); err != nil {
		logger.Error(err.Error())
		return 1
	}
	return 0
}
