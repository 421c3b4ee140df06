package main

import (
	"onebuttonprompt/internal/inject"
	logpkg "onebuttonprompt/internal/log"
	"onebuttonprompt/internal/server"

	"github.com/joho/godotenv"
	"github.com/samber/do"
)

func main() {
	dotenvErr := godotenv.Load()

	logger := logpkg.CreateLogger()
	defer func() { _ = logger.Close() }()

	if dotenvErr != nil {
		logger.Warn("No .env file found, using system environment variables")
	}
	logger.Info("Logger initialized")

	injector := inject.Setup(logger)
	defer func() {
		if err := injector.Shutdown(); err != nil {
			logger.Error("Shutdown error: %v", err)
		}
	}()

	srv, err := do.Invoke[*server.Server](injector)
	if err != nil {
		logger.Fatal("Failed to create server: %v", err)
	}

	if err := srv.Run(); err != nil {
		logger.Fatal("Server error: %v", err)
	}
}
