package main

import (
	"os"

	"github.com/harutok/practiceshare/internal/pkg/logger"
	"github.com/harutok/practiceshare/internal/server"
)

// @title PracticeShare API
// @version 1.0
// @description REST API for sharing teaching practice records. Educators publish practices, the public browses, comments, rates and contacts educators.

// @contact.name API Support
// @contact.email support@practiceshare.app

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token with Bearer prefix, e.g. "Bearer {token}"

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server terminated with error")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
