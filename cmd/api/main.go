package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/jmfrancisco/idlink-backend/internal/pkg/logger"
	"github.com/jmfrancisco/idlink-backend/internal/server"
)

// @title IDLink API
// @version 1.0
// @description Campus ID application tracking backend

// @contact.name API Support
// @contact.email support@idlink.local

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:5000
// @BasePath /api
// @schemes http https

func main() {
	// A missing .env file is fine; the config layer falls back to
	// process env and config.yaml.
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg("No .env file found, using process environment")
	}

	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
