package main

import (
	"os"

	"github.com/studymind/studymind/internal/pkg/logger"
	"github.com/studymind/studymind/internal/server"
)

// @title StudyMind API
// @version 1.0
// @description API for the StudyMind study-notes backend

// @host localhost:8080
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
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
