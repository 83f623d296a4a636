package main

import (
	"dualzone/config"
	"dualzone/di"
	"dualzone/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title Dualzone API
// @version 1.0
// @description Current and storage timezone conversion service.
// @BasePath /
func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)

	logger.SetLogLevel(cfg)

	http, err := di.InitializeService()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize service")
	}

	http.Serve()
}
