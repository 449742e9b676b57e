package main

import (
	"flag"
	"os"

	"github.com/joho/godotenv"

	"github.com/nutriweek/nutriweek/internal/logger"
	"github.com/nutriweek/nutriweek/plannerservice"
)

func main() {
	// Optional db-driver flag override (sqlite | postgres)
	dbDriver := flag.String("db-driver", "", "Override NUTRIWEEK_DB_DRIVER (sqlite, postgres)")
	flag.Parse()

	log := logger.New("nutriweek")

	// Local development convenience; a missing .env file is not an error.
	if err := godotenv.Load(); err == nil {
		log.Info().Msg("Loaded environment from .env")
	}
	if *dbDriver != "" {
		os.Setenv("NUTRIWEEK_DB_DRIVER", *dbDriver)
	}

	if err := plannerservice.Run(); err != nil {
		log.Fatal().Err(err).Msg("Planner service failed")
	}
}
