package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"hotel_reserva/internal/adapters/cli"
	"hotel_reserva/internal/adapters/observability"
	"hotel_reserva/internal/app"
	"hotel_reserva/internal/shared"
	"hotel_reserva/internal/storage/jsonfile"
)

func main() {
	_ = godotenv.Load()
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	store := jsonfile.New(cfg.DataDir)
	svc := app.NewService(store)

	log.Info().Str("data_dir", cfg.DataDir).Msg("reservation system starting")

	menu := cli.New(svc, os.Stdin, os.Stdout)
	if err := menu.Run(); err != nil {
		log.Fatal().Err(err).Msg("menu loop failed")
	}
}
