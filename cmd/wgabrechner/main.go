package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/JonaJoost/wg-abrechner/internal/commands"
	"github.com/JonaJoost/wg-abrechner/pkg/logging"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("loading .env", "error", err)
	}
	logging.Setup()

	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
