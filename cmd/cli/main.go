package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/teenbridge/skillbridge/internal/cli"
	"github.com/teenbridge/skillbridge/internal/config"
	"github.com/teenbridge/skillbridge/internal/logging"
)

func main() {

	cfg := config.LoadConfig()
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("%v", err)
	}
}
