package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/Purvesh8762/user-management/internal/client/cli"
	"github.com/Purvesh8762/user-management/internal/client/config"
	"github.com/Purvesh8762/user-management/internal/logging"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewTextLogger(os.Stderr, slog.LevelInfo)

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)
}
