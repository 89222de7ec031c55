package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/onedate/onedate/internal/cli"
	"github.com/onedate/onedate/internal/config"
	"github.com/onedate/onedate/internal/logging"
)

func main() {
	ctx := context.Background()
	cfg := config.LoadConfig()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer app.Close()

	app.Run(ctx)
}
