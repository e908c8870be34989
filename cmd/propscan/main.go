package main

import (
	"log/slog"
	"os"

	"github.com/propscan/propscan/internal/cli"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := cli.Execute(); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}
