package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"horizonfetch/internal/collector"
	"horizonfetch/internal/config"
	"horizonfetch/internal/display"
	"horizonfetch/internal/logging"
)

func main() {
	logging.Setup(os.Stderr, os.Getenv(logging.EnvLevel))

	if err := run(context.Background(), os.Stdout); err != nil {
		slog.Error("Error displaying info", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, out io.Writer) error {
	cfg := config.LoadDefault()
	info := collector.New().Gather(ctx)

	w := bufio.NewWriter(out)
	if err := display.Render(w, cfg, info); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	return nil
}
