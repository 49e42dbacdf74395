package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"

	"shootingrange/internal/game"
	"shootingrange/internal/sim"
)

func main() {
	level := slog.LevelInfo
	if os.Getenv("RANGE_DEBUG") != "" {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})).
		With("session", uuid.NewString())
	slog.SetDefault(logger)

	// Seed from environment or clock.
	seed := uint64(time.Now().UnixNano())
	if s := os.Getenv("RANGE_SEED"); s != "" {
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			slog.Warn("ignoring invalid RANGE_SEED", "value", s, "err", err)
		} else {
			seed = v
		}
	}

	if err := game.RunDesktop(logger, sim.DefaultConfig(), seed); err != nil {
		slog.Error("game failed to load", "err", err)
		fmt.Fprintf(os.Stderr, "Game Failed to Load\nPlease restart and try again.\nError: %v\n", err)
		os.Exit(1)
	}
}
