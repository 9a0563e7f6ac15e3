package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/nathoo/labyrinth/cli"
	"github.com/nathoo/labyrinth/config"
	"github.com/nathoo/labyrinth/content"
	"github.com/nathoo/labyrinth/engine"
	"github.com/nathoo/labyrinth/engine/state"
	"github.com/nathoo/labyrinth/loader"
	"github.com/nathoo/labyrinth/logging"
	"github.com/nathoo/labyrinth/tui"
)

func runGame(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if err := applyFlags(cmd, cfg); err != nil {
		return err
	}

	logger, closer, err := logging.Setup(cfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	defs, err := loadWorld(cfg.World)
	if err != nil {
		logging.WithError(logger, err).Error("world failed to load", "world", cfg.World)
		return fmt.Errorf("loading world: %w", err)
	}
	logger.Info("session started", "title", defs.Game.Title, "rooms", len(defs.Rooms))

	eng := engine.New(defs)
	eng.Logger = logger

	// Script mode: read commands from the file, force plain, echo commands.
	if scriptFile != "" {
		f, err := os.Open(scriptFile)
		if err != nil {
			return fmt.Errorf("opening script: %w", err)
		}
		defer f.Close()
		c := cli.New(eng)
		c.In = f
		c.EchoInput = true
		c.Trace = cfg.Trace
		c.Run()
		return nil
	}

	// Use plain CLI if requested or stdout is not a terminal.
	if cfg.Plain || !isTerminal() {
		c := cli.New(eng)
		c.Trace = cfg.Trace
		c.Run()
		return nil
	}

	return tui.Run(eng)
}

// applyFlags lays explicitly set command line flags over cfg.
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	f := cmd.Flags()
	if f.Changed("world") {
		cfg.World = worldDir
	}
	if f.Changed("plain") {
		cfg.Plain = plain
	}
	if f.Changed("trace") {
		cfg.Trace = trace
	}
	if f.Changed("log-file") {
		cfg.LogFile = logFile
	}
	if f.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	return cfg.Validate()
}

// loadWorld compiles the Lua world in dir, or the built-in labyrinth when
// dir is empty.
func loadWorld(dir string) (*state.Defs, error) {
	if dir == "" {
		slog.Debug("using built-in labyrinth")
		return loader.LoadFS(content.FS, content.Dir)
	}
	return loader.Load(dir)
}

// isTerminal returns true if stdout is a terminal (not piped/redirected).
func isTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
