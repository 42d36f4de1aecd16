// ABOUTME: CLI entry point for gridwalk with terminal crash recovery
// ABOUTME: Parses flags, loads config, enters raw mode, and runs the grid loop

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mauromedda/gridwalk/internal/app"
	"github.com/mauromedda/gridwalk/internal/config"
	"github.com/mauromedda/gridwalk/internal/log"
	"github.com/mauromedda/gridwalk/pkg/tui/terminal"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	args, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(2)
	}

	if args.version {
		fmt.Printf("gridwalk %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	if err := run(args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// run loads settings, sizes the grid, and runs the loop in raw mode.
// The terminal is restored before run returns.
func run(args cliArgs) error {
	if args.verbose {
		log.SetLevel(log.LevelDebug)
	}

	cfg, err := config.Load(args.configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if args.logFile != "" {
		cfg.LogFile = args.logFile
	}

	pt := terminal.NewProcessTerminal()
	defer pt.Close()
	defer terminal.RestoreOnPanic(pt)

	dims, err := terminal.QuerySize(pt)
	if err != nil {
		log.Warn("%v; using %s", err, cfg.FallbackSize)
		dims = cfg.FallbackSize
	}

	restoreLog, err := redirectLog(cfg.LogFile)
	if err != nil {
		return err
	}
	defer restoreLog()

	log.Debug("starting: %s grid, escape timeout %v", dims, cfg.EscapeTimeout)

	a := app.New(pt, terminal.NewGeometry(dims), app.Options{
		EscapeTimeout: cfg.EscapeTimeout,
		MaxReadErrors: cfg.MaxReadErrors,
		CellGlyph:     cfg.CellGlyph,
		Highlight:     cfg.Highlight,
	})

	return terminal.WithRawMode(pt, func() error {
		return a.Run(context.Background())
	})
}

// redirectLog keeps log lines out of the frame: they go to path when set,
// otherwise nowhere. The returned func puts the previous output back.
func redirectLog(path string) (func(), error) {
	if path == "" {
		prev := log.SetOutput(io.Discard)
		return func() { log.SetOutput(prev) }, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	prev := log.SetOutput(f)
	return func() {
		log.SetOutput(prev)
		_ = f.Close()
	}, nil
}
