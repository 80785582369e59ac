// Package main runs the pizzeria chat assistant.
package main

import (
	"errors"
	"os"

	"github.com/burdiyan/go/mainutil"
	"github.com/peterbourgon/ff/v4"

	configpkg "github.com/minhyannv/pizzeria-agent-go/pkg/config"
	loggerpkg "github.com/minhyannv/pizzeria-agent-go/pkg/logger"
)

func main() {
	mainutil.Run(func() error {
		ctx := mainutil.TrapSignals()

		cfg, err := parseCLIConfig(os.Args[1:])
		if err != nil {
			if errors.Is(err, ff.ErrHelp) {
				return nil
			}
			return err
		}
		if err := configpkg.Validate(cfg); err != nil {
			return err
		}

		appLogger, err := loggerpkg.New(os.Stderr, cfg.LogLevel)
		if err != nil {
			return err
		}

		s, err := newSession(ctx, cfg, appLogger)
		if err != nil {
			return err
		}

		return runREPL(ctx, s, replOptions{
			Verbose: cfg.Verbose,
			Logger:  appLogger,
		}, os.Stdin, os.Stdout)
	})
}
