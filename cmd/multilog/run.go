// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/H0llyW00dzZ/multilog/src/cli"
	"github.com/H0llyW00dzZ/multilog/src/level"
	"github.com/H0llyW00dzZ/multilog/src/logger"
	verpkg "github.com/H0llyW00dzZ/multilog/src/version"
)

var version string // set by ldflags or defaults to imported version

func init() {
	if version == "" {
		version = verpkg.Version
	}
}

func main() {
	// Console logger for the tool's own messages
	opts := logger.DefaultOptions()
	opts.Level = level.INFO
	opts.ConsoleFormatter = nil
	log, err := logger.NewConsole(opts)
	if err != nil {
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	done := make(chan error, 1)

	// Run the CLI in a separate goroutine
	go func() {
		done <- cli.Execute(ctx, version)
	}()

	select {
	case err := <-done:
		if err != nil {
			log.Error("Error:", err.Error())
			os.Exit(1)
		}
	case <-ctx.Done():
		log.Warn("Operation cancelled by signal. Exiting...")
		// Let emit close the registry so buffered records are flushed
		select {
		case <-done:
		case <-time.After(2 * time.Second):
		}
		os.Exit(130) // Standard exit code for SIGINT
	}
}
