// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package transport

import (
	"io"
	"os"
	"sync"

	"github.com/H0llyW00dzZ/multilog/src/format"
	"github.com/H0llyW00dzZ/multilog/src/level"
	"github.com/H0llyW00dzZ/multilog/src/metrics"
)

// Console is a transport writing to the process console.
//
// Records at or above the stderr level (default ERROR), and below NONE, go
// to stderr; everything else that passes the threshold goes to stdout.
//
// The default level is NONE. When [LevelEnvKey] holds a valid level name it
// replaces the configured level once, at construction.
type Console struct {
	base

	stderrLevel level.Level

	mu sync.Mutex
}

// NewConsole creates a Console transport.
func NewConsole(opts ...Option) *Console {
	c := &Console{}
	c.init(KindConsole, level.NONE, opts)
	c.stderrLevel = c.cfg.stderrLevel

	if name := os.Getenv(LevelEnvKey); name != "" {
		if l, err := level.Parse(name); err == nil {
			c.SetLevel(l)
		} else {
			c.cfg.reporter.Warn("ignoring console level override", "env", LevelEnvKey, "error", err)
		}
	}

	return c
}

// StderrLevel returns the level from which records go to stderr.
func (c *Console) StderrLevel() level.Level { return c.stderrLevel }

// Sink implements Transport.
func (c *Console) Sink() string { return "stdout/stderr" }

// Log implements Transport.
func (c *Console) Log(l level.Level, args []any, meta *format.Meta) {
	buf := c.Format(l, args, meta)
	if len(buf) == 0 {
		return
	}

	var (
		w    io.Writer = c.cfg.stdout
		sink           = "stdout"
	)
	if l >= c.stderrLevel && l < level.NONE {
		w, sink = c.cfg.stderr, "stderr"
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	n, err := w.Write(buf)
	if err != nil {
		c.cfg.collector.Dropped(c.kind, sink, metrics.ReasonWriteError)
		c.cfg.reporter.Error("console write failed", "sink", sink, "error", err)
		return
	}
	c.cfg.collector.Written(c.kind, sink, n)
}
