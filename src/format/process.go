// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package format

import (
	"os"
	"sync"
	"time"
)

// Process carries the process facts stamped on every formatted record.
type Process struct {
	PID      int
	Hostname string
	// Now returns the record time. A nil Now means [time.Now].
	Now func() time.Time
}

// now returns the current time through the configured clock.
func (p *Process) now() time.Time {
	if p == nil || p.Now == nil {
		return time.Now()
	}
	return p.Now()
}

var (
	processOnce    sync.Once
	defaultProcess *Process
)

// DefaultProcess returns the Process describing the running program.
// The pid and hostname are captured once.
func DefaultProcess() *Process {
	processOnce.Do(func() {
		hostname, err := os.Hostname()
		if err != nil {
			hostname = "unknown"
		}
		defaultProcess = &Process{PID: os.Getpid(), Hostname: hostname}
	})
	return defaultProcess
}
