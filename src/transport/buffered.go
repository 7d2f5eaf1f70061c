// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package transport

import (
	"io"
	"strings"
	"sync"
	"time"

	"github.com/H0llyW00dzZ/multilog/src/format"
	"github.com/H0llyW00dzZ/multilog/src/internal/helper/gc"
	"github.com/H0llyW00dzZ/multilog/src/level"
)

// BufferedFile is a [File] that coalesces records in memory.
//
// Pending records are written to the stream in call order, in one write, when:
//   - the flush timer fires (every [WithFlushInterval], default one second),
//   - the pending entry count exceeds [WithMaxBufferLength] after an append,
//   - [BufferedFile.Flush] is called,
//   - [BufferedFile.Close] is called.
//
// Delivery is best effort: records pending when a write fails are lost.
type BufferedFile struct {
	File

	// pending and pendingBytes are guarded by File.mu.
	pending      [][]byte
	pendingBytes int

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewBufferedFile creates a BufferedFile transport for path, opens its stream
// and starts the flush timer. The default level is INFO.
func NewBufferedFile(path string, opts ...Option) (*BufferedFile, error) {
	b := &BufferedFile{done: make(chan struct{})}
	if err := b.setup(KindBufferedFile, path, opts); err != nil {
		return nil, err
	}

	b.ticker = time.NewTicker(b.cfg.flushInterval)
	b.wg.Add(1)
	go b.run()

	return b, nil
}

func (b *BufferedFile) run() {
	defer b.wg.Done()
	for {
		select {
		case <-b.ticker.C:
			b.Flush()
		case <-b.done:
			return
		}
	}
}

// Log implements Transport. The record is appended to the pending buffer.
func (b *BufferedFile) Log(l level.Level, args []any, meta *format.Meta) {
	buf := b.Format(l, args, meta)
	if len(buf) == 0 {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		// A closed transport drops the record instead of buffering it.
		b.writeLocked(1, nil)
		return
	}

	b.pending = append(b.pending, buf)
	b.pendingBytes += len(buf)

	if len(b.pending) > b.cfg.maxBufferLength {
		b.flushLocked()
	}
}

// Pending returns the number of records waiting to be flushed.
func (b *BufferedFile) Pending() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return len(b.pending)
}

// Flush writes every pending record to the stream in one call.
// It does nothing when the buffer is empty.
func (b *BufferedFile) Flush() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.flushLocked()
}

func (b *BufferedFile) flushLocked() {
	entries := len(b.pending)
	if entries == 0 {
		return
	}

	if format.IsUTF8(b.cfg.encoding) {
		var sb strings.Builder
		sb.Grow(b.pendingBytes)
		for _, chunk := range b.pending {
			sb.Write(chunk)
		}
		payload := sb.String()

		b.writeLocked(entries, func(w io.Writer) (int64, error) {
			n, err := io.WriteString(w, payload)
			return int64(n), err
		})
	} else {
		// Encoded chunks are joined as raw bytes, never re-decoded as text.
		buf := gc.Default.Get()
		for _, chunk := range b.pending {
			buf.Write(chunk)
		}

		b.writeLocked(entries, buf.WriteTo)

		buf.Reset()
		gc.Default.Put(buf)
	}

	b.cfg.collector.Flushed(b.kind, b.path, entries)

	clear(b.pending)
	b.pending = b.pending[:0]
	b.pendingBytes = 0
}

// Close stops the flush timer, flushes the pending records and closes the
// stream. Calling it again does nothing.
func (b *BufferedFile) Close() error {
	b.stopOnce.Do(func() {
		b.ticker.Stop()
		close(b.done)
	})
	b.wg.Wait()

	b.mu.Lock()
	defer b.mu.Unlock()

	b.flushLocked()
	return b.closeLocked()
}
