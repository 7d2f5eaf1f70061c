// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package transport provides the output channels a logger writes to.
//
// A [Transport] owns its enabled flag, its severity threshold and the write
// side effect. Formatting is delegated to [format.Format]; the transport only
// decides where the resulting bytes go.
//
// Implementations:
//
//   - [File] appends to a file and reopens the stream in place when a write fails.
//   - [BufferedFile] coalesces writes in memory and flushes them on a timer,
//     when the pending entry count exceeds a limit, or on [BufferedFile.Close].
//   - [Console] splits records between stdout and stderr by severity.
//   - [Writer] writes to any [io.Writer].
//
// Transports are configured with functional options merged over per-kind
// defaults:
//
//	t, err := transport.NewBufferedFile("/var/log/app/app.log",
//		transport.WithLevel(level.INFO),
//		transport.WithFormatter(format.DefaultFormatter),
//	)
//	if err != nil {
//		return err
//	}
//	defer t.Close()
//
// Failures after construction are never returned to the caller of Log.
// They are reported to a [diag.Reporter] side channel and counted through a
// [metrics.Collector].
package transport
