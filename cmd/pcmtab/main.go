// SPDX-License-Identifier: EPL-2.0

// Command pcmtab converts a directory of audio files into C++ headers
// holding PCM sample tables, plus an index header that registers them.
//
// Usage:
//
//	pcmtab [flags] <input_dir> <output_dir>
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
