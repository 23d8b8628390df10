// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package binutils

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	luxlog "github.com/luxfi/log"
	"go.uber.org/zap"
)

// InterruptContext returns a context cancelled on SIGINT or SIGTERM, which
// stops any running external command so deferred cleanup can run.
func InterruptContext(parent context.Context, log luxlog.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		defer signal.Stop(sigc)
		select {
		case sig := <-sigc:
			log.Warn("signal received; stopping", zap.String("signal", sig.String()))
			cancel()
		case <-ctx.Done():
		}
	}()
	return ctx, cancel
}
