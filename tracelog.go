// Copyright 2026 The luadata Authors
// SPDX-License-Identifier: MIT

package luadata

import (
	"context"
	"strings"

	"zombiezen.com/go/log"
)

// TraceToLogger returns an [Options.Trace] callback that logs each
// materialization step at debug level through zombiezen.com/go/log's
// package-level Debugf, using the logger carried by ctx.
func TraceToLogger(ctx context.Context) func(TraceEvent) {
	return func(ev TraceEvent) {
		path := "<root>"
		if len(ev.Path) > 0 {
			path = strings.Join(ev.Path, ".")
		}
		log.Debugf(ctx, "materialize %s: %s as %s", path, ev.Value.GoString(), ev.Kind)
	}
}
