// Package logging provides structured logging for mystore.
//
// It wraps a global zap logger with a few helpers for the events the
// dashboard cares about: store mutations, screen transitions and view
// recomputation.
//
// Logging is silent by default. Set MYSTORE_LOG_LEVEL (or pass --log-level)
// to enable it. Because the dashboard draws on the terminal, logs should be
// pointed at a file:
//
//	if err := logging.Initialize(logging.Options{Level: "debug", File: "/tmp/mystore.log"}); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
//	logging.LogStoreMutation("add", p.ID, idx)
package logging
