// Package logging builds the log/slog loggers shared by the CLI and the
// request executor.
package logging
