// Package logger builds configured slog loggers with JSON or text output,
// level filtering, and static attributes, either programmatically via
// functional options or from environment-driven Config.
package logger
