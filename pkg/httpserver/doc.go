// Package httpserver provides a lightweight wrapper around net/http that adds
// graceful shutdown, configurable server timeouts, and structured logging via
// slog.
//
// Construction is done through New or NewFromConfig together with Option
// helpers such as WithAddr and WithLogger. Run blocks until the context is
// cancelled or an interrupt/TERM signal is received, then shuts the server
// down with a configurable deadline. Public errors are wrapped with the
// ErrStart and ErrShutdown sentinels so they can be inspected with errors.Is.
package httpserver
