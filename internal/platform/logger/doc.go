// Package logger provides structured logging for the application.
//
// It builds a JSON log/slog logger from the server configuration and carries
// request-scoped loggers through context.Context so handlers, services and
// stores log with the same trace attributes.
package logger
