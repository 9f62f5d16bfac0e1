// Package log provides gitmsg's structured logging facade.
//
// # Overview
//
// The package exposes a small Logger interface with leveled methods and a
// Field type for structured context. Internally it is backed by Go's
// standard library slog via a bridge handler that routes records through a
// Formatter/Output pipeline, so output shape stays consistent regardless of
// how a record entered the logger.
//
// Quick start
//
//	l := log.NewLogger(
//	    log.WithLevel(log.InfoLevel),
//	    log.WithFormatter(&log.TextFormatter{}),
//	    log.WithOutput(log.NewConsoleOutput()),
//	)
//	l = l.With(log.Component("trailers"))
//	l.Info("message parsed", log.Int("pairs", 3))
//
// # Interop
//
// To integrate with libraries expecting *log.Logger, use RedirectStdLog.
package log
