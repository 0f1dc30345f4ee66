// Package logger builds *slog.Logger instances from functional options and
// provides attribute helpers for rendering engine diagnostics.
//
//	log := logger.New(
//		logger.WithFormat(logger.FormatText),
//		logger.WithLevel(slog.LevelDebug),
//		logger.WithAttr(slog.String("service", "engineinfo")),
//	)
//	log.Info("detected", logger.UserAgent(ua), logger.Engine(engine))
//
// Output defaults to JSON on stderr at INFO level.
package logger
