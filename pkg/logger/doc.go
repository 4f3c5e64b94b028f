// Package logger provides a small factory around log/slog with functional
// options and attribute helpers that keep key names consistent.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithFormat(logger.FormatText),
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithAttr(logger.Component("forma")),
//	)
//	log.Debug("Validator failed", logger.Rule("validateEmail"), logger.Error(err))
//
// Level and format names coming from configuration are parsed with
// ParseLevel and ParseFormat. Discard returns the silent logger used as the
// default by packages that log only on request.
package logger
