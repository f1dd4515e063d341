// Package logger builds *slog.Logger values for docsedge binaries.
//
// New picks a text or JSON handler, applies static attributes and wraps the
// handler in a ContextHandler, which adds attributes pulled from the record's
// context (request id, served locale) each time a record is handled.
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, cfg.ServiceName),
//		logger.WithContextExtractors(requestid.LoggerExtractor(), i18n.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "redirect", logger.Stage("locale"), logger.Status(302))
//
// Attribute helpers in attr.go keep key names consistent across packages.
// Error returns an empty Attr for a nil error, so it can be passed unconditionally.
package logger
