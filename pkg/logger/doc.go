// Package logger builds log/slog loggers for the web service.
//
// New returns a JSON logger at info level on stdout. Options switch format,
// level and output, add static attributes, and register context extractors
// that pull request-scoped values (request ID, environment, plan) from the
// context on every log call:
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, cfg.AppName),
//		logger.WithContextExtractors(
//			requestid.LoggerExtractor(),
//			entitlement.LoggerExtractor(),
//		),
//	)
//	log.InfoContext(ctx, "plan switched", logger.Plan(planID))
//
// The attribute helpers in attr.go keep key names consistent across packages.
package logger
