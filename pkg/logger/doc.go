// Package logger builds configured log/slog loggers for the embedding
// application and the guarded store's diagnostics.
//
// The factory follows the functional-option pattern: output format (text or
// JSON), level, destination, static attributes and context extractors are all
// options, with environment presets for the common cases:
//
//	log := logger.New(logger.WithDevelopment("guardstore"))
//
//	log := logger.New(
//	    logger.WithProduction("guardstore"),
//	    logger.WithContextExtractors(environment.LoggerExtractor()),
//	)
//
// Context extractors run per log call through a handler decorator, so
// request-scoped values (such as the build environment) are captured fresh on
// every record.
package logger
