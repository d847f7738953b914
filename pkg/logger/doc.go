// Package logger builds the *slog.Logger used by the g-env binaries and the
// request middleware.
//
// New creates a logger from functional options: output format (text or
// json), level, destination, static attributes, and ContextExtractor
// callbacks that pull request-scoped values (such as the probe report stored
// by probe.WithContext) into every record.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment("development", "genv"),
//	    logger.WithOutput(os.Stderr),
//	    logger.WithContextExtractors(probe.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "probed", logger.Client(desc), logger.Error(err))
//
// Attribute helpers in attr.go keep key names consistent. Error and Errors
// return an empty attribute for nil errors, so they can be passed
// unconditionally.
package logger
