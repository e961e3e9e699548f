// Package logging provides structured logging for mspec on top of log/slog.
//
// Logs go to stderr in json, text or console format. Each validation run
// is tagged with a run ID carried in the context:
//
//	ctx = logging.StartRun(ctx)
//	ctx = logging.WithSpecFile(ctx, path)
//	logger.InfoContext(ctx, "validation finished", "valid", res.Valid)
//
// Attributes whose key looks like a credential (api_key, token, secret)
// are written as "***".
package logging
