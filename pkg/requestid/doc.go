// Package requestid assigns every HTTP request an ID, echoes it in the
// X-Request-ID response header and exposes it to loggers.
//
//	r.Use(requestid.Middleware)
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
package requestid
