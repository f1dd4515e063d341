// Package requestid tags each HTTP request with a correlation ID carried in
// the X-Request-ID header, the request context and structured logs.
//
//	r.Use(requestid.Middleware())
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
package requestid
