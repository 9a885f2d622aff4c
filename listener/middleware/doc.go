// Package middleware holds the http.Handler wrappers applied in front of the lookup API.
//
// Chain composes them outermost first:
//
//	handler := middleware.Chain(api,
//		middleware.RequestID(),
//		middleware.Logging(logger),
//		middleware.Recovery(logger),
//		middleware.Timeout(30*time.Second, logger),
//	)
package middleware
