// Package middleware provides the HTTP middleware chain of the kanjize
// server: request IDs, tracing, access logging with metrics, panic recovery,
// a concurrency limit and per-request deadlines.
//
// The chain is assembled outermost first:
//
//	route := MuxRoute(mux)
//	handler = Recovery(logger)(
//		RequestID(
//			Tracing(tracer, route)(
//				Logging(logger, collector, route)(
//					ConcurrencyLimit(limiter)(
//						Timeout(d)(mux))))))
package middleware
