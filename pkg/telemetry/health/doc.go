// Package health provides liveness and readiness probes for the kanjize
// server.
//
// # Endpoints
//
//   - /health: liveness, 200 while the process is running
//   - /ready: readiness, 200 when every registered check passes, 503 otherwise
//   - /version: build information
//
// # Self Test
//
// SelfTest round-trips a fixed set of numbers through NumberToKanji and
// KanjiToNumber with the server's current default configuration. A
// SelfTestScheduler runs it on a cron schedule and caches the outcome so the
// readiness probe stays cheap:
//
//	checker := health.New(5 * time.Second)
//	sched := health.NewSelfTestScheduler("@every 1m", health.SelfTest(current), logger)
//	checker.RegisterCheck("self_test", sched.Check)
//	_ = sched.Start(ctx)
//
// Readiness response:
//
//	{
//	    "status": "ready",
//	    "checks": {
//	        "config": {"status": "ok"},
//	        "self_test": {"status": "ok"}
//	    },
//	    "timestamp": "2026-10-19T10:30:00Z"
//	}
package health
