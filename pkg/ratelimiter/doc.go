// Package ratelimiter throttles HTTP clients with one token bucket
// (golang.org/x/time/rate) per key, usually the client IP.
//
//	store := ratelimiter.NewStore(cfg.RPS, cfg.Burst)
//	go store.RunJanitor(ctx)
//	r.Use(ratelimiter.Middleware(store, ratelimiter.RemoteIP))
package ratelimiter
