// Package resilience provides a token bucket rate limiter.
//
// asynciter.WithRateLimit uses it to pace pulls from a source:
//
//	limiter := resilience.NewRateLimiter(resilience.RateLimiterConfig{Rate: 50, Burst: 10})
//	it := asynciter.Use(src, asynciter.WithRateLimit[Event](limiter))
package resilience
