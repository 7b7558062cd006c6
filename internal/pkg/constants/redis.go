package constants

// Redis key prefixes
const (
	// KeyRideGeo is the geo set of active ride origins
	KeyRideGeo = "rides:geo"

	// KeyRateLimitPrefix prefixes rate limiter counters
	KeyRateLimitPrefix = "ratelimit"
)
