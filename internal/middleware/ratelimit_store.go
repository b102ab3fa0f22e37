package middleware

import (
	"fmt"

	libredis "github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"
)

// NewRateLimiter builds a limiter from a formatted rate such as "60-M".
// When redisURL is set the counters live in Redis so all instances share one
// budget; otherwise an in-process memory store is used.
func NewRateLimiter(formattedRate string, redisURL string) (*limiter.Limiter, error) {
	rate, err := limiter.NewRateFromFormatted(formattedRate)
	if err != nil {
		return nil, fmt.Errorf("invalid rate limit format %q: %w", formattedRate, err)
	}

	if redisURL == "" {
		return limiter.New(memory.NewStore(), rate), nil
	}

	opts, err := libredis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}
	client := libredis.NewClient(opts)

	store, err := sredis.NewStoreWithOptions(client, limiter.StoreOptions{
		Prefix: "bizledger_ratelimit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create redis rate limit store: %w", err)
	}

	return limiter.New(store, rate), nil
}
