package middleware

import (
	"time"
	"taberu_api_ms/util"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// Limiter buckets are keyed by the device fingerprint rather than the bare
// peer IP, so clients behind one NAT do not share a budget.
func fingerprintKey(c *fiber.Ctx) string {
	return util.Fingerprint(c.IP(), c.Get(fiber.HeaderUserAgent))
}

// GlobalRateLimiter is the app-wide backstop.
func GlobalRateLimiter() fiber.Handler {
	return limiter.New(limiter.Config{
		Max:          60,
		Expiration:   time.Minute,
		KeyGenerator: fingerprintKey,
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, slow down.",
			})
		},
	})
}

// RouteRateLimiter sets a tighter budget on a single route group. The auth
// group runs behind this so challenge farming stays expensive.
func RouteRateLimiter(max int, window time.Duration) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:          max,
		Expiration:   window,
		KeyGenerator: fingerprintKey,
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Rate limit exceeded, try again later.",
			})
		},
	})
}
