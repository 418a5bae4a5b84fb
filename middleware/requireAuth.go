package middleware

import (
	"strings"
	"time"
	"taberu_api_ms/services"

	"github.com/gofiber/fiber/v2"
)

func tokenFromRequest(c *fiber.Ctx) string {
	if token := c.Cookies("token"); token != "" {
		return token
	}
	authHeader := c.Get(fiber.HeaderAuthorization)
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}

// expireTokenCookie clears a dead credential so clients stop replaying it.
func expireTokenCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:    "token",
		Value:   "",
		Path:    "/",
		Expires: time.Now().Add(-time.Hour),
	})
}

// AuthMiddleware guards protected routes. The credential is read from the
// token cookie or the Authorization header, its signature and expiry are
// checked, and the backing session record must still exist. Verified client
// facts are attached to the request locals for downstream handlers.
func AuthMiddleware(jwt services.IJWTService, sessions services.ISessionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := tokenFromRequest(c)
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Missing auth token",
			})
		}

		if _, err := jwt.ParseToken(token); err != nil {
			expireTokenCookie(c)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid or expired token",
			})
		}

		session, err := sessions.GetAuthSessionByToken(token)
		if err != nil || session == nil {
			expireTokenCookie(c)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Session not found",
			})
		}

		c.Locals("token", token)
		c.Locals("session", session)
		c.Locals("deviceHash", session.ClientInfo.DeviceHash)
		c.Locals("ip", session.ClientInfo.Ip)
		c.Locals("userAgent", session.ClientInfo.UserAgent)

		return c.Next()
	}
}

// CredentialMiddleware accepts any structurally valid credential without
// requiring a live session record behind it. Revocation sits behind this
// lighter guard: deleting an already-deleted session must still return
// success, so a missing record cannot be a 401 there.
func CredentialMiddleware(jwt services.IJWTService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := tokenFromRequest(c)
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Missing auth token",
			})
		}

		claims, err := jwt.ParseToken(token)
		if err != nil {
			expireTokenCookie(c)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid or expired token",
			})
		}

		c.Locals("token", token)
		c.Locals("deviceHash", claims.Subject)
		return c.Next()
	}
}
