package middleware

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
	"taberu_api_ms/domain"
	"taberu_api_ms/services"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

type stubSessionService struct {
	sessions map[string]*domain.Session
}

func (s *stubSessionService) StoreAuthSession(session *domain.Session) error {
	s.sessions[session.Token] = session
	return nil
}

func (s *stubSessionService) GetAuthSessionByToken(token string) (*domain.Session, error) {
	session, ok := s.sessions[token]
	if !ok {
		return nil, redis.Nil
	}
	return session, nil
}

func (s *stubSessionService) DeleteAuthSession(token string) error {
	delete(s.sessions, token)
	return nil
}

func guardedApp(jwtService services.IJWTService, sessions services.ISessionService) *fiber.App {
	app := fiber.New()
	app.Get("/protected", AuthMiddleware(jwtService, sessions), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"deviceHash": c.Locals("deviceHash"),
			"ip":         c.Locals("ip"),
			"userAgent":  c.Locals("userAgent"),
		})
	})
	return app
}

func authErrorOf(t *testing.T, resp *http.Response) string {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)
	var payload map[string]string
	assert.NoError(t, json.Unmarshal(body, &payload))
	return payload["error"]
}

func tokenCookieOf(resp *http.Response) *http.Cookie {
	for _, cookie := range resp.Cookies() {
		if cookie.Name == "token" {
			return cookie
		}
	}
	return nil
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	jwtService := services.NewJWTService([]byte("middleware-secret"), "taberu", 15*time.Minute)
	app := guardedApp(jwtService, &stubSessionService{sessions: map[string]*domain.Session{}})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/protected", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Missing auth token", authErrorOf(t, resp))
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	jwtService := services.NewJWTService([]byte("middleware-secret"), "taberu", 15*time.Minute)
	app := guardedApp(jwtService, &stubSessionService{sessions: map[string]*domain.Session{}})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer not-a-jwt")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Invalid or expired token", authErrorOf(t, resp))
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	expiredIssuer := services.NewJWTService([]byte("middleware-secret"), "taberu", -time.Minute)
	token, err := expiredIssuer.GenerateToken("device-1")
	assert.NoError(t, err)

	jwtService := services.NewJWTService([]byte("middleware-secret"), "taberu", 15*time.Minute)
	app := guardedApp(jwtService, &stubSessionService{sessions: map[string]*domain.Session{}})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: token})

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Invalid or expired token", authErrorOf(t, resp))

	// The dead credential gets cleared so the client stops replaying it
	cleared := tokenCookieOf(resp)
	assert.NotNil(t, cleared)
	assert.Empty(t, cleared.Value)
}

func TestAuthMiddleware_RevokedSession(t *testing.T) {
	jwtService := services.NewJWTService([]byte("middleware-secret"), "taberu", 15*time.Minute)
	token, err := jwtService.GenerateToken("device-1")
	assert.NoError(t, err)

	app := guardedApp(jwtService, &stubSessionService{sessions: map[string]*domain.Session{}})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: token})

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Session not found", authErrorOf(t, resp))

	cleared := tokenCookieOf(resp)
	assert.NotNil(t, cleared)
	assert.Empty(t, cleared.Value)
}

func TestCredentialMiddleware_NoSessionRequired(t *testing.T) {
	jwtService := services.NewJWTService([]byte("middleware-secret"), "taberu", 15*time.Minute)
	token, err := jwtService.GenerateToken("device-1")
	assert.NoError(t, err)

	app := fiber.New()
	app.Post("/revoke", CredentialMiddleware(jwtService), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"token":      c.Locals("token"),
			"deviceHash": c.Locals("deviceHash"),
		})
	})

	// No session store behind this guard: a valid credential is enough
	req := httptest.NewRequest(http.MethodPost, "/revoke", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: token})

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)
	var payload map[string]string
	assert.NoError(t, json.Unmarshal(body, &payload))
	assert.Equal(t, token, payload["token"])
	assert.Equal(t, "device-1", payload["deviceHash"])
}

func TestCredentialMiddleware_RejectsInvalidCredential(t *testing.T) {
	jwtService := services.NewJWTService([]byte("middleware-secret"), "taberu", 15*time.Minute)

	app := fiber.New()
	app.Post("/revoke", CredentialMiddleware(jwtService), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/revoke", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Missing auth token", authErrorOf(t, resp))

	req := httptest.NewRequest(http.MethodPost, "/revoke", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: "not-a-jwt"})

	resp, err = app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Invalid or expired token", authErrorOf(t, resp))
}

func TestAuthMiddleware_ValidSession(t *testing.T) {
	jwtService := services.NewJWTService([]byte("middleware-secret"), "taberu", 15*time.Minute)
	token, err := jwtService.GenerateToken("device-1")
	assert.NoError(t, err)

	store := &stubSessionService{sessions: map[string]*domain.Session{}}
	assert.NoError(t, store.StoreAuthSession(&domain.Session{
		SessionId: "session-1",
		UserId:    "device-1",
		Token:     token,
		ClientInfo: domain.ClientInfo{
			Ip:         "1.2.3.4",
			UserAgent:  "test-agent",
			DeviceHash: "device-1",
		},
	}))
	app := guardedApp(jwtService, store)

	for _, carrier := range []string{"cookie", "header"} {
		t.Run(carrier, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if carrier == "cookie" {
				req.AddCookie(&http.Cookie{Name: "token", Value: token})
			} else {
				req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
			}

			resp, err := app.Test(req)
			assert.NoError(t, err)
			assert.Equal(t, fiber.StatusOK, resp.StatusCode)

			body, err := io.ReadAll(resp.Body)
			assert.NoError(t, err)
			var payload map[string]string
			assert.NoError(t, json.Unmarshal(body, &payload))
			assert.Equal(t, "device-1", payload["deviceHash"])
			assert.Equal(t, "1.2.3.4", payload["ip"])
			assert.Equal(t, "test-agent", payload["userAgent"])
		})
	}
}
