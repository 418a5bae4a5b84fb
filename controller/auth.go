package controller

import (
	"errors"
	"time"
	"taberu_api_ms/config"
	"taberu_api_ms/domain"
	"taberu_api_ms/dtos/request"
	"taberu_api_ms/dtos/response"
	"taberu_api_ms/services"
	"taberu_api_ms/util"

	"github.com/gofiber/fiber/v2"
)

type IAuthController interface {
	GetCaptcha(c *fiber.Ctx) error
	Login(c *fiber.Ctx) error
	Revoke(c *fiber.Ctx) error
	Me(c *fiber.Ctx) error
}

type AuthController struct {
	authService services.IAuthService
	challenge   services.IChallengeVerifier
}

func NewAuthController(authService services.IAuthService, challenge services.IChallengeVerifier) IAuthController {
	return &AuthController{authService: authService, challenge: challenge}
}

func (ac *AuthController) GetCaptcha(c *fiber.Ctx) error {
	captcha, err := ac.challenge.Issue()
	if err != nil {
		if errors.Is(err, services.ErrChallengeIssueUnsupported) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to issue captcha",
		})
	}
	return c.Status(fiber.StatusOK).JSON(captcha)
}

// Login expects a body already parsed and validated by the ValidateBody
// middleware on its route.
func (ac *AuthController) Login(c *fiber.Ctx) error {
	req, ok := c.Locals("body").(*request.AuthRequest)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	info := util.GetClientInfo(c)
	token, err := ac.authService.Authenticate(info, req.CaptchaId, req.CaptchaToken)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingCaptcha), errors.Is(err, services.ErrMissingLocation):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		case errors.Is(err, services.ErrCaptchaFailed), errors.Is(err, services.ErrUntrustedLocation):
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": err.Error(),
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "authentication failed",
			})
		}
	}

	c.Cookie(&fiber.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		MaxAge:   config.Conf.Application.Security.TokenValidityInSeconds,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return c.Status(fiber.StatusOK).JSON(response.AuthResponse{Success: true, Token: token})
}

func (ac *AuthController) Revoke(c *fiber.Ctx) error {
	token := c.Locals("token").(string)
	if err := ac.authService.Revoke(token); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to revoke session",
		})
	}

	c.Cookie(&fiber.Cookie{
		Name:    "token",
		Value:   "",
		Path:    "/",
		Expires: time.Now().Add(-time.Hour),
	})

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true})
}

func (ac *AuthController) Me(c *fiber.Ctx) error {
	session := c.Locals("session").(*domain.Session)
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"session": session})
}
