package main

import (
	"time"
	"taberu_api_ms/config"
	"taberu_api_ms/controller"
	"taberu_api_ms/dtos/request"
	"taberu_api_ms/middleware"
	"taberu_api_ms/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type Server struct {
	AuthController       controller.IAuthController
	RestaurantController controller.IRestaurantController
	CategoryController   controller.ICategoryController
	CommentController    controller.ICommentController

	JwtService     services.IJWTService
	SessionService services.ISessionService
	Logger         *zap.Logger
}

// NOTE: Server Constructor
func NewServer(
	AuthController controller.IAuthController,
	RestaurantController controller.IRestaurantController,
	CategoryController controller.ICategoryController,
	CommentController controller.ICommentController,
	JwtService services.IJWTService,
	SessionService services.ISessionService,
	Logger *zap.Logger,
) *Server {
	return &Server{
		AuthController:       AuthController,
		RestaurantController: RestaurantController,
		CategoryController:   CategoryController,
		CommentController:    CommentController,
		JwtService:           JwtService,
		SessionService:       SessionService,
		Logger:               Logger,
	}
}

// NOTE: Start Fiber Server
func (s *Server) Start() *fiber.App {
	// NOTE: Initialize Fiber Server
	app := fiber.New()
	app.Use(middleware.RecoveryMiddleware())
	app.Use(middleware.LoggingMiddleware(s.Logger))
	app.Use(middleware.GlobalRateLimiter())

	// NOTE: Define API paths (context path and grouping by version)
	contextPath := app.Group(config.Conf.Application.Server.ContextPath)
	apiVersion := contextPath.Group(config.Conf.Application.Server.ApiVersion)

	guard := middleware.AuthMiddleware(s.JwtService, s.SessionService)
	// Revoke needs only a valid credential, not a live session
	credential := middleware.CredentialMiddleware(s.JwtService)

	authGroup := apiVersion.Group("/auth", middleware.RouteRateLimiter(10, 30*time.Second))
	authGroup.Get("/captcha", s.AuthController.GetCaptcha)
	authGroup.Post("/", middleware.ValidateBody[request.AuthRequest](), s.AuthController.Login)
	authGroup.Post("/revoke", credential, s.AuthController.Revoke)
	authGroup.Get("/me", guard, s.AuthController.Me)

	apiVersion.Get("/restaurants", s.RestaurantController.GetAll)
	apiVersion.Get("/restaurants/:id", s.RestaurantController.GetByID)
	apiVersion.Post("/restaurants", guard, s.RestaurantController.Create)
	apiVersion.Put("/restaurants/:id", guard, s.RestaurantController.Update)
	apiVersion.Delete("/restaurants/:id", guard, s.RestaurantController.Delete)

	apiVersion.Get("/categories", s.CategoryController.GetAll)
	apiVersion.Get("/categories/:id", s.CategoryController.GetByID)
	apiVersion.Post("/categories", guard, s.CategoryController.CreateAll)
	apiVersion.Put("/categories/:id", guard, s.CategoryController.Update)
	apiVersion.Delete("/categories/:id", guard, s.CategoryController.Delete)

	apiVersion.Get("/comments", s.CommentController.GetAll)
	apiVersion.Get("/comments/:id", s.CommentController.GetByID)
	apiVersion.Post("/comments", guard, s.CommentController.Create)
	apiVersion.Put("/comments/:id", guard, s.CommentController.Update)
	apiVersion.Delete("/comments/:id", guard, s.CommentController.Delete)

	return app
}
