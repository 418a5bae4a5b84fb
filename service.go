package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"taberu_api_ms/config"
	"taberu_api_ms/controller"
	"taberu_api_ms/middleware"
	"taberu_api_ms/repository"
	"taberu_api_ms/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type service struct {
	//DB
	dbConnection *gorm.DB

	//Redis Client
	redisClient *redis.Client

	//Logger
	logger *zap.Logger

	// Repository
	deviceRepository     repository.IDeviceRepository
	challengeRepository  repository.IChallengeRepository
	restaurantRepository repository.IRestaurantRepository
	categoryRepository   repository.ICategoryRepository
	commentRepository    repository.ICommentRepository

	// Service
	jwtService        services.IJWTService
	sessionService    services.ISessionService
	challengeVerifier services.IChallengeVerifier
	locationService   services.ILocationService
	authService       services.IAuthService
	restaurantService services.IRestaurantService
	categoryService   services.ICategoryService
	commentService    services.ICommentService

	// Controller
	authController       controller.IAuthController
	restaurantController controller.IRestaurantController
	categoryController   controller.ICategoryController
	commentController    controller.ICommentController
}

// NOTE: Service Start
func (s *service) Start() {
	// NOTE: A missing signing secret is a deployment error, not a request one
	if config.Conf.Application.Security.Secret == "" {
		log.Panic("JWT signing secret is not configured")
	}

	log.Info("Opening database connection...")
	s.dbConnection = config.OpenDatabaseConnection(config.Conf.Application.Datasource.PrimaryURL)
	config.Migrate(config.Conf.Application.Datasource.PrimaryURL)

	log.Info("Opening redis connection...")
	s.redisClient = config.ConnectToRedis(config.Conf.Application.Redis.Host)

	s.logger = config.InitLogger()
	middleware.InitValidator()

	// NOTE: Dependency Injections
	s.DependencyInjection()

	// NOTE: Start Fiber server...
	app := NewServer(
		s.authController,
		s.restaurantController,
		s.categoryController,
		s.commentController,
		s.jwtService,
		s.sessionService,
		s.logger,
	).Start()

	log.Info("Server starting..")
	// NOTE: Server start with goroutine
	go func() {
		if err := app.Listen(config.Conf.Application.Server.Port); err != nil {
			log.Fatal("Server failed to start")
		}
	}()
	// NOTE: Keep OS signals for graceful shutdown
	s.gracefulShutdown(app)
}

// NOTE: Depency Injection Operation
func (s *service) DependencyInjection() {
	security := config.Conf.Application.Security
	captcha := config.Conf.Application.Captcha
	tokenTTL := time.Duration(security.TokenValidityInSeconds) * time.Second

	// NOTE: JWT service configured and initialize...
	s.jwtService = &services.JWTService{
		Secret:    []byte(security.Secret),
		Issuer:    security.Issuer,
		AccessTTL: tokenTTL,
	}

	// NOTE: Repositories Injections
	s.deviceRepository = repository.NewDeviceRepository()
	s.challengeRepository = repository.NewChallengeRepository()
	s.restaurantRepository = repository.NewRestaurantRepository()
	s.categoryRepository = repository.NewCategoryRepository()
	s.commentRepository = repository.NewCommentRepository()

	// NOTE: Services Injections
	s.sessionService = services.NewSessionService(s.redisClient, tokenTTL)
	s.challengeVerifier = s.buildChallengeVerifier(captcha)
	s.locationService = services.NewLocationService(s.dbConnection, s.deviceRepository, config.Conf.Application.Trust.ThresholdKm)
	s.authService = services.NewAuthService(
		s.dbConnection,
		s.challengeVerifier,
		s.locationService,
		s.jwtService,
		s.deviceRepository,
		s.sessionService,
	)
	s.restaurantService = services.NewRestaurantService(s.dbConnection, s.restaurantRepository)
	s.categoryService = services.NewCategoryService(s.dbConnection, s.categoryRepository)
	s.commentService = services.NewCommentService(s.dbConnection, s.commentRepository)

	// NOTE: Controllers Injections
	s.authController = controller.NewAuthController(s.authService, s.challengeVerifier)
	s.restaurantController = controller.NewRestaurantController(s.restaurantService)
	s.categoryController = controller.NewCategoryController(s.categoryService)
	s.commentController = controller.NewCommentController(s.commentService)
}

func (s *service) buildChallengeVerifier(captcha config.Captcha) services.IChallengeVerifier {
	validity := time.Duration(captcha.ValidityInSeconds) * time.Second
	if validity <= 0 {
		validity = 5 * time.Minute
	}

	switch captcha.Strategy {
	case "recaptcha":
		log.Info("Using third-party proof-token challenge strategy")
		return services.NewRecaptchaService(captcha.VerifyURL, captcha.Secret, captcha.ScoreThreshold, 10*time.Second)
	default:
		log.Info("Using self-hosted code challenge strategy")
		return services.NewCaptchaService(s.dbConnection, s.challengeRepository, validity)
	}
}

// NOTE: Graceful shutdown operation
func (s *service) gracefulShutdown(app *fiber.App) {

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// NOTE:Server Shutdown when keep signal
	<-sigChan
	log.Info("Shutting down server...")
	// NOTE: Creating context with timeout for graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// NOTE: Shutdown Fiber server
	if err := app.Shutdown(); err != nil {
		log.Error("error while shutting down app", err)
	}

	// NOTE: Shutdown Database connection
	done := make(chan bool)
	go func() {
		config.CloseDatabaseConnection(s.dbConnection)
		done <- true
	}()

	select {
	case <-ctx.Done():
		log.Error("timeout while shutting down database", ctx.Err())
	case <-done:
		log.Info("database is gracefully shutdown")
	}
}
