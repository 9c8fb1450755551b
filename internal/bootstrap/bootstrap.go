package bootstrap

import (
	"path/filepath"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/tasnim/scholarhub/internal/app/controllers"
	appRepos "github.com/tasnim/scholarhub/internal/app/repositories"
	appRoutes "github.com/tasnim/scholarhub/internal/app/routes"
	"github.com/tasnim/scholarhub/internal/config"
	"github.com/tasnim/scholarhub/internal/db"
	appMiddleware "github.com/tasnim/scholarhub/internal/middleware"
	pkgAuth "github.com/tasnim/scholarhub/internal/pkg/auth"
	"github.com/tasnim/scholarhub/internal/pkg/logger"
	"github.com/tasnim/scholarhub/internal/pkg/payments"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos                 *appRepos.Repositories
	JWTService            *pkgAuth.JWTService
	PaymentService        *payments.Service
	AuthController        *appControllers.AuthController
	UserController        *appControllers.UserController
	ScholarshipController *appControllers.ScholarshipController
	ApplicationController *appControllers.ApplicationController
	ReviewController      *appControllers.ReviewController
	PaymentController     *appControllers.PaymentController
	StatsController       *appControllers.StatsController
	AuthMiddleware        *appMiddleware.AuthMiddleware
	Logger                zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the shared document store connection.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.MongoDB, error) {
	lgr.Info().Str("database", cfg.Mongo.Database).Msg("Establishing database connection...")

	mongoDB, err := db.NewMongoDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	lgr.Info().Msg("Database connection successfully established.")
	return mongoDB, nil
}

// BuildDependencies initializes application repositories, controllers and
// middleware over the shared database handle.
func BuildDependencies(cfg *config.Config, mongoDB *db.MongoDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(mongoDB.Database)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: cfg.GetAccessTokenExpiration(),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.PaymentService = payments.NewService(cfg.Stripe.SecretKey, cfg.Stripe.Currency)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService, deps.Repos.UserRepository)

	deps.AuthController = appControllers.NewAuthController(deps.JWTService)
	deps.UserController = appControllers.NewUserController(deps.Repos.UserRepository)
	deps.ScholarshipController = appControllers.NewScholarshipController(deps.Repos.ScholarshipRepository)
	deps.ApplicationController = appControllers.NewApplicationController(deps.Repos.ApplicationRepository)
	deps.ReviewController = appControllers.NewReviewController(deps.Repos.ReviewRepository)
	deps.PaymentController = appControllers.NewPaymentController(deps.Repos.PaymentRepository, deps.PaymentService)
	deps.StatsController = appControllers.NewStatsController(
		deps.Repos.ApplicationRepository,
		deps.Repos.ReviewRepository,
		deps.Repos.ScholarshipRepository,
		deps.Repos.UserRepository,
	)

	return deps, nil
}

// SetupRouter builds the gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestID())
	router.Use(appMiddleware.RequestLogger(lgr))

	// The browser frontend is served from a different origin
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	appRoutes.SetupRouter(
		router,
		deps.AuthController,
		deps.UserController,
		deps.ScholarshipController,
		deps.ApplicationController,
		deps.ReviewController,
		deps.PaymentController,
		deps.StatsController,
		deps.AuthMiddleware,
	)

	return router
}
