package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/harutok/practiceshare/docs" // Import generated swagger docs
	appAuth "github.com/harutok/practiceshare/internal/app/auth"
	appControllers "github.com/harutok/practiceshare/internal/app/controllers"
	appMigrations "github.com/harutok/practiceshare/internal/app/migrations"
	appRepos "github.com/harutok/practiceshare/internal/app/repositories"
	appRoutes "github.com/harutok/practiceshare/internal/app/routes"
	appServices "github.com/harutok/practiceshare/internal/app/services"
	"github.com/harutok/practiceshare/internal/config"
	"github.com/harutok/practiceshare/internal/db"
	appMiddleware "github.com/harutok/practiceshare/internal/middleware"
	pkgAuth "github.com/harutok/practiceshare/internal/pkg/auth"
	"github.com/harutok/practiceshare/internal/pkg/email"
	"github.com/harutok/practiceshare/internal/pkg/filestorage"
	"github.com/harutok/practiceshare/internal/pkg/helpers"
	"github.com/harutok/practiceshare/internal/pkg/logger"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService        appServices.AuthService
	PracticeService    appServices.PracticeService
	CommentService     appServices.CommentService
	RatingService      appServices.RatingService
	ContactService     appServices.ContactService
	MediaService       appServices.MediaService
	AuthController     *appControllers.AuthController
	PracticeController *appControllers.PracticeController
	CommentController  *appControllers.CommentController
	RatingController   *appControllers.RatingController
	ContactController  *appControllers.ContactController
	UploadController   *appControllers.UploadController
	AuthMiddleware     *appMiddleware.AuthMiddleware
	RateLimiter        *appMiddleware.RateLimiter
	Repos              *appRepos.Repositories
	JWTService         *pkgAuth.JWTService
	AuthzService       *appAuth.AuthorizationService
	Notifier           email.NotificationService
	FileStorage        *filestorage.LocalStorage
	Redis              *redis.Client
	Logger             zerolog.Logger
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

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")
	return dbPool, nil
}

// SetupRedis connects to redis when rate limiting is enabled. A disabled
// limiter returns a nil client and the API runs without request budgets.
func SetupRedis(cfg *config.Config, lgr zerolog.Logger) *redis.Client {
	if !cfg.RateLimit.Enabled {
		lgr.Info().Msg("Rate limiting disabled, skipping redis")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddress(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		lgr.Warn().Err(err).Str("addr", cfg.GetRedisAddress()).Msg("Redis unreachable, rate limiting disabled")
		_ = client.Close()
		return nil
	}

	lgr.Info().Str("addr", cfg.GetRedisAddress()).Msg("Redis connection established")
	return client
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	// File storage serves saved files under the /uploads static route.
	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, "/uploads")
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExp:    helpers.ParseDuration(cfg.JWT.TokenExpiration, 168*time.Hour),
		TokenIssuer: cfg.JWT.Issuer,
	})

	deps.AuthzService = appAuth.NewAuthorizationService(deps.Repos.PracticeRepository)

	deps.Notifier = email.NewNotificationService(email.SMTPConfig{
		Host:        cfg.SMTP.Host,
		Port:        cfg.SMTP.Port,
		Username:    cfg.SMTP.Username,
		Password:    cfg.SMTP.Password,
		FromName:    cfg.SMTP.FromName,
		FromEmail:   cfg.SMTP.FromEmail,
		FrontendURL: cfg.SMTP.FrontendURL,
	}, lgr)

	deps.AuthService = appServices.NewAuthService(deps.Repos.EducatorRepository, deps.JWTService)
	deps.PracticeService = appServices.NewPracticeService(
		deps.Repos.PracticeRepository,
		deps.Repos.CommentRepository,
		deps.Repos.RatingRepository,
		deps.Repos.MediaRepository,
		deps.AuthzService,
	)
	deps.CommentService = appServices.NewCommentService(deps.Repos.CommentRepository, deps.AuthzService)
	deps.RatingService = appServices.NewRatingService(deps.Repos.RatingRepository, deps.AuthzService)
	deps.ContactService = appServices.NewContactService(
		deps.Repos.ContactRepository,
		deps.Repos.PracticeRepository,
		deps.AuthzService,
		deps.Notifier,
	)
	deps.MediaService = appServices.NewMediaService(deps.Repos.MediaRepository, deps.FileStorage)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.Redis = SetupRedis(cfg, lgr)
	deps.RateLimiter = appMiddleware.NewRateLimiter(deps.Redis,
		helpers.ParseDuration(cfg.RateLimit.Window, 15*time.Minute))

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.PracticeController = appControllers.NewPracticeController(deps.PracticeService)
	deps.CommentController = appControllers.NewCommentController(deps.CommentService)
	deps.RatingController = appControllers.NewRatingController(deps.RatingService)
	deps.ContactController = appControllers.NewContactController(deps.ContactService)
	deps.UploadController = appControllers.NewUploadController(deps.MediaService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()

	router.Use(appMiddleware.SecurityHeaders())
	router.Use(appMiddleware.CORS(cfg.CORS.AllowedOrigins))
	if cfg.Security.RequireAPIKey {
		router.Use(appMiddleware.RequireAPIKey(cfg.Security.APIKey))
	}

	// Setup Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.PracticeController,
		deps.CommentController,
		deps.RatingController,
		deps.ContactController,
		deps.UploadController,
		deps.AuthMiddleware,
		appRoutes.RateLimits{
			Limiter:     deps.RateLimiter,
			APILimit:    cfg.RateLimit.APILimit,
			AuthLimit:   cfg.RateLimit.AuthLimit,
			UploadLimit: cfg.RateLimit.UploadLimit,
		},
	)

	return router
}
