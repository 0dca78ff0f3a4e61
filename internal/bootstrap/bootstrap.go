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
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/campusrate/campusrate/internal/app/controllers"
	appMigrations "github.com/campusrate/campusrate/internal/app/migrations"
	appRepos "github.com/campusrate/campusrate/internal/app/repositories"
	appRoutes "github.com/campusrate/campusrate/internal/app/routes"
	appServices "github.com/campusrate/campusrate/internal/app/services"
	"github.com/campusrate/campusrate/internal/config"
	"github.com/campusrate/campusrate/internal/db"
	appMiddleware "github.com/campusrate/campusrate/internal/middleware"
	pkgAuth "github.com/campusrate/campusrate/internal/pkg/auth"
	"github.com/campusrate/campusrate/internal/pkg/filestorage"
	"github.com/campusrate/campusrate/internal/pkg/logger"
	"github.com/campusrate/campusrate/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService        appServices.AuthService
	FacultyService     appServices.FacultyService
	FeedbackService    appServices.FeedbackService
	AuthController     *appControllers.AuthController
	FacultyController  *appControllers.FacultyController
	FeedbackController *appControllers.FeedbackController
	AuthMiddleware     *appMiddleware.AuthMiddleware
	Repos              *appRepos.Repositories
	JWTService         *pkgAuth.JWTService
	FileStorage        *filestorage.LocalStorage
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

// SetupDatabase establishes the database connection, runs migrations and
// seeds the faculty registry when it is empty.
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

	if err := seed.Faculty(context.Background(), appRepos.NewFacultyRepository(dbPool), lgr); err != nil {
		// Seeding is convenience data; startup continues without it
		lgr.Error().Err(err).Msg("Failed to seed faculty data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	tokenExp, err := time.ParseDuration(cfg.JWT.TokenExpiration)
	if err != nil {
		tokenExp = 12 * time.Hour
	}
	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExp:    tokenExp,
		TokenIssuer: cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.StudentRepository,
		deps.JWTService,
		appServices.AdminCredentials{
			Email:    cfg.Admin.Email,
			Password: cfg.Admin.Password,
		},
		lgr,
	)
	deps.FacultyService = appServices.NewFacultyService(deps.Repos.FacultyRepository, deps.FileStorage, lgr)
	deps.FeedbackService = appServices.NewFeedbackService(deps.Repos.FeedbackRepository, deps.Repos.FacultyRepository, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.FacultyController = appControllers.NewFacultyController(deps.FacultyService, deps.FeedbackService, deps.FileStorage)
	deps.FeedbackController = appControllers.NewFeedbackController(deps.FeedbackService)

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

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.FacultyController,
		deps.FeedbackController,
		deps.AuthMiddleware,
	)

	return router
}
