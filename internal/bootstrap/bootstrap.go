package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/unischedule/internal/app/controllers"
	appMigrations "github.com/yigit/unischedule/internal/app/migrations"
	"github.com/yigit/unischedule/internal/app/models/dto"
	appRepos "github.com/yigit/unischedule/internal/app/repositories"
	appRoutes "github.com/yigit/unischedule/internal/app/routes"
	appServices "github.com/yigit/unischedule/internal/app/services"
	"github.com/yigit/unischedule/internal/config"
	"github.com/yigit/unischedule/internal/db"
	appMiddleware "github.com/yigit/unischedule/internal/middleware"
	"github.com/yigit/unischedule/internal/pkg/logger"
	"github.com/yigit/unischedule/internal/seed"
)

// DefaultConfigPath is where the YAML configuration is looked up
var DefaultConfigPath = filepath.Join("configs", "config.yaml")

// Dependencies holds all the application dependencies
type Dependencies struct {
	ProfessorService    appServices.ProfessorService
	RoomService         appServices.RoomService
	ProfessorController *appControllers.ProfessorController
	RoomController      *appControllers.RoomController
	HealthController    *appControllers.HealthController
	Repos               *appRepos.Repositories
	Logger              zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	lgr := logger.Configure(logger.ConfigFromStrings(cfg.Logging.Level, cfg.Logging.Format))
	lgr.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// WaitForDatabase blocks until the configured database answers or the retry budget is spent.
func WaitForDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) error {
	lgr.Info().
		Str("host", cfg.Database.Host).
		Int("attempts", cfg.Database.WaitAttempts).
		Dur("delay", cfg.Database.WaitDelay).
		Msg("Waiting for database...")

	ping := db.NewConnPinger(cfg.GetPostgresConnectionString())
	return db.WaitForDatabase(ctx, ping, cfg.Database.WaitAttempts, cfg.Database.WaitDelay, lgr)
}

// RunMigrations applies the embedded schema migrations.
func RunMigrations(ctx context.Context, conn db.DBTX, lgr zerolog.Logger) error {
	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(conn, lgr)
	if err := migrator.Migrate(ctx, appMigrations.Files()); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")
	return nil
}

// SeedSampleData inserts the sample dataset unless data is already present.
func SeedSampleData(ctx context.Context, conn db.DBTX, lgr zerolog.Logger) error {
	if _, err := seed.CreateSampleData(ctx, conn, lgr); err != nil {
		return fmt.Errorf("seeding sample data failed: %w", err)
	}
	return nil
}

// SetupDatabase waits for the database, connects, runs migrations and optionally seeds.
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	if err := WaitForDatabase(ctx, cfg, lgr); err != nil {
		lgr.Error().Err(err).Msg("Database did not become ready")
		return nil, err
	}

	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	if err := RunMigrations(ctx, database.Pool, lgr); err != nil {
		database.Close()
		return nil, err
	}

	if cfg.Database.SeedOnStartup {
		if err := SeedSampleData(ctx, database.Pool, lgr); err != nil {
			// Log the error but don't fail the startup
			lgr.Error().Err(err).Msg("Failed to create sample data, proceeding anyway...")
		}
	}

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(conn db.DBTX, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(conn)

	deps.ProfessorService = appServices.NewProfessorService(deps.Repos.ProfessorRepository)
	deps.RoomService = appServices.NewRoomService(deps.Repos.RoomRepository)

	deps.ProfessorController = appControllers.NewProfessorController(deps.ProfessorService)
	deps.RoomController = appControllers.NewRoomController(deps.RoomService)
	deps.HealthController = appControllers.NewHealthController()

	return deps
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	appMiddleware.RegisterTagNames()

	router := gin.New()
	router.Use(
		gin.Recovery(),
		appMiddleware.RequestID(),
		appMiddleware.RequestLogger(lgr),
	)

	appRoutes.SetupRouter(router,
		deps.ProfessorController,
		deps.RoomController,
		deps.HealthController,
	)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("route not found"))
	})

	return router
}
