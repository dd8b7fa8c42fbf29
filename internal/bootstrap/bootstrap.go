package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"

	appControllers "github.com/studymind/studymind/internal/app/controllers"
	appMigrations "github.com/studymind/studymind/internal/app/migrations"
	appRepos "github.com/studymind/studymind/internal/app/repositories"
	appRoutes "github.com/studymind/studymind/internal/app/routes"
	appServices "github.com/studymind/studymind/internal/app/services"
	"github.com/studymind/studymind/internal/config"
	"github.com/studymind/studymind/internal/db"
	"github.com/studymind/studymind/internal/enrich"
	"github.com/studymind/studymind/internal/extract"
	appMiddleware "github.com/studymind/studymind/internal/middleware"
	pkgAuth "github.com/studymind/studymind/internal/pkg/auth"
	"github.com/studymind/studymind/internal/pkg/filestorage"
	"github.com/studymind/studymind/internal/pkg/logger"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	NoteService    appServices.NoteService
	QuizService    appServices.QuizService
	NoteController *appControllers.NoteController
	QuizController *appControllers.QuizController
	AuthMiddleware *appMiddleware.AuthMiddleware
	Repos          *appRepos.Repositories
	JWTService     *pkgAuth.JWTService
	FileStorage    *filestorage.LocalStorage
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger
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

// SetupDatabase establishes the database connection and runs migrations
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

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		dbPool.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}
	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		dbPool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database ready.")
	return dbPool, nil
}

// BuildDependencies initializes repositories, services and controllers
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	fileStorage, err := filestorage.NewLocalStorage(cfg.Storage.UploadDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}
	deps.FileStorage = fileStorage

	extractor, err := buildExtractor(cfg, lgr)
	if err != nil {
		return nil, err
	}

	enricher := buildEnricher(cfg, lgr)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenIssuer: cfg.JWT.Issuer,
	})
	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.NoteService = appServices.NewNoteService(
		deps.Repos.NoteRepository,
		fileStorage,
		extractor,
		enricher,
	)
	deps.NoteController = appControllers.NewNoteController(deps.NoteService)

	deps.QuizService = appServices.NewQuizService(enricher)
	deps.QuizController = appControllers.NewQuizController(deps.QuizService)

	return deps, nil
}

// buildExtractor wires the extraction backends according to config. OCR and
// transcription stay nil when disabled; the extractor degrades per type.
func buildExtractor(cfg *config.Config, lgr zerolog.Logger) (*extract.Service, error) {
	var opts []option.ClientOption
	if cfg.GCP.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.GCP.CredentialsFile))
	}

	var ocr extract.OCR
	if cfg.GCP.OCREnabled {
		visionOCR, err := extract.NewVisionOCR(context.Background(), opts...)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize OCR client: %w", err)
		}
		ocr = visionOCR
		lgr.Info().Msg("Image OCR enabled")
	} else {
		lgr.Warn().Msg("Image OCR disabled, image uploads will not extract text")
	}

	var transcriber extract.Transcriber
	if cfg.GCP.SpeechEnabled {
		speech, err := extract.NewSpeechTranscriber(context.Background(), opts...)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize transcription client: %w", err)
		}
		transcriber = speech
		lgr.Info().Msg("Audio transcription enabled")
	} else {
		lgr.Warn().Msg("Audio transcription disabled, media uploads get a placeholder")
	}

	return extract.NewService(ocr, transcriber), nil
}

// buildEnricher wires the AI pipeline. Without an endpoint and key the
// disabled client makes every enrichment stage a no-op.
func buildEnricher(cfg *config.Config, lgr zerolog.Logger) *enrich.Pipeline {
	if !cfg.AIConfigured() {
		lgr.Warn().Msg("AI endpoint not configured, notes will not be enriched")
		return enrich.NewPipeline(enrich.NewDisabledClient(), cfg.AI.Model)
	}

	client := enrich.NewClient(enrich.Config{
		Endpoint: cfg.AI.Endpoint,
		APIKey:   cfg.AI.APIKey,
		Model:    cfg.AI.Model,
	}, &http.Client{Timeout: 120 * time.Second})
	return enrich.NewPipeline(client, cfg.AI.Model)
}

// SetupRouter builds the gin engine with middleware and routes
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger())
	router.Use(appMiddleware.CORS())

	appRoutes.SetupRouter(router, deps.NoteController, deps.QuizController, deps.AuthMiddleware)
	return router
}
