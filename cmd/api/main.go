package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	authUseCase "github.com/fintrack-app/fintrack-backend/internal/domain/usecase/auth"
	dashboardUseCase "github.com/fintrack-app/fintrack-backend/internal/domain/usecase/dashboard"
	profileImageUseCase "github.com/fintrack-app/fintrack-backend/internal/domain/usecase/profileimage"
	transactionUseCase "github.com/fintrack-app/fintrack-backend/internal/domain/usecase/transaction"

	"github.com/fintrack-app/fintrack-backend/internal/infrastructure/adapter/api/handler"
	"github.com/fintrack-app/fintrack-backend/internal/infrastructure/adapter/api/routes"
	"github.com/fintrack-app/fintrack-backend/internal/infrastructure/adapter/database"
	"github.com/fintrack-app/fintrack-backend/internal/infrastructure/adapter/database/migration"
	"github.com/fintrack-app/fintrack-backend/internal/infrastructure/adapter/logger"
	"github.com/fintrack-app/fintrack-backend/internal/infrastructure/adapter/mime"
	"github.com/fintrack-app/fintrack-backend/internal/infrastructure/adapter/repository"
	"github.com/fintrack-app/fintrack-backend/internal/infrastructure/adapter/security"
	"github.com/fintrack-app/fintrack-backend/internal/infrastructure/adapter/storage"
	timeProvider "github.com/fintrack-app/fintrack-backend/internal/infrastructure/adapter/time"
	"github.com/fintrack-app/fintrack-backend/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/spf13/afero"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate essential configuration
	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create logger
	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)
	defer appLogger.Flush()

	// Setup database configuration
	dbConfig := &database.Config{
		Driver:          cfg.Database.Driver,
		Host:            cfg.Database.Host,
		Port:            database.ParsePort(cfg.Database.Port),
		Username:        cfg.Database.Username,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Database,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		QueryTimeout:    cfg.Database.QueryTimeout,
		LogLevel:        cfg.Logger.Level,
		RetryAttempts:   cfg.Database.RetryAttempts,
		RetryDelay:      cfg.Database.RetryDelay,
	}

	// Initialize time provider
	tp := timeProvider.NewRealTimeProvider()

	// Connect to the database
	dbManager := database.NewManager(dbConfig, appLogger, tp)
	if _, err := dbManager.Connect(); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer dbManager.Close()

	// Run migrations
	migrationMgr := migration.NewMigrationManager(dbManager.DB(), appLogger, tp)
	if err := migrationMgr.MigrateAll(); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(dbManager.DB(), dbManager.GetErrorMapper(), appLogger)
	transactionRepo := repository.NewTransactionRepository(dbManager.DB(), dbManager.GetErrorMapper(), appLogger)
	messageRepo := repository.NewMessageRepository(dbManager.DB(), appLogger)

	// Initialize supporting adapters
	hasher := security.NewBcryptHasher()
	detector := mime.NewDetector()
	imageStore := storage.NewLocalImageStore(afero.NewOsFs(), cfg.Storage.UploadsDir, appLogger)

	// Seed the development login account
	if cfg.Environment == config.Development {
		if err := migration.SeedDevUser(context.Background(), userRepo, hasher, tp, appLogger); err != nil {
			appLogger.Error("Failed to seed development user", map[string]any{
				"error": err.Error(),
			})
		}
	}

	// Initialize use cases
	authService := authUseCase.NewAuthUseCase(userRepo, hasher, appLogger)
	transactionService := transactionUseCase.NewService(transactionRepo, messageRepo, tp, appLogger)
	dashboardService := dashboardUseCase.NewDashboardUseCase(transactionRepo, appLogger)
	profileImageService := profileImageUseCase.NewService(userRepo, imageStore, detector, tp, appLogger)

	// Initialize API handlers
	authHandler := handler.NewAuthHandler(authService, appLogger)
	transactionHandler := handler.NewTransactionHandler(transactionService, appLogger)
	dashboardHandler := handler.NewDashboardHandler(dashboardService, appLogger)
	profileImageHandler := handler.NewProfileImageHandler(profileImageService, appLogger)
	imageHandler := handler.NewImageHandler(imageStore, detector, appLogger)
	healthHandler := handler.NewHealthHandler(dbManager, appLogger)

	// Initialize Gin router
	router := gin.New()

	// Setup middlewares
	routes.SetupMiddlewares(router, appLogger)

	// Setup routes
	routes.SetupRoutes(
		router,
		authHandler,
		transactionHandler,
		dashboardHandler,
		profileImageHandler,
		imageHandler,
		healthHandler,
	)

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"port": cfg.Server.Port,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	// Create a deadline to wait for
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	// Shutdown the server
	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	// Validate server configuration
	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}

	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}

	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}

	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	// Validate database configuration
	if cfg.Database.Host == "" {
		if cfg.Environment == config.Production && os.Getenv("FT_DB_HOST") == "" {
			missingConfigs = append(missingConfigs, "database.host (or FT_DB_HOST environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.host")
		}
	}

	if cfg.Database.Port == "" {
		if cfg.Environment == config.Production && os.Getenv("FT_DB_PORT") == "" {
			missingConfigs = append(missingConfigs, "database.port (or FT_DB_PORT environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.port")
		}
	}

	if cfg.Database.Username == "" {
		if cfg.Environment == config.Production && os.Getenv("FT_DB_USERNAME") == "" {
			missingConfigs = append(missingConfigs, "database.username (or FT_DB_USERNAME environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.username")
		}
	}

	if cfg.Database.Password == "" {
		if cfg.Environment == config.Production && os.Getenv("FT_DB_PASSWORD") == "" {
			missingConfigs = append(missingConfigs, "database.password (or FT_DB_PASSWORD environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.password")
		}
	}

	if cfg.Database.Database == "" {
		if cfg.Environment == config.Production && os.Getenv("FT_DB_NAME") == "" {
			missingConfigs = append(missingConfigs, "database.database (or FT_DB_NAME environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.database")
		}
	}

	if cfg.Database.QueryTimeout == 0 {
		missingConfigs = append(missingConfigs, "database.queryTimeout")
	}

	// Storage configuration
	if cfg.Storage.UploadsDir == "" {
		missingConfigs = append(missingConfigs, "storage.uploadsDir")
	}

	// Environment should be set with a valid value
	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	// Logger configuration
	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	// Return error with list of missing configurations
	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	// If we're in production, do additional validation for sensitive settings
	if cfg.Environment == config.Production {
		var warnings []string

		// Check database security settings
		sslMode := strings.ToLower(cfg.Database.SSLMode)
		if sslMode != "require" && sslMode != "verify-ca" && sslMode != "verify-full" {
			warnings = append(warnings, "database.sslMode should be set to 'require', 'verify-ca', or 'verify-full' in production")
		}

		// Check timeout settings
		if cfg.Server.ReadTimeout < 5*time.Second {
			warnings = append(warnings, "server.readTimeout is too low for production")
		}

		if cfg.Server.WriteTimeout < 5*time.Second {
			warnings = append(warnings, "server.writeTimeout is too low for production")
		}

		if len(warnings) > 0 {
			log.Printf("Warning: potential security issues in production configuration: %v", warnings)
		}
	}

	return nil
}
