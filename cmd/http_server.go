package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ceramiqa/quality-management/internal"
	"github.com/ceramiqa/quality-management/internal/activitylog"
	activitylogPostgres "github.com/ceramiqa/quality-management/internal/activitylog/postgres"
	"github.com/ceramiqa/quality-management/internal/auth"
	authPostgres "github.com/ceramiqa/quality-management/internal/auth/postgres"
	"github.com/ceramiqa/quality-management/internal/campaign"
	campaignPostgres "github.com/ceramiqa/quality-management/internal/campaign/postgres"
	"github.com/ceramiqa/quality-management/internal/compliance"
	compliancePostgres "github.com/ceramiqa/quality-management/internal/compliance/postgres"
	"github.com/ceramiqa/quality-management/internal/core/events"
	"github.com/ceramiqa/quality-management/internal/dashboard"
	"github.com/ceramiqa/quality-management/internal/energy"
	energyPostgres "github.com/ceramiqa/quality-management/internal/energy/postgres"
	"github.com/ceramiqa/quality-management/internal/production"
	productionPostgres "github.com/ceramiqa/quality-management/internal/production/postgres"
	"github.com/ceramiqa/quality-management/internal/quality"
	qualityPostgres "github.com/ceramiqa/quality-management/internal/quality/postgres"
	"github.com/ceramiqa/quality-management/internal/transport/rest"
	"github.com/ceramiqa/quality-management/internal/transport/swagger"
	"github.com/ceramiqa/quality-management/internal/user"
	userPostgres "github.com/ceramiqa/quality-management/internal/user/postgres"
	"github.com/ceramiqa/quality-management/internal/waste"
	wastePostgres "github.com/ceramiqa/quality-management/internal/waste/postgres"
	"github.com/ceramiqa/quality-management/pkg/logger"

	"github.com/go-chi/chi"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	gormPostgres "gorm.io/driver/postgres"
	gormSqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config *internal.Config
	DB     *sqlx.DB
	Gorm   *gorm.DB
	Router *chi.Mux
	Logger *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	if err := setupRoutes(deps); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up routes: %v\n", err)
		os.Exit(1)
	}

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	deps.Logger.Info("starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      deps.Router,
		ReadTimeout:  deps.Config.Server.ReadTimeout,
		WriteTimeout: deps.Config.Server.WriteTimeout,
		IdleTimeout:  deps.Config.Server.IdleTimeout,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		deps.Logger.Info("received signal, shutting down", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			deps.Logger.Error("server shutdown error", "error", err)
		}
		if deps.DB != nil {
			if err := deps.DB.Close(); err != nil {
				deps.Logger.Error("database close error", "error", err)
			}
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			deps.Logger.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}

	deps.Logger.Info("server stopped")
}

func setupRoutes(deps *Dependencies) error {
	cfg := deps.Config
	lg := deps.Logger

	if err := swagger.ValidateSpec(context.Background(), cfg.App.OpenAPIPath); err != nil {
		return err
	}

	bus := events.NewEventBus(lg)

	tokenGen := auth.NewJWTTokenGenerator(
		cfg.Security.AccessTokenSecret,
		cfg.Security.RefreshTokenSecret,
		cfg.Security.AccessTokenDuration,
		cfg.Security.RefreshTokenDuration,
	)

	authService := auth.NewService(authPostgres.NewRepository(deps.Gorm), tokenGen, bus, lg, cfg.Security.BCryptCost)
	userService := user.NewService(userPostgres.NewUserRepository(deps.Gorm), bus, lg)
	productionService := production.NewService(productionPostgres.NewLotRepository(deps.Gorm), lg)
	qualityService := quality.NewService(qualityPostgres.NewTestRepository(deps.Gorm), productionService, bus, lg)
	energyService := energy.NewService(energyPostgres.NewRepository(deps.Gorm), lg)
	wasteService := waste.NewService(wastePostgres.NewRepository(deps.Gorm), lg)
	complianceService := compliance.NewService(compliancePostgres.NewRepository(deps.Gorm), bus, lg)
	campaignService := campaign.NewService(campaignPostgres.NewRepository(deps.Gorm), lg)
	dashboardService := dashboard.NewService(productionService, qualityService, energyService, wasteService, lg)

	activityService := activitylog.NewService(activitylogPostgres.NewRepository(deps.Gorm), lg)
	activityService.RegisterSubscriptions(bus)

	handlers := rest.Handlers{
		Auth:        auth.NewHandler(authService),
		User:        user.NewHandler(userService),
		Production:  production.NewHandler(productionService),
		Quality:     quality.NewHandler(qualityService),
		Energy:      energy.NewHandler(energyService),
		Waste:       waste.NewHandler(wasteService),
		Compliance:  compliance.NewHandler(complianceService),
		Campaign:    campaign.NewHandler(campaignService),
		Dashboard:   dashboard.NewHandler(dashboardService),
		ActivityLog: activitylog.NewHandler(activityService),
	}

	rbac := auth.NewRBACAuthorization(lg)

	// The readiness probe pings the raw pool; sqlite runs without one.
	var rawDB *sql.DB
	if deps.DB != nil {
		rawDB = deps.DB.DB
	}
	rest.RegisterAllRoutes(deps.Router, rawDB, handlers, rbac, lg)
	return nil
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(config.App.Environment)
	lg := logger.LoggerWrapper()

	var (
		sqlDB  *sqlx.DB
		gormDB *gorm.DB
	)

	switch config.Database.Driver {
	case "sqlite":
		gormDB, err = gorm.Open(gormSqlite.Open(config.Database.Source), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite database: %w", err)
		}
	default:
		sqlDB, err = initDB(config.Database)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		gormDB, err = gorm.Open(gormPostgres.New(gormPostgres.Config{Conn: sqlDB.DB}), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("failed to wrap database connection: %w", err)
		}
	}

	return &Dependencies{
		Config: config,
		DB:     sqlDB,
		Gorm:   gormDB,
		Router: chi.NewRouter(),
		Logger: lg,
	}, nil
}

// initDB opens the pgx connection pool shared by gorm and the health check.
func initDB(cfg internal.DatabaseConfig) (*sqlx.DB, error) {
	const driver = "pgx"

	dbConn, err := sqlx.Connect(driver, cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	dbConn.SetMaxIdleConns(cfg.MaxIdleConns)
	dbConn.SetMaxOpenConns(cfg.MaxOpenConns)
	dbConn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	dbConn.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if err := dbConn.Ping(); err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return dbConn, nil
}
