package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"league-history/config"
	"league-history/database"
	"league-history/handlers"
	"league-history/interfaces"
	"league-history/logging"
	"league-history/middleware"
	"league-history/services"
	"league-history/templates"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logging.Configure(cfg.ToLoggingConfig(), cfg.ToLogFileConfig()); err != nil {
		logging.Fatalf("Failed to configure logging: %v", err)
	}
	defer logging.Close()

	cfg.LogConfiguration()
	logger := logging.WithPrefix("Main")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// MongoDB is only needed when league data lives there
	var matchStore services.MatchStore
	var managerStore services.ManagerStore
	var importer interfaces.ImportServiceInterface
	if cfg.UsesMongo() {
		db, err := database.NewMongoConnection(ctx, cfg.ToDatabaseConfig())
		if err != nil {
			logger.Fatalf("Database connection failed: %v", err)
		}
		defer db.Close()

		matchRepo := database.NewMongoMatchRepository(ctx, db)
		managerRepo := database.NewMongoManagerRepository(ctx, db)
		matchStore, managerStore = matchRepo, managerRepo
		importer = services.NewLeagueImportService(matchRepo, managerRepo)
	}

	source, err := services.NewLeagueSource(cfg.ToSourceConfig(), matchStore, managerStore)
	if err != nil {
		logger.Fatalf("Failed to create league source: %v", err)
	}

	tmpl, err := templates.Parse()
	if err != nil {
		logger.Fatalf("Error parsing templates: %v", err)
	}

	// Services
	loader := services.NewLeagueLoader(source)
	leagueService := services.NewLeagueService(loader, cfg.ToPlacementRules(), cfg.League.Name)
	chartService := services.NewChartService(leagueService, cfg.ToChartOptions())
	ballotMailer := services.NewBallotMailer(cfg.ToMailConfig())
	authService := services.NewAdminAuthService(cfg.Auth.AdminPasswordHash, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(authService)
	loginLimiter := middleware.NewRateLimiter(cfg.Auth.LoginRate, cfg.Auth.LoginBurst, cfg.Server.BehindProxy)
	go loginLimiter.Run(time.Minute, ctx.Done())

	routes := handlers.Routes{
		League:       handlers.NewLeagueHandler(tmpl, leagueService, cfg.Chart.Width, cfg.Chart.Height),
		Charts:       handlers.NewChartHandler(chartService),
		Votes:        handlers.NewVoteHandler(tmpl, cfg.League.Name, ballotMailer),
		API:          handlers.NewAPIHandler(leagueService, authService, importer, cfg.Data.Dir),
		Health:       handlers.NewHealthHandler(leagueService, loader.Source().Name()),
		Metrics:      promhttp.Handler(),
		RequireAdmin: authMiddleware.RequireAdmin,
		LoginLimit:   loginLimiter.Limit,
		Middleware: []mux.MiddlewareFunc{
			middleware.RequestLogger,
			middleware.SecurityMiddleware(cfg.Server.BehindProxy),
		},
	}
	router := handlers.NewRouter(routes)

	server := &http.Server{
		Addr:              cfg.GetServerAddress(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       time.Minute,
		ErrorLog:          logging.GetGlobalLogger().StdLogger(logging.ERROR),
	}

	go func() {
		<-ctx.Done()
		logger.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Errorf("Graceful shutdown failed: %v", err)
		}
	}()

	if cfg.Server.UseTLS && !cfg.Server.BehindProxy {
		logger.Infof("HTTPS server starting on %s", server.Addr)
		err = server.ListenAndServeTLS(cfg.Server.CertFile, cfg.Server.KeyFile)
	} else {
		logger.Infof("HTTP server starting on %s", server.Addr)
		err = server.ListenAndServe()
	}
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatalf("Server failed: %v", err)
	}
	logger.Info("Server stopped")
}
