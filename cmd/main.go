package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	httpctx "github.com/dtroode/recommendme-server/internal/api/http/context"
	"github.com/dtroode/recommendme-server/internal/api/http/cookie"
	"github.com/dtroode/recommendme-server/internal/api/http/router"
	httpServer "github.com/dtroode/recommendme-server/internal/api/http/server"
	"github.com/dtroode/recommendme-server/internal/config"
	"github.com/dtroode/recommendme-server/internal/logger"
	"github.com/dtroode/recommendme-server/internal/model"
	"github.com/dtroode/recommendme-server/internal/repository/mongo"
	"github.com/dtroode/recommendme-server/internal/repository/postgres"
	"github.com/dtroode/recommendme-server/internal/server"
	"github.com/dtroode/recommendme-server/internal/service"
	"github.com/dtroode/recommendme-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

type stores struct {
	queries         model.QueryStore
	recommendations model.RecommendationStore
	close           func(ctx context.Context) error
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	st, err := openStores(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err, "driver", cfg.Store.Driver)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := st.close(closeCtx); err != nil {
			logger.Error("failed to close storage", "error", err)
		}
	}()

	serviceLogger := logger.With("layer", "service")
	tokenManager := token.NewJWT(cfg.JWT.Secret)
	tokenService := service.NewTokenService(tokenManager, serviceLogger)
	queryService := service.NewQuery(st.queries, serviceLogger, cfg.Store.OperationTimeout)
	recommendationService := service.NewRecommendation(st.recommendations, st.queries, serviceLogger, cfg.Store.OperationTimeout)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	r := router.New(
		queryService,
		recommendationService,
		tokenService,
		tokenService,
		httpctx.NewManager(),
		registry,
		router.Options{
			CORSOrigins: cfg.HTTP.CORSOrigins,
			RateLimit:   cfg.HTTP.RateLimit,
			Cookies:     cookie.NewPolicy(cfg.IsProduction()),
		},
		logger.With("layer", "http"),
	)
	srv := httpServer.NewHTTPServer(r.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port))

	var sl model.SecurityLayer
	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		if err := s.Start(sl); err != nil {
			logger.Error("failed to start server", "error", err)
			stop()
		}
	}(srv)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", srv.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func openStores(ctx context.Context, cfg *config.Config) (stores, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverPostgres:
		db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
		if err != nil {
			return stores{}, err
		}
		return stores{
			queries:         postgres.NewQueryRepository(db),
			recommendations: postgres.NewRecommendationRepository(db),
			close:           func(context.Context) error { return db.Close() },
		}, nil
	default:
		db, err := mongo.NewConnection(ctx, cfg.MongoURI(), cfg.Mongo.Database)
		if err != nil {
			return stores{}, err
		}
		return stores{
			queries:         mongo.NewQueryRepository(db),
			recommendations: mongo.NewRecommendationRepository(db),
			close:           db.Close,
		}, nil
	}
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
