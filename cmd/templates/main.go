package main

import (
	"context"
	"flag"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Aidin1998/templates/internal/infrastructure/config"
	"github.com/Aidin1998/templates/internal/infrastructure/database"
	"github.com/Aidin1998/templates/internal/infrastructure/server"
	"github.com/Aidin1998/templates/internal/infrastructure/tracing"
	"github.com/Aidin1998/templates/internal/templates"
	"github.com/Aidin1998/templates/pkg/logger"
	"github.com/Aidin1998/templates/pkg/metrics"
	pb "github.com/Aidin1998/templates/proto/templates"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
)

const dbStatsInterval = 30 * time.Second

func main() {
	os.Exit(serve(os.Args[1:]))
}

// serve runs the service and returns the process exit code. Deferred
// cleanup runs before main exits.
func serve(args []string) int {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	flags := flag.NewFlagSet("templates", flag.ContinueOnError)
	configFile := flags.String("config", "", "path to a YAML config file (default $CONFIG_FILE)")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load(configPath(*configFile))
	if err != nil {
		log.Printf("Failed to load configuration: %v", err)
		return 1
	}

	zapLogger, err := logger.NewLogger(cfg.Log.Level)
	if err != nil {
		log.Printf("Failed to create logger: %v", err)
		return 1
	}
	defer zapLogger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, zapLogger); err != nil {
		zapLogger.Error("Server exited with error", zap.Error(err))
		return 1
	}
	zapLogger.Info("Server stopped")
	return 0
}

// configPath prefers the -config flag, then CONFIG_FILE
func configPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv("CONFIG_FILE")
}

func run(ctx context.Context, cfg *config.Config, zapLogger *zap.Logger) error {
	db, err := database.Open(cfg.Database, zapLogger)
	if err != nil {
		return err
	}
	defer db.Close()

	tp, shutdownTracing, err := tracing.Setup(tracing.Config{
		Enabled:     cfg.Tracing.Enabled,
		ServiceName: cfg.Tracing.ServiceName,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			zapLogger.Warn("Failed to flush traces", zap.Error(err))
		}
	}()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(registry)

	manager := server.NewGRPCServiceManager(zapLogger)
	manager.RegisterService(pb.ServiceName, func(s *grpc.Server) {
		pb.RegisterTemplatesServer(s, templates.NewService(zapLogger, templates.NewGormStore(db.DB())))
	})

	grpcServer, err := server.NewGRPCServer(server.GRPCServerOptions{
		Config:         &cfg.GRPC,
		Logger:         zapLogger,
		Metrics:        m,
		TracerProvider: tp,
		ServiceManager: manager,
	})
	if err != nil {
		return err
	}

	lis, err := net.Listen("tcp", cfg.GRPC.Address)
	if err != nil {
		return err
	}
	zapLogger.Info("Run server on " + cfg.GRPC.Address)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return grpcServer.Start(lis) })

	var httpServer *server.HTTPServer
	if cfg.HTTP.Address != "" {
		httpServer, err = server.NewHTTPServer(server.HTTPServerOptions{
			Logger:   zapLogger,
			DB:       db,
			Gatherer: registry,
		})
		if err != nil {
			return err
		}
		httpLis, err := net.Listen("tcp", cfg.HTTP.Address)
		if err != nil {
			grpcServer.GetServer().Stop()
			return err
		}
		g.Go(func() error { return httpServer.Start(httpLis) })
	}

	// Schedule DB pool metrics collection
	g.Go(func() error {
		ticker := time.NewTicker(dbStatsInterval)
		defer ticker.Stop()
		for {
			select {
			case <-gctx.Done():
				return nil
			case <-ticker.C:
				if stats, err := db.Stats(); err == nil {
					m.ObserveDBStats(stats.OpenConnections, stats.Idle, stats.InUse)
				}
			}
		}
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GRPC.ShutdownTimeout)
		defer cancel()
		if err := grpcServer.Stop(shutdownCtx); err != nil {
			zapLogger.Warn("gRPC shutdown", zap.Error(err))
		}

		if httpServer != nil {
			httpCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
			defer cancel()
			if err := httpServer.Stop(httpCtx); err != nil {
				zapLogger.Warn("HTTP shutdown", zap.Error(err))
			}
		}
		return nil
	})

	return g.Wait()
}
