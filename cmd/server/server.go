package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/brainmon-api/internal/clients/opentdb"
	"github.com/KirkDiggler/brainmon-api/internal/clients/pokeapi"
	"github.com/KirkDiggler/brainmon-api/internal/config"
	"github.com/KirkDiggler/brainmon-api/internal/errors"
	"github.com/KirkDiggler/brainmon-api/internal/handlers/brainmon/v1alpha1"
	"github.com/KirkDiggler/brainmon-api/internal/orchestrators/encounter"
	"github.com/KirkDiggler/brainmon-api/internal/pkg/clock"
	"github.com/KirkDiggler/brainmon-api/internal/pkg/idgen"
	"github.com/KirkDiggler/brainmon-api/internal/pkg/task"
	redisclient "github.com/KirkDiggler/brainmon-api/internal/redis"
	"github.com/KirkDiggler/brainmon-api/internal/repositories/monsters"
	"github.com/KirkDiggler/brainmon-api/internal/services/collection"
	"github.com/KirkDiggler/brainmon-api/internal/services/progress"
)

const shutdownTimeout = 30 * time.Second

var (
	configPath string
	grpcPort   int
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Start the BrainMon API gRPC server with all configured services.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().StringVar(&configPath, "config", "", "Path to a YAML config file")
	serverCmd.Flags().IntVar(&grpcPort, "port", 0, "gRPC server port (overrides config)")
}

func runServer(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if grpcPort > 0 {
		cfg.Server.Port = grpcPort
	}

	config.SetupLogger(cfg.Server, os.Stdout)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Received shutdown signal, gracefully stopping...")
		cancel()
	}()

	repo, closeRepo, err := openRepository(ctx, cfg.Store)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeRepo(); err != nil {
			slog.Warn("Failed to close monster store", "error", err)
		}
	}()

	pokeClient, err := pokeapi.New(&pokeapi.Config{
		BaseURL:     cfg.PokeAPI.BaseURL,
		HTTPTimeout: cfg.PokeAPI.Timeout,
	})
	if err != nil {
		return fmt.Errorf("failed to create pokeapi client: %w", err)
	}

	triviaClient, err := opentdb.New(&opentdb.Config{
		BaseURL:     cfg.OpenTDB.BaseURL,
		HTTPTimeout: cfg.OpenTDB.Timeout,
	})
	if err != nil {
		return fmt.Errorf("failed to create opentdb client: %w", err)
	}

	collectionService, err := collection.NewService(&collection.Config{
		Repository: repo,
		Clock:      clock.New(),
	})
	if err != nil {
		return fmt.Errorf("failed to create collection service: %w", err)
	}

	tracker, err := progress.NewTracker(&progress.TrackerConfig{
		Collection: collectionService,
	})
	if err != nil {
		return fmt.Errorf("failed to create progress tracker: %w", err)
	}
	go func() {
		if err := tracker.Run(ctx); err != nil {
			slog.Error("Progress tracker stopped", "error", err)
		}
	}()

	runner := task.NewRunner()

	encounterService, err := encounter.NewOrchestrator(&encounter.Config{
		PokeAPI:      pokeClient,
		Trivia:       triviaClient,
		Collection:   collectionService,
		IDGenerator:  idgen.NewUUID("enc"),
		Roller:       dice.DefaultRoller,
		Runner:       runner,
		FetchTimeout: cfg.Battle.FetchTimeout,
		DeleteDelay:  cfg.Battle.DeleteDelay,
	})
	if err != nil {
		return fmt.Errorf("failed to create encounter orchestrator: %w", err)
	}

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		EncounterService:  encounterService,
		CollectionService: collectionService,
		Progress:          tracker,
	})
	if err != nil {
		return fmt.Errorf("failed to create brainmon handler: %w", err)
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Server.Port))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.UnaryServerInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.StreamServerInterceptor(),
		),
	)

	v1alpha1.RegisterBrainmonServiceServer(srv, handler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)

	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	errChan := make(chan error, 1)
	go func() {
		slog.Info("gRPC server starting",
			"port", cfg.Server.Port,
			"store", cfg.Store.Engine,
		)
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutting down gRPC server...")
		healthServer.Shutdown()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-shutdownCtx.Done():
			slog.Warn("Graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			slog.Info("Server stopped gracefully")
		}

		if err := runner.Wait(shutdownCtx); err != nil {
			slog.Warn("Background tasks still running at shutdown", "error", err)
		}

		return nil
	case err := <-errChan:
		return err
	}
}

// openRepository connects the configured monster store
func openRepository(ctx context.Context, cfg config.StoreConfig) (monsters.Repository, func() error, error) {
	switch cfg.Engine {
	case config.StoreEngineRedis:
		client, err := redisclient.Connect(ctx, cfg.RedisAddr, nil)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
		}

		repo, err := monsters.NewRedis(&monsters.RedisConfig{
			Client: client,
			Clock:  clock.New(),
		})
		if err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("failed to create redis repository: %w", err)
		}

		slog.Info("Using redis monster store", "addr", cfg.RedisAddr)
		return repo, client.Close, nil

	case config.StoreEngineSQLite:
		repo, err := monsters.NewSQLite(ctx, &monsters.SQLiteConfig{
			Path:  cfg.SQLitePath,
			Clock: clock.New(),
		})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open sqlite repository: %w", err)
		}

		slog.Info("Using sqlite monster store", "path", cfg.SQLitePath)
		return repo, repo.Close, nil

	default:
		return nil, nil, errors.InvalidArgumentf("unknown store engine %q", cfg.Engine)
	}
}

func logFunc(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
	slog.Log(ctx, slog.Level(level), msg, fields...)
}
