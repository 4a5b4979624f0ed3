package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	reconcilerv1 "github.com/joseph-ayodele/invoice-reconciler/gen/reconciler/v1"
	"github.com/joseph-ayodele/invoice-reconciler/internal/catalog"
	"github.com/joseph-ayodele/invoice-reconciler/internal/common"
	"github.com/joseph-ayodele/invoice-reconciler/internal/export"
	"github.com/joseph-ayodele/invoice-reconciler/internal/llm/openai"
	"github.com/joseph-ayodele/invoice-reconciler/internal/recon"
	"github.com/joseph-ayodele/invoice-reconciler/internal/repository"
	"github.com/joseph-ayodele/invoice-reconciler/internal/server"
)

func main() {
	logger, _ := zap.NewProduction()
	defer func() { _ = logger.Sync() }()
	log := logger.Sugar()
	slogger := slog.Default()

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	entc, pool, err := server.ConnectDB(ctx, cfg.Database, slogger)
	if err != nil {
		log.Fatalf("opening DB: %v", err)
	}
	defer server.CloseDB(entc, pool, slogger)

	if err := server.PingDB(ctx, pool, slogger, cfg.Database.DialTimeout); err != nil {
		log.Fatalf("DB health failed: %v", err)
	}
	log.Infow("DB health OK")

	if err := repository.Migrate(ctx, entc, slogger); err != nil {
		log.Fatalf("migrating schema: %v", err)
	}

	catalogRepo := repository.NewCatalogRepository(pool, slogger)
	mappingRepo := repository.NewMappingRepository(entc, slogger)
	auditRepo := repository.NewExtractionLogRepository(entc, slogger)

	cache := catalog.NewCache(cfg.Cache.TTL, slogger)
	reconciler := recon.New(mappingRepo, slogger)
	extractor := openai.NewClient(openai.Config{
		APIKey:      cfg.LLM.APIKey,
		BaseURL:     cfg.LLM.BaseURL,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
	}, slogger)
	exporter := export.NewService(slogger)

	// Warm the catalog before accepting traffic; a failure here is not fatal,
	// the first request retries.
	if _, err := cache.Get(ctx, catalogRepo.FetchAll, false); err != nil {
		log.Warnw("catalog warm-up failed", "error", err)
	}

	grpcServer := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	svc := server.NewReconcilerService(cache, catalogRepo, reconciler, extractor, auditRepo, exporter, cfg.Matcher, logger)
	reconcilerv1.RegisterReconcilerServiceServer(grpcServer, svc)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		log.Fatalf("listen: %v", err)
	}
	log.Infof("gRPC serving on %s", cfg.Server.GRPCAddr)

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			log.Fatalf("grpc serve: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")
	grpcServer.GracefulStop()
	fmt.Println("stopped.")
}
