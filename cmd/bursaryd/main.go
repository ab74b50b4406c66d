package main

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	bursarypb "github.com/mkiplagat/bursary-intake/gen/proto/bursary/v1"
	"github.com/mkiplagat/bursary-intake/internal/analytics"
	"github.com/mkiplagat/bursary-intake/internal/cache"
	"github.com/mkiplagat/bursary-intake/internal/common"
	"github.com/mkiplagat/bursary-intake/internal/export"
	"github.com/mkiplagat/bursary-intake/internal/intake"
	"github.com/mkiplagat/bursary-intake/internal/notify"
	"github.com/mkiplagat/bursary-intake/internal/ocr"
	repo "github.com/mkiplagat/bursary-intake/internal/repository"
	"github.com/mkiplagat/bursary-intake/internal/scoring"
	svc "github.com/mkiplagat/bursary-intake/internal/server"
	"github.com/mkiplagat/bursary-intake/internal/verify"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env file found")
	}

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	profilesRepo := repo.NewProfileRepository(entc, logger)
	appsRepo := repo.NewApplicationRepository(entc, logger)
	docsRepo := repo.NewDocumentRepository(entc, logger)

	extractor := ocr.NewExtractor(ocr.Config{
		Tesseract:     cfg.OCR.Tesseract,
		Pdftoppm:      cfg.OCR.Pdftoppm,
		TesseractLang: cfg.OCR.Language,
		DPI:           cfg.OCR.DPI,
		TessdataDir:   cfg.OCR.TessdataDir,
	}, logger)
	verifier := verify.NewVerifier(extractor, logger)
	if ok, detail := extractor.Available(ctx); !ok {
		logger.Warn("OCR tooling unavailable, documents will be flagged for manual review", "detail", detail)
	}

	var screener intake.IDScreener
	if cfg.Redis.Addr != "" {
		idcache, err := cache.Open(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.TTL, logger)
		if err != nil {
			logger.Error("failed to connect to redis", "error", err)
			os.Exit(1)
		}
		defer func() {
			if cerr := idcache.Close(); cerr != nil {
				logger.Error("failed to close redis client", "error", cerr)
			}
		}()
		screener = idcache
	} else {
		logger.Warn("REDIS_ADDR not set, duplicate screening relies on the database only")
	}

	var notifier notify.Notifier = notify.Noop{}
	if cfg.Email.Enabled {
		sesNotifier, err := notify.NewSESNotifier(ctx, cfg.Email.Region, cfg.Email.FromAddress, logger)
		if err != nil {
			logger.Error("failed to initialize SES", "error", err)
			os.Exit(1)
		}
		notifier = sesNotifier
	}

	intakeSvc := intake.NewService(profilesRepo, appsRepo, docsRepo, screener, verifier, notifier, logger)
	exportSvc := export.NewService(appsRepo, scoring.NewRanker(scoring.NewScorer()), logger)
	analyticsSvc := analytics.NewService(appsRepo, profilesRepo, logger)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	bursaryService := svc.NewBursaryService(
		intakeSvc, appsRepo, docsRepo, profilesRepo, verifier, exportSvc, analyticsSvc, notifier, logger)
	bursarypb.RegisterBursaryServiceServer(grpcServer, bursaryService)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)

	if cfg.Server.MetricsAddr != "" {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			logger.Info("metrics listening", "addr", cfg.Server.MetricsAddr)
			if err := http.ListenAndServe(cfg.Server.MetricsAddr, mux); err != nil {
				logger.Error("metrics server error", "error", err)
			}
		}()
	}

	logger.Info("bursary-intake listening", "addr", cfg.Server.GRPCAddr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	grpcServer.GracefulStop()
}
