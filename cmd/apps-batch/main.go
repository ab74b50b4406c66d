package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"github.com/mkiplagat/bursary-intake/gen/ent"
	"github.com/mkiplagat/bursary-intake/internal/common"
	"github.com/mkiplagat/bursary-intake/internal/export"
	"github.com/mkiplagat/bursary-intake/internal/intake"
	repo "github.com/mkiplagat/bursary-intake/internal/repository"
	"github.com/mkiplagat/bursary-intake/internal/scoring"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		inmem = flag.Bool("inmem", false, "use in-memory SQLite database")
		in    = flag.String("in", "", "JSON file with an array of submissions (required)")
		out   = flag.String("out", "", "output XLSX file path (optional, defaults to sibling of input)")
	)
	flag.Parse()

	if *in == "" {
		printError("Error: --in is required\n")
		os.Exit(1)
	}
	if *out == "" {
		*out = filepath.Join(filepath.Dir(*in), "priority-list.xlsx")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env file found")
	}

	ctx := context.Background()

	var entc *ent.Client
	if *inmem {
		client, err := repo.OpenSQLiteInMemory(ctx, logger)
		if err != nil {
			logger.Error("failed to open in-memory database", "error", err)
			os.Exit(1)
		}
		entc = client
		defer func() {
			if cerr := entc.Close(); cerr != nil {
				logger.Error("close ent client", "error", cerr)
			}
		}()
	} else {
		cfg := common.LoadConfig()
		if cfg.Database.DSN == "" {
			printError("Error: DB_URL required unless --inmem is set\n")
			os.Exit(1)
		}
		client, pool, err := repo.Open(ctx, repo.Config{
			DSN:             cfg.Database.DSN,
			MaxConns:        10,
			MinConns:        1,
			MaxConnLifetime: 30 * time.Minute,
			MaxConnIdleTime: 5 * time.Minute,
			DialTimeout:     3 * time.Second,
		}, logger)
		if err != nil {
			logger.Error("failed to open database", "error", err)
			os.Exit(1)
		}
		entc = client
		defer repo.Close(client, pool, logger)
	}

	profilesRepo := repo.NewProfileRepository(entc, logger)
	appsRepo := repo.NewApplicationRepository(entc, logger)
	docsRepo := repo.NewDocumentRepository(entc, logger)

	// Batch intake runs without Redis screening, verification, or email:
	// the input is an offline export, not live submissions.
	intakeSvc := intake.NewService(profilesRepo, appsRepo, docsRepo, nil, nil, nil, logger)

	raw, err := os.ReadFile(*in)
	if err != nil {
		logger.Error("failed to read input file", "path", *in, "error", err)
		os.Exit(1)
	}
	var payloads []json.RawMessage
	if err := json.Unmarshal(raw, &payloads); err != nil {
		logger.Error("input must be a JSON array of submissions", "error", err)
		os.Exit(1)
	}

	submitted := 0
	failures := 0
	for i, payload := range payloads {
		result, err := intakeSvc.SubmitRaw(ctx, payload)
		if err != nil {
			logger.Error("submission failed", "index", i, "error", err)
			failures++
			continue
		}
		logger.Info("submission accepted",
			"index", i,
			"application_number", result.Application.ApplicationNumber,
			"need_score", result.Score.Total,
		)
		submitted++
	}

	exportSvc := export.NewService(appsRepo, scoring.NewRanker(scoring.NewScorer()), logger)
	xlsx, rows, err := exportSvc.ExportPriorityListXLSX(ctx, "")
	if err != nil {
		logger.Error("failed to export priority list", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, xlsx, 0644); err != nil {
		logger.Error("failed to write output file", "path", *out, "error", err)
		os.Exit(1)
	}

	logger.Info("batch complete",
		"submitted", submitted,
		"failures", failures,
		"exported_rows", rows,
		"output", *out,
	)
}
