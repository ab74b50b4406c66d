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

	"github.com/mkiplagat/bursary-intake/constants"
	"github.com/mkiplagat/bursary-intake/internal/common"
	"github.com/mkiplagat/bursary-intake/internal/ocr"
	"github.com/mkiplagat/bursary-intake/internal/utils"
	"github.com/mkiplagat/bursary-intake/internal/verify"
)

// verifydoc runs the verification pipeline against a single local file and
// prints the verdict as JSON. Useful for tuning OCR settings and inspecting
// extraction quality without a running server.
func main() {
	var (
		file = flag.String("file", "", "document file to verify (required)")
		name = flag.String("name", "", "expected applicant full name")
		id   = flag.String("id", "", "expected national ID number")
		dob  = flag.String("dob", "", "expected date of birth YYYY-MM-DD")
	)
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if *file == "" {
		logger.Error("usage", "cmd", "verifydoc -file <path> [-name NAME] [-id IDNUMBER] [-dob YYYY-MM-DD]")
		os.Exit(2)
	}
	ext := constants.NormalizeExt(filepath.Ext(*file))
	if !constants.IsAllowedExt(ext) {
		logger.Error("unsupported file extension", "ext", ext)
		os.Exit(2)
	}

	expected := verify.Expected{Name: *name, IDNumber: *id}
	if *dob != "" {
		t, err := utils.ParseYMD(*dob)
		if err != nil {
			logger.Error("invalid -dob (must be YYYY-MM-DD)", "dob", *dob, "error", err)
			os.Exit(2)
		}
		expected.DateOfBirth = &t
	}

	data, err := os.ReadFile(*file)
	if err != nil {
		logger.Error("read file", "path", *file, "error", err)
		os.Exit(1)
	}

	cfg := common.LoadConfig()
	extractor := ocr.NewExtractor(ocr.Config{
		Tesseract:     cfg.OCR.Tesseract,
		Pdftoppm:      cfg.OCR.Pdftoppm,
		TesseractLang: cfg.OCR.Language,
		DPI:           cfg.OCR.DPI,
		TessdataDir:   cfg.OCR.TessdataDir,
	}, logger)
	verifier := verify.NewVerifier(extractor, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	start := time.Now()
	verdict := verifier.Verify(ctx, data, ext, expected)
	logger.Info("verification done",
		"verified", verdict.Verified,
		"confidence", verdict.Confidence,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	out, err := json.MarshalIndent(verdict, "", "  ")
	if err != nil {
		logger.Error("encode verdict", "error", err)
		os.Exit(1)
	}
	fmt.Println(string(out))

	if !verdict.Verified {
		os.Exit(1)
	}
}
