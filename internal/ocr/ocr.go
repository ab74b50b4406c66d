package ocr

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"

	"github.com/mkiplagat/bursary-intake/constants"
)

type Config struct {
	Tesseract string // binary name or absolute path; if empty -> "tesseract"
	Pdftoppm  string // binary name or absolute path; if empty -> "pdftoppm"

	TesseractLang string // default "eng"
	DPI           int    // rasterization DPI for PDF first pages, default 300
	TessdataDir   string

	PSM int // 6 is good for the uniform block layout of printed ID documents
}

// Extractor turns a document (bytes + declared extension) into raw OCR text.
//
// It fails soft: any decode or OCR error is logged and yields empty text,
// never an error to the caller. The caller decides whether empty text is a
// verification failure.
type Extractor struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.TesseractLang == "" {
		cfg.TesseractLang = "eng"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 300
	}
	if cfg.PSM <= 0 {
		cfg.PSM = 6
	}
	return &Extractor{cfg: cfg, runner: execRunner{}, logger: logger}
}

// Extract picks a strategy based on the declared file extension.
// Unsupported extensions yield empty text, not an error.
func (e *Extractor) Extract(ctx context.Context, data []byte, fileExt string) string {
	ext := constants.NormalizeExt(fileExt)
	e.logger.Debug("starting ocr extraction", "ext", ext, "bytes", len(data))
	switch constants.MapExtToFormat(ext) {
	case constants.PDF:
		return e.extractPDF(ctx, data)
	case constants.IMAGE:
		return e.extractImage(ctx, data)
	default:
		e.logger.Warn("unsupported document extension", "extension", ext)
		return ""
	}
}

// Available reports whether the OCR dependency is usable, with a
// human-readable message either way. Callers degrade gracefully (skip
// verification, route to manual review) when it is not.
func (e *Extractor) Available(ctx context.Context) (bool, string) {
	if _, err := exec.LookPath(e.cfg.Tesseract); err != nil {
		return false, fmt.Sprintf("tesseract not found in PATH: %v", err)
	}
	out, _, err := e.runner.Run(ctx, e.cfg.Tesseract, "--version")
	if err != nil {
		return false, fmt.Sprintf("tesseract not runnable: %v", err)
	}
	version := strings.TrimSpace(strings.SplitN(string(out), "\n", 2)[0])
	return true, fmt.Sprintf("document verification available (%s)", version)
}

func (e *Extractor) tesseractOCR(ctx context.Context, path string) (string, error) {
	args := []string{path, "stdout", "-l", e.cfg.TesseractLang, "--psm", fmt.Sprintf("%d", e.cfg.PSM)}
	if e.cfg.TessdataDir != "" {
		args = append(args, "--tessdata-dir", e.cfg.TessdataDir)
	}

	// tesseract <file> stdout -l <lang> --psm <psm>
	out, _, err := e.runner.Run(ctx, e.cfg.Tesseract, args...)
	if err != nil {
		return "", fmt.Errorf("tesseract: %w", err)
	}
	return string(out), nil
}
