package ocr

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// extractPDF rasterizes the first page of the PDF and OCRs the result.
// Identity fields sit on page one of the documents applicants upload; the
// rest of the document is not rasterized. All temp files are removed on
// every exit path.
func (e *Extractor) extractPDF(ctx context.Context, data []byte) string {
	tmpDir, err := os.MkdirTemp("", "bi-pdf-*")
	if err != nil {
		e.logger.Error("temp dir for pdf ocr", "error", err)
		return ""
	}
	defer func() {
		if rmErr := os.RemoveAll(tmpDir); rmErr != nil {
			e.logger.Error("failed to remove temp dir", "path", tmpDir, "error", rmErr)
		}
	}()

	pdfPath := filepath.Join(tmpDir, "doc.pdf")
	if err := os.WriteFile(pdfPath, data, 0o600); err != nil {
		e.logger.Error("write temp pdf", "error", err)
		return ""
	}

	prefix := filepath.Join(tmpDir, "page")
	// pdftoppm -f 1 -l 1 -r <dpi> -png <in.pdf> <tmp/page>
	_, errb, err := e.runner.Run(ctx, e.cfg.Pdftoppm,
		"-f", "1", "-l", "1", "-r", fmt.Sprintf("%d", e.cfg.DPI), "-png", pdfPath, prefix)
	if err != nil {
		e.logger.Error("pdf rasterization failed", "error", err, "stderr", truncate(string(errb), 2<<10))
		return ""
	}

	// pdftoppm names output prefix-1.png (zero padding varies by page count)
	matches, _ := filepath.Glob(prefix + "-*.png")
	sort.Strings(matches)
	if len(matches) == 0 {
		e.logger.Error("pdftoppm produced no images")
		return ""
	}

	txt, err := e.tesseractOCR(ctx, matches[0])
	if err != nil {
		e.logger.Error("pdf page ocr failed", "error", err)
		return ""
	}
	return txt
}
