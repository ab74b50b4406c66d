package ocr

import (
	"bytes"
	"context"
	"image"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"

	_ "image/jpeg" // registers JPEG decoding

	_ "golang.org/x/image/tiff" // registers TIFF decoding
)

// extractImage decodes the image, converts it to grayscale, and runs OCR
// over the preprocessed copy. Grayscale improves signal-to-noise on printed
// government ID layouts.
func (e *Extractor) extractImage(ctx context.Context, data []byte) string {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		e.logger.Error("image decode failed", "error", err)
		return ""
	}

	tmpDir, err := os.MkdirTemp("", "bi-img-*")
	if err != nil {
		e.logger.Error("temp dir for image ocr", "error", err)
		return ""
	}
	defer func() {
		if rmErr := os.RemoveAll(tmpDir); rmErr != nil {
			e.logger.Error("failed to remove temp dir", "path", tmpDir, "error", rmErr)
		}
	}()

	grayPath := filepath.Join(tmpDir, "gray.png")
	if err := writeGrayscalePNG(img, grayPath); err != nil {
		e.logger.Error("grayscale conversion failed", "format", format, "error", err)
		return ""
	}

	txt, err := e.tesseractOCR(ctx, grayPath)
	if err != nil {
		e.logger.Error("image ocr failed", "format", format, "error", err)
		return ""
	}
	return txt
}

// writeGrayscalePNG renders img into an 8-bit grayscale PNG at path.
func writeGrayscalePNG(img image.Image, path string) error {
	gray := image.NewGray(img.Bounds())
	draw.Draw(gray, gray.Bounds(), img, img.Bounds().Min, draw.Src)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, gray); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
