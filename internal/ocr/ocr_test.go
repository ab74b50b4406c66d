package ocr

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRunner struct {
	stdout string
	err    error
	calls  [][]string
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	f.calls = append(f.calls, append([]string{name}, args...))
	return []byte(f.stdout), nil, f.err
}

func testExtractor(runner Runner) *Extractor {
	e := NewExtractor(Config{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	e.runner = runner
	return e
}

func tinyPNG(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 4))))
	return buf.Bytes()
}

func TestExtractUnsupportedExtension(t *testing.T) {
	runner := &fakeRunner{stdout: "should not run"}
	e := testExtractor(runner)

	assert.Empty(t, e.Extract(context.Background(), []byte("data"), ".docx"))
	assert.Empty(t, runner.calls)
}

func TestExtractImage(t *testing.T) {
	runner := &fakeRunner{stdout: "ID NO: 12345678"}
	e := testExtractor(runner)

	text := e.Extract(context.Background(), tinyPNG(t), "png")
	assert.Equal(t, "ID NO: 12345678", text)

	require.Len(t, runner.calls, 1)
	assert.Equal(t, "tesseract", runner.calls[0][0])
	assert.Contains(t, runner.calls[0], "--psm")
}

func TestExtractImageSoftFailsOnGarbage(t *testing.T) {
	runner := &fakeRunner{stdout: "unreachable"}
	e := testExtractor(runner)

	assert.Empty(t, e.Extract(context.Background(), []byte("not an image"), "jpg"))
	assert.Empty(t, runner.calls)
}
