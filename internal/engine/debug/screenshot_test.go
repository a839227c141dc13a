package debug

import (
	"image/png"
	"os"
	"strings"
	"testing"
)

func TestCaptureFromPixels(t *testing.T) {
	dir := t.TempDir()
	sc := NewScreenshotCapture(dir, "shot")

	// 2x2 image: bottom row red, top row green in GL order
	pixels := []byte{
		255, 0, 0, 255, 255, 0, 0, 255,
		0, 255, 0, 255, 0, 255, 0, 255,
	}

	path, err := sc.CaptureFromPixels(pixels, 2, 2)
	if err != nil {
		t.Fatalf("capture failed: %v", err)
	}
	if !strings.HasPrefix(path, dir) {
		t.Errorf("screenshot written outside output dir: %s", path)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("screenshot not written: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("invalid PNG: %v", err)
	}
	if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 2 {
		t.Errorf("expected 2x2 image, got %v", img.Bounds())
	}

	// GL rows are bottom-up, so the green row lands on top
	r, g, _, _ := img.At(0, 0).RGBA()
	if r != 0 || g != 0xffff {
		t.Errorf("expected green at top-left, got r=%d g=%d", r, g)
	}
}

func TestCaptureFromPixelsSizeMismatch(t *testing.T) {
	sc := NewScreenshotCapture(t.TempDir(), "shot")

	if _, err := sc.CaptureFromPixels(make([]byte, 7), 2, 2); err == nil {
		t.Error("expected error on truncated pixel data")
	}
}
