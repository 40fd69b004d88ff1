package display

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/plus3/radial"
	"github.com/plus3/radial/loop"
)

// Headless drives a clock on simulated time, without a window, and renders
// the final snapshot.
type Headless struct {
	Clock    *loop.Clock
	Renderer *Renderer
	// Tick is the simulated time between two ticks.
	Tick time.Duration
	// Start is the simulated time of the first tick.
	Start time.Time
}

// Run performs n ticks and returns the last rendered frame as an image.
func (h *Headless) Run(n int) image.Image {
	now := h.Start
	if now.IsZero() {
		now = time.Unix(0, 0)
	}
	for range n {
		h.Clock.Once(now)
		now = now.Add(h.Tick)
	}
	snap := h.Clock.Latest()
	radial.Logger().Info("headless run finished",
		"ticks", n, "state", snap.State, "score", snap.Score, "angle", snap.Angle)

	frame := h.Renderer.Render(snap)
	return frame.SubImage(frame.Bounds())
}

// WriteFile runs n ticks and encodes the result to path. The format follows
// the extension: .png (default), .bmp or .tif/.tiff.
func (h *Headless) WriteFile(path string, n int) error {
	img := h.Run(n)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := Encode(f, path, img); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	radial.Logger().Info("frame written", "path", path)
	return nil
}

// Encode writes img in the format named by the extension of path.
func Encode(w io.Writer, path string, img image.Image) error {
	var err error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".bmp":
		err = bmp.Encode(w, img)
	case ".tif", ".tiff":
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		err = png.Encode(w, img)
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}
