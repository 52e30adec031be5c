package portfolio

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"
)

const (
	maxPortraitWidth = 640
	jpegQuality      = 85
)

// processPortrait decodes an image, scales it down to maxPortraitWidth when
// wider, and re-encodes it as JPEG.
func processPortrait(src io.Reader) ([]byte, error) {
	img, _, err := image.Decode(src)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w > maxPortraitWidth {
		newH := h * maxPortraitWidth / w
		dst := image.NewRGBA(image.Rect(0, 0, maxPortraitWidth, newH))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

func (a *App) portraitPath() string {
	if a.Config.PortraitPath != "" {
		return a.Config.PortraitPath
	}
	if a.Site.Owner.Portrait == "" {
		return ""
	}
	return filepath.Join(a.staticDir, a.Site.Owner.Portrait)
}

// loadPortrait prepares the portrait once at startup. A missing or broken
// image leaves the page on the initials fallback.
func (a *App) loadPortrait() {
	path := a.portraitPath()
	if path == "" {
		return
	}
	f, err := os.Open(path)
	if err != nil {
		a.Echo.Logger.Warnf("portrait: %v", err)
		return
	}
	defer f.Close()

	data, err := processPortrait(f)
	if err != nil {
		a.Echo.Logger.Warnf("portrait %s: %v", path, err)
		return
	}
	a.portrait = data
}
