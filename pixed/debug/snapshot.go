package debug

import (
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/image/draw"

	"github.com/valerio/go-pixed/pixed/display"
	"github.com/valerio/go-pixed/pixed/drawing"
)

// Image converts the drawing to an image with straight alpha, one image
// pixel per drawing pixel.
func Image(d *drawing.Drawing) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, d.Width, d.Height))
	for y := 0; y < d.Height; y++ {
		for x := 0; x < d.Width; x++ {
			c, _ := d.Pixel(x, y)
			i := img.PixOffset(x, y)
			img.Pix[i] = c.R
			img.Pix[i+1] = c.G
			img.Pix[i+2] = c.B
			img.Pix[i+3] = c.A
		}
	}
	return img
}

// Scale upscales img by an integer factor without smoothing, so every
// drawing pixel becomes a crisp square.
func Scale(img *image.NRGBA, factor int) *image.NRGBA {
	if factor <= 1 {
		return img
	}
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// SavePNG writes the drawing to path as a PNG, upscaled by scale
func SavePNG(d *drawing.Drawing, path string, scale int) error {
	img := Scale(Image(d), scale)

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", path, err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}

	slog.Info("Snapshot saved", "path", path, "size", fmt.Sprintf("%dx%d", img.Bounds().Dx(), img.Bounds().Dy()))
	return nil
}

// TakeSnapshot saves a timestamped PNG of the drawing into directory, or
// the working directory when directory is empty. It returns the file path.
func TakeSnapshot(d *drawing.Drawing, directory string, scale int) (string, error) {
	if d == nil {
		return "", fmt.Errorf("no drawing to snapshot")
	}
	if scale <= 0 {
		scale = display.DefaultSnapshotScale
	}

	if directory == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get current directory: %w", err)
		}
		directory = cwd
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(directory, fmt.Sprintf("%s_%s.png", display.SnapshotBaseName, timestamp))
	if err := SavePNG(d, path, scale); err != nil {
		return "", err
	}
	return path, nil
}
