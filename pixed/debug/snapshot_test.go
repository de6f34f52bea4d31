package debug

import (
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valerio/go-pixed/pixed/color"
	"github.com/valerio/go-pixed/pixed/display"
	"github.com/valerio/go-pixed/pixed/drawing"
)

func testDrawing(t *testing.T) *drawing.Drawing {
	t.Helper()
	d, err := drawing.New(2, 1)
	require.NoError(t, err)
	d.SetPixel(0, 0, color.RGBA(255, 0, 0, 128))
	return d
}

func TestImage(t *testing.T) {
	img := Image(testDrawing(t))

	assert.Equal(t, 2, img.Bounds().Dx())
	assert.Equal(t, 1, img.Bounds().Dy())
	assert.Equal(t, []uint8{255, 0, 0, 128, 0, 0, 0, 0}, img.Pix)
}

func TestScale(t *testing.T) {
	img := Scale(Image(testDrawing(t)), 3)

	require.Equal(t, 6, img.Bounds().Dx())
	require.Equal(t, 3, img.Bounds().Dy())
	for y := 0; y < 3; y++ {
		for x := 0; x < 6; x++ {
			got := img.NRGBAAt(x, y)
			if x < 3 {
				assert.Equal(t, uint8(255), got.R, "(%d,%d)", x, y)
				assert.Equal(t, uint8(128), got.A, "(%d,%d)", x, y)
			} else {
				assert.Equal(t, uint8(0), got.A, "(%d,%d)", x, y)
			}
		}
	}
}

func TestTakeSnapshot(t *testing.T) {
	dir := t.TempDir()

	path, err := TakeSnapshot(testDrawing(t), dir, 0)
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(path))
	assert.True(t, strings.HasPrefix(filepath.Base(path), display.SnapshotBaseName))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 2*display.DefaultSnapshotScale, img.Bounds().Dx())
	assert.Equal(t, display.DefaultSnapshotScale, img.Bounds().Dy())
}

func TestTakeSnapshot_NoDrawing(t *testing.T) {
	_, err := TakeSnapshot(nil, t.TempDir(), 1)
	assert.Error(t, err)
}
