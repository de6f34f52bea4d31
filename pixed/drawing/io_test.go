package drawing

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valerio/go-pixed/pixed/color"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	d, err := New(5, 3)
	require.NoError(t, err)
	fill(d)
	d.SetPixel(2, 1, color.RGBA(9, 8, 7, 6))

	path := filepath.Join(t.TempDir(), "art.json")
	require.NoError(t, d.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, d, loaded)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary files left behind")
}

func TestSaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "art.json")
	require.NoError(t, os.WriteFile(path, []byte("old content that is longer than the new one"), 0o644))

	d, err := New(1, 1)
	require.NoError(t, err)
	require.NoError(t, d.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, d, loaded)
}

func TestDecodeFormat(t *testing.T) {
	input := `{"width":2,"height":1,"pixels":[{"r":255,"g":0,"b":0,"a":255},{"r":0,"g":0,"b":0,"a":0}]}`
	d, err := Decode(strings.NewReader(input))
	require.NoError(t, err)

	c, ok := d.Pixel(0, 0)
	assert.True(t, ok)
	assert.Equal(t, color.RGBA(255, 0, 0, 255), c)

	var buf bytes.Buffer
	require.NoError(t, d.Encode(&buf))
	assert.JSONEq(t, input, buf.String())
}

func TestDecodeOmittedPixels(t *testing.T) {
	d, err := Decode(strings.NewReader(`{"width":3,"height":2}`))
	require.NoError(t, err)
	assert.Len(t, d.Pixels, 6)
	for _, p := range d.Pixels {
		assert.Equal(t, color.Transparent, p)
	}
}

func TestDecodeCorrupt(t *testing.T) {
	_, err := Decode(strings.NewReader(`{"width":3,"height":2,"pixels":[{"r":1,"g":2,"b":3,"a":4}]}`))
	assert.ErrorIs(t, err, ErrCorrupt)

	_, err = Decode(strings.NewReader(`{"width":0,"height":2}`))
	assert.ErrorIs(t, err, ErrCorrupt)

	_, err = Decode(strings.NewReader(`not json`))
	assert.Error(t, err)
}

func TestDecodeOversized(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"wrapping product without pixels", `{"width":4294967296,"height":4294967296}`},
		{"unallocatable size without pixels", `{"width":1000000000,"height":1000000000}`},
		{"side above the limit", `{"width":1025,"height":1}`},
		{"wrapping product with pixels", `{"width":4294967296,"height":4294967296,"pixels":[{"r":1,"g":2,"b":3,"a":4}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Decode(strings.NewReader(tt.input))
			assert.ErrorIs(t, err, ErrCorrupt)
			assert.Nil(t, d)
		})
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
