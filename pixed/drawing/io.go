package drawing

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Decode reads a drawing record and validates it. Records without pixel
// data are repaired to a transparent grid; records whose pixel count
// disagrees with their size fail with ErrCorrupt.
func Decode(r io.Reader) (*Drawing, error) {
	var d Drawing
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return nil, fmt.Errorf("failed to decode drawing: %w", err)
	}
	if !d.Validate() {
		return nil, fmt.Errorf("%w: %dx%d with %d pixels", ErrCorrupt, d.Width, d.Height, len(d.Pixels))
	}
	return &d, nil
}

// Encode writes the drawing record as JSON
func (d *Drawing) Encode(w io.Writer) error {
	if err := json.NewEncoder(w).Encode(d); err != nil {
		return fmt.Errorf("failed to encode drawing: %w", err)
	}
	return nil
}

// Load reads and validates a drawing file
func Load(path string) (*Drawing, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	d, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// Save writes the drawing to path. The data goes to a temporary file in the
// same directory first, so a failed write never truncates an existing drawing.
func (d *Drawing) Save(path string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create file in %s: %w", dir, err)
	}
	defer os.Remove(tmp.Name())

	if err := d.Encode(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
