package export

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"
)

// FileName returns "<prefix><date>.<ext>", e.g. "spiro18Oct2026-142501.png".
func FileName(prefix string, t time.Time, ext string) string {
	return prefix + t.Format("02Jan2006-150405") + "." + ext
}

// WritePNG encodes img to path, creating parent directories as needed.
func WritePNG(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(path), err)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
