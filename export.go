package scrawl

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
)

// ExportPrefix starts the name of every exported image.
const ExportPrefix = "scrawl_"

// maxExportSuffix bounds the _N suffixes tried when names collide.
const maxExportSuffix = 1000

// Export saves the canvas as a PNG in the export directory (the user's
// home directory unless WithExportDir was given). See ExportTo.
func (o *Overlay) Export() (string, error) {
	return o.ExportTo(o.opts.exportDir)
}

// ExportTo saves the canvas as a transparent PNG in dir, named
// scrawl_YYYYMMDD_HHMMSS.png after the overlay clock. An existing file is
// never overwritten: _1, _2, … is appended to the name instead. An empty
// dir means the home directory; a leading ~ is expanded.
//
// Success posts an info notice with the path. Failure posts a warning
// notice and returns the error; the overlay keeps running either way.
func (o *Overlay) ExportTo(dir string) (string, error) {
	path, err := o.exportTo(dir)
	if err != nil {
		Logger().Warn("scrawl: export failed", "dir", dir, "err", err)
		o.postNotice(NoticeWarning, "Export failed: "+err.Error())
		return "", err
	}
	Logger().Info("scrawl: canvas exported", "path", path)
	o.postNotice(NoticeInfo, "Saved: "+path)
	return path, nil
}

func (o *Overlay) exportTo(dir string) (string, error) {
	dir, err := resolveDir(dir)
	if err != nil {
		return "", err
	}
	base := ExportPrefix + o.now().Format("20060102_150405")

	for n := 0; n < maxExportSuffix; n++ {
		name := base + ".png"
		if n > 0 {
			name = fmt.Sprintf("%s_%d.png", base, n)
		}
		path := filepath.Join(dir, name)
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644) //nolint:gosec // export dir is user-chosen
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("scrawl: export: %w", err)
		}
		if err := o.canvas.EncodePNG(f); err != nil {
			_ = f.Close()
			_ = os.Remove(path)
			return "", err
		}
		if err := f.Close(); err != nil {
			_ = os.Remove(path)
			return "", fmt.Errorf("scrawl: export: %w", err)
		}
		return path, nil
	}
	return "", fmt.Errorf("scrawl: export: no free name for %s in %s", base, dir)
}

// resolveDir expands ~ and falls back to the home directory.
func resolveDir(dir string) (string, error) {
	if dir == "" {
		home, err := homedir.Dir()
		if err != nil {
			return "", fmt.Errorf("scrawl: export: home directory: %w", err)
		}
		return home, nil
	}
	dir, err := homedir.Expand(dir)
	if err != nil {
		return "", fmt.Errorf("scrawl: export: %w", err)
	}
	return dir, nil
}
