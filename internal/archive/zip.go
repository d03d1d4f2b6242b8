// Package archive turns a project layout into a single zip blob. Archives
// are built in memory on demand and never persisted.
package archive

import (
	"archive/zip"
	"bytes"
	"fmt"
	"time"

	"github.com/Menach0/ai-spigot-gen/internal/project"
)

// Entries carry a fixed timestamp so repeated builds of the same layout are
// byte-identical.
var fixedModTime = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// Build writes every layout file into a zip archive, preserving layout
// order, and returns the archive bytes. On failure nothing is returned; the
// partial buffer is discarded.
func Build(l *project.Layout) ([]byte, error) {
	if l == nil || l.Len() == 0 {
		return nil, fmt.Errorf("archive: layout is empty")
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, f := range l.Files() {
		hdr := &zip.FileHeader{
			Name:     f.Path,
			Method:   zip.Deflate,
			Modified: fixedModTime,
		}
		w, err := zw.CreateHeader(hdr)
		if err != nil {
			return nil, fmt.Errorf("archive: create %s: %w", f.Path, err)
		}
		if _, err := w.Write(f.Content); err != nil {
			return nil, fmt.Errorf("archive: write %s: %w", f.Path, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("archive: finalize: %w", err)
	}
	return buf.Bytes(), nil
}

// FileName returns the download name for a generated project archive.
func FileName(className string) string {
	return className + "-plugin-project.zip"
}
