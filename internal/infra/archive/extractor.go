// Package archive unpacks the downloaded SDelete zip.
package archive

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zip"
	"github.com/runoshun/freewipe/internal/domain"
)

// Ensure Extractor implements domain.Extractor interface.
var _ domain.Extractor = (*Extractor)(nil)

// Extractor implements domain.Extractor for zip archives.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract unpacks every member of zipPath into destDir. Progress advances by
// each member's uncompressed size against the archive total.
func (e *Extractor) Extract(zipPath, destDir string, progress domain.Progress) (*domain.ExtractResult, error) {
	r, err := zip.OpenReader(zipPath)
	if err != nil {
		if errors.Is(err, zip.ErrFormat) || errors.Is(err, zip.ErrAlgorithm) || errors.Is(err, zip.ErrChecksum) {
			return nil, fmt.Errorf("open %s: %w: %v", zipPath, domain.ErrBadArchive, err)
		}
		return nil, fmt.Errorf("open %s: %w", zipPath, err)
	}
	defer func() { _ = r.Close() }()

	result := &domain.ExtractResult{
		Files: make([]string, 0, len(r.File)),
	}
	for _, f := range r.File {
		result.TotalBytes += int64(f.UncompressedSize64)
	}

	if err := os.MkdirAll(destDir, 0o750); err != nil {
		return nil, fmt.Errorf("create %s: %w", destDir, err)
	}

	if progress != nil {
		progress.Start(filepath.Base(zipPath), result.TotalBytes)
		defer progress.Finish()
	}

	for _, f := range r.File {
		target, err := safeJoin(destDir, f.Name)
		if err != nil {
			return result, err
		}

		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0o750); err != nil {
				return result, fmt.Errorf("create %s: %w", target, err)
			}
			continue
		}

		n, err := extractFile(f, target)
		result.Written += n
		if err != nil {
			return result, err
		}
		result.Files = append(result.Files, target)
		if progress != nil {
			progress.Add(int64(f.UncompressedSize64))
		}
	}

	return result, nil
}

// extractFile writes a single archive member to target.
func extractFile(f *zip.File, target string) (int64, error) {
	if err := os.MkdirAll(filepath.Dir(target), 0o750); err != nil {
		return 0, fmt.Errorf("create %s: %w", filepath.Dir(target), err)
	}

	rc, err := f.Open()
	if err != nil {
		return 0, fmt.Errorf("open member %s: %w: %v", f.Name, domain.ErrBadArchive, err)
	}
	defer func() { _ = rc.Close() }()

	out, err := os.OpenFile(target, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o750) //nolint:gosec // Extracted executables must be runnable
	if err != nil {
		return 0, fmt.Errorf("create %s: %w", target, err)
	}

	n, copyErr := io.Copy(out, rc)
	closeErr := out.Close()
	if copyErr != nil {
		if errors.Is(copyErr, zip.ErrChecksum) {
			return n, fmt.Errorf("extract %s: %w: %v", f.Name, domain.ErrBadArchive, copyErr)
		}
		return n, fmt.Errorf("extract %s: %w", f.Name, copyErr)
	}
	if closeErr != nil {
		return n, fmt.Errorf("close %s: %w", target, closeErr)
	}
	return n, nil
}

// safeJoin resolves an archive member name under destDir, rejecting names
// that would land outside it.
func safeJoin(destDir, name string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(strings.ReplaceAll(name, `\`, "/")))
	if filepath.IsAbs(clean) || filepath.VolumeName(clean) != "" ||
		clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s", domain.ErrUnsafeArchivePath, name)
	}
	return filepath.Join(destDir, clean), nil
}
