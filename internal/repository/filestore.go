package repository

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a requested artifact does not exist.
var ErrNotFound = errors.New("repository: artifact not found")

// invalidFilenameChars matches everything outside the conservative character
// set kept by SanitizeFilename.
var invalidFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// Repository implements artifact storage on the local filesystem: uploaded
// inputs live under the upload directory until their conversion finishes,
// converted outputs under the output directory until they are downloaded.
type Repository struct {
	uploadDir string
	outputDir string
}

// NewRepository creates a filesystem repository, creating both directories
// if they do not exist.
func NewRepository(uploadDir, outputDir string) (*Repository, error) {
	for _, dir := range []string{uploadDir, outputDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("repository: failed to create directory %s: %w", dir, err)
		}
	}
	return &Repository{uploadDir: uploadDir, outputDir: outputDir}, nil
}

// SaveUpload stores an uploaded stream under a unique sanitized name and
// returns the stored path. The client-supplied name is never used as given,
// but the stored name always keeps its extension so the codec can be chosen
// from the stored path.
func (r *Repository) SaveUpload(name string, src io.Reader) (string, error) {
	stored := uuid.New().String() + "_" + SanitizeFilename(name)
	if ext := strings.ToLower(filepath.Ext(name)); ext != "" && !strings.HasSuffix(strings.ToLower(stored), ext) {
		stored += ext
	}
	path := filepath.Join(r.uploadDir, stored)

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("repository: failed to create upload file: %w", err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(path)
		return "", fmt.Errorf("repository: failed to store upload: %w", err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("repository: failed to store upload: %w", err)
	}
	return path, nil
}

// RemoveUpload deletes a stored upload. Paths outside the upload directory
// are refused.
func (r *Repository) RemoveUpload(path string) error {
	if filepath.Dir(path) != filepath.Clean(r.uploadDir) {
		return fmt.Errorf("repository: %s is not a stored upload", path)
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("repository: failed to remove upload: %w", err)
	}
	return nil
}

// OutputWriter creates (or truncates) a converted artifact under the output
// directory and returns a writer to it.
func (r *Repository) OutputWriter(name string) (io.WriteCloser, error) {
	if !safeArtifactName(name) {
		return nil, fmt.Errorf("repository: invalid artifact name %q", name)
	}
	f, err := os.Create(filepath.Join(r.outputDir, name))
	if err != nil {
		return nil, fmt.Errorf("repository: failed to create artifact %s: %w", name, err)
	}
	return f, nil
}

// OutputPath resolves a converted artifact by name for delivery. Names
// containing path separators are refused; absent artifacts yield
// ErrNotFound.
func (r *Repository) OutputPath(name string) (string, error) {
	if !safeArtifactName(name) {
		return "", ErrNotFound
	}
	path := filepath.Join(r.outputDir, name)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("repository: failed to stat artifact %s: %w", name, err)
	}
	return path, nil
}

// RemoveOutput deletes a converted artifact by name.
func (r *Repository) RemoveOutput(name string) error {
	if !safeArtifactName(name) {
		return fmt.Errorf("repository: invalid artifact name %q", name)
	}
	if err := os.Remove(filepath.Join(r.outputDir, name)); err != nil {
		return fmt.Errorf("repository: failed to remove artifact: %w", err)
	}
	return nil
}

// OutputInfo returns the size in bytes of a converted artifact.
func (r *Repository) OutputInfo(name string) (int64, error) {
	path, err := r.OutputPath(name)
	if err != nil {
		return 0, err
	}
	fi, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to stat artifact %s: %w", name, err)
	}
	return fi.Size(), nil
}

// safeArtifactName reports whether a name can be used as a flat filename
// under a managed directory.
func safeArtifactName(name string) bool {
	return name != "" && name != "." && name != ".." && !strings.ContainsAny(name, `/\`)
}

// SanitizeFilename reduces a client-supplied name to a safe flat filename:
// path components are stripped, whitespace runs become "_", and everything
// outside ASCII letters, digits, "_", "." and "-" is dropped. An empty
// result falls back to "file".
func SanitizeFilename(name string) string {
	base := filepath.Base(strings.ReplaceAll(name, `\`, "/"))
	base = strings.Join(strings.Fields(base), "_")
	base = invalidFilenameChars.ReplaceAllString(base, "")
	base = strings.Trim(base, "._")
	if base == "" {
		return "file"
	}
	return base
}
