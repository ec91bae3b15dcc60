// Package upload stores persona photos on the local filesystem. Files are
// renamed to generated UUIDs so original names never reach the disk or the
// database, and are served back under the /uploads/ path.
package upload

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/sima-app/sima-backend/internal/config"
	"github.com/sima-app/sima-backend/internal/domain"
)

// Store writes validated uploads into the configured directory.
type Store struct {
	dir          string
	maxFileSize  int64
	maxFiles     int
	allowedTypes map[string]string
}

// extByType maps accepted MIME types to the stored file extension.
var extByType = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// NewStore creates the upload directory if needed and returns a Store.
func NewStore(cfg config.UploadConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.Directory, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir %s: %w", cfg.Directory, err)
	}

	allowed := make(map[string]string)
	for _, mt := range strings.Split(cfg.AllowedTypes, ",") {
		mt = strings.TrimSpace(mt)
		if ext, ok := extByType[mt]; ok {
			allowed[mt] = ext
		}
	}

	return &Store{
		dir:          cfg.Directory,
		maxFileSize:  cfg.MaxFileSize,
		maxFiles:     cfg.MaxFiles,
		allowedTypes: allowed,
	}, nil
}

// Dir returns the directory uploads are written to.
func (s *Store) Dir() string { return s.dir }

// MaxFiles returns the per-request file count limit.
func (s *Store) MaxFiles() int { return s.maxFiles }

// Save validates and stores one uploaded file, returning its public path.
func (s *Store) Save(fh *multipart.FileHeader) (string, error) {
	if fh.Size > s.maxFileSize {
		return "", domain.NewValidationError("fotos", fmt.Sprintf("el archivo supera el máximo de %d bytes", s.maxFileSize))
	}

	contentType := fh.Header.Get("Content-Type")
	ext, ok := s.allowedTypes[contentType]
	if !ok {
		return "", domain.NewValidationError("fotos", fmt.Sprintf("tipo de archivo no permitido: %s", contentType))
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	name := uuid.NewString() + ext
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, io.LimitReader(src, s.maxFileSize+1)); err != nil {
		return "", fmt.Errorf("write upload file: %w", err)
	}

	return "/uploads/" + name, nil
}

// SaveAll stores every file in the slice, stopping at the first failure.
func (s *Store) SaveAll(fhs []*multipart.FileHeader) ([]string, error) {
	if len(fhs) > s.maxFiles {
		return nil, domain.NewValidationError("fotos", fmt.Sprintf("no se permiten más de %d archivos", s.maxFiles))
	}

	paths := make([]string, 0, len(fhs))
	for _, fh := range fhs {
		p, err := s.Save(fh)
		if err != nil {
			return nil, err
		}
		paths = append(paths, p)
	}
	return paths, nil
}
