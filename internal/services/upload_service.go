package services

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const maxUploadBytes = 10 * 1024 * 1024

var (
	ErrUploadTooLarge = errors.New("file is too large, the limit is 10MB")
	ErrUploadBadType  = errors.New("only image and video files can be uploaded")
	ErrUploadNoFile   = errors.New("no file provided")
)

var allowedExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".webp": true, ".gif": true,
	".mp4": true, ".webm": true, ".mov": true,
}

// UploadService stores media files and hands back publicly fetchable URLs,
// standing in for the external blob collaborator.
type UploadService struct {
	dir     string
	baseURL string
}

func NewUploadService(dir, baseURL string) (*UploadService, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &UploadService{dir: dir, baseURL: strings.TrimSuffix(baseURL, "/")}, nil
}

// Save writes an uploaded file to disk under a fresh name and returns its
// public URL. Size and type limits are enforced before any byte is written.
func (s *UploadService) Save(header *multipart.FileHeader) (string, error) {
	if header == nil {
		return "", ErrUploadNoFile
	}
	if header.Size > maxUploadBytes {
		return "", ErrUploadTooLarge
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedExtensions[ext] {
		return "", ErrUploadBadType
	}

	src, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	name := uuid.New().String() + ext
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to store upload: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, io.LimitReader(src, maxUploadBytes)); err != nil {
		return "", fmt.Errorf("failed to write upload: %w", err)
	}

	return s.baseURL + "/" + name, nil
}

// Dir is the directory served as static content for uploaded media.
func (s *UploadService) Dir() string { return s.dir }
