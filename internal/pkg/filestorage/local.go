package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/campusrate/campusrate/internal/pkg/logger"
	"github.com/campusrate/campusrate/internal/pkg/validation"
)

// LocalStorage handles saving faculty photos to the local filesystem.
type LocalStorage struct {
	basePath string
}

// NewLocalStorage creates a new LocalStorage instance rooted at basePath.
func NewLocalStorage(basePath string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}

	return &LocalStorage{
		basePath: basePath,
	}, nil
}

// SaveFile stores an uploaded image under a collision-safe generated
// name and returns the stored filename. Only png/jpg/jpeg uploads are
// accepted.
func (ls *LocalStorage) SaveFile(fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader == nil {
		return "", nil
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !validation.IsAllowedImageExtension(ext) {
		return "", fmt.Errorf("unsupported image format %q, use PNG, JPG or JPEG", ext)
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to open uploaded file")
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	uniqueFilename := uuid.New().String() + ext
	dstPath := filepath.Join(ls.basePath, uniqueFilename)

	dst, err := os.Create(dstPath)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create destination file")
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, file); err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to copy uploaded file content")
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to save file content: %w", err)
	}

	logger.Info().Str("filename", fileHeader.Filename).Str("saved_as", uniqueFilename).Msg("File saved successfully")
	return uniqueFilename, nil
}

// DeleteFile removes a stored file. Returns nil when the file no
// longer exists.
func (ls *LocalStorage) DeleteFile(filename string) error {
	if filename == "" {
		return nil
	}

	fullPath := ls.GetFullPath(filename)

	if err := os.Remove(fullPath); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		logger.Error().Err(err).Str("path", fullPath).Msg("Failed to delete stored file")
		return fmt.Errorf("failed to delete file %s: %w", filename, err)
	}

	return nil
}

// GetFullPath returns the full filesystem path for a stored filename
func (ls *LocalStorage) GetFullPath(filename string) string {
	return filepath.Join(ls.basePath, filepath.Base(filename))
}
