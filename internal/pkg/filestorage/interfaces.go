package filestorage

import "mime/multipart"

// FileStorage defines the interface for file storage operations
type FileStorage interface {
	// SaveFile saves an uploaded file and returns the stored filename
	SaveFile(fileHeader *multipart.FileHeader) (string, error)

	// DeleteFile removes a file from storage
	DeleteFile(filePath string) error

	// GetFullPath returns the full filesystem path for a stored filename
	GetFullPath(filename string) string
}
