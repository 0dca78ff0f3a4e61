package filestorage

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUploadRequest(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))

	return req.MultipartForm.File["image"][0]
}

func TestLocalStorage_SaveFile(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	t.Run("stores an accepted image under a generated name", func(t *testing.T) {
		header := newUploadRequest(t, "photo.PNG", []byte("fake-png-bytes"))

		filename, err := storage.SaveFile(header)

		assert.NoError(t, err)
		assert.NotEqual(t, "photo.PNG", filename)
		assert.Equal(t, ".png", filepath.Ext(filename))

		content, err := os.ReadFile(storage.GetFullPath(filename))
		assert.NoError(t, err)
		assert.Equal(t, []byte("fake-png-bytes"), content)
	})

	t.Run("rejects unsupported formats", func(t *testing.T) {
		header := newUploadRequest(t, "shell.php", []byte("<?php"))

		_, err := storage.SaveFile(header)

		assert.Error(t, err)
	})

	t.Run("nil header is a no-op", func(t *testing.T) {
		filename, err := storage.SaveFile(nil)

		assert.NoError(t, err)
		assert.Empty(t, filename)
	})
}

func TestLocalStorage_DeleteFile(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	header := newUploadRequest(t, "photo.jpg", []byte("jpeg-bytes"))
	filename, err := storage.SaveFile(header)
	require.NoError(t, err)

	assert.NoError(t, storage.DeleteFile(filename))
	_, err = os.Stat(storage.GetFullPath(filename))
	assert.True(t, os.IsNotExist(err))

	// deleting a missing file is not an error
	assert.NoError(t, storage.DeleteFile(filename))
	assert.NoError(t, storage.DeleteFile(""))
}

func TestLocalStorage_GetFullPath(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewLocalStorage(dir)
	require.NoError(t, err)

	// path traversal attempts collapse to the base name
	assert.Equal(t, filepath.Join(dir, "passwd"), storage.GetFullPath("../../etc/passwd"))
	assert.Equal(t, filepath.Join(dir, "a.png"), storage.GetFullPath("a.png"))
}
