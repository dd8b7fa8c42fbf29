package filestorage

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uploadHeader(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/upload", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	return req.MultipartForm.File["file"][0]
}

func TestSaveUploadKeepsExtension(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewLocalStorage(dir)
	require.NoError(t, err)

	fileURL, err := storage.SaveUpload(uploadHeader(t, "lecture one.pdf", "%PDF-1.4"))
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(fileURL, ".pdf"))
	assert.NotContains(t, filepath.Base(fileURL), "lecture")

	data, err := os.ReadFile(storage.FullPath(fileURL))
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4", string(data))
}

func TestSaveUploadNilHeader(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	_, err = storage.SaveUpload(nil)
	assert.Error(t, err)
}

func TestDeleteRemovesStoredFile(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	fileURL, err := storage.SaveUpload(uploadHeader(t, "audio.mp3", "ID3"))
	require.NoError(t, err)

	require.NoError(t, storage.Delete(fileURL))
	_, statErr := os.Stat(storage.FullPath(fileURL))
	assert.True(t, os.IsNotExist(statErr))
}

func TestDeleteMissingFileIsNoop(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	assert.NoError(t, storage.Delete("uploads/1700000000000.pdf"))
	assert.NoError(t, storage.Delete(""))
}
