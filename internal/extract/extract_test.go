package extract

import (
	"archive/zip"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studymind/studymind/internal/app/models"
	"github.com/studymind/studymind/internal/pkg/apperrors"
)

func writeZip(t *testing.T, path string, entries map[string]string) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	w := zip.NewWriter(f)
	for name, content := range entries {
		entry, err := w.Create(name)
		require.NoError(t, err)
		_, err = entry.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
}

func TestExtractTXT(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("plain text content\nwith two lines"), 0o644))

	svc := NewService(nil, nil)
	text, err := svc.Extract(context.Background(), path, models.FileTypeTXT)

	require.NoError(t, err)
	assert.Equal(t, "plain text content\nwith two lines", text)
}

func TestExtractUnsupportedType(t *testing.T) {
	svc := NewService(nil, nil)
	_, err := svc.Extract(context.Background(), "whatever", models.FileType("exe"))
	assert.ErrorIs(t, err, apperrors.ErrUnsupportedFileType)
}

func TestExtractDOCX(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.docx")
	document := `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>First paragraph</w:t></w:r></w:p>
    <w:p><w:r><w:t>Second </w:t></w:r><w:r><w:t>paragraph</w:t></w:r></w:p>
  </w:body>
</w:document>`
	writeZip(t, path, map[string]string{"word/document.xml": document})

	svc := NewService(nil, nil)
	text, err := svc.Extract(context.Background(), path, models.FileTypeDOCX)

	require.NoError(t, err)
	assert.Equal(t, "First paragraph\nSecond paragraph", text)
}

func TestExtractDOCXMissingDocumentPart(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.docx")
	writeZip(t, path, map[string]string{"word/other.xml": "<x/>"})

	svc := NewService(nil, nil)
	_, err := svc.Extract(context.Background(), path, models.FileTypeDOCX)
	assert.Error(t, err)
}

func TestExtractPPTXJoinsSlidesInOrder(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "deck.pptx")
	writeZip(t, path, map[string]string{
		"ppt/slides/slide2.xml":  `<p:sld xmlns:p="x"><a:t xmlns:a="y">second slide</a:t></p:sld>`,
		"ppt/slides/slide1.xml":  `<p:sld xmlns:p="x"><a:t xmlns:a="y">first slide</a:t></p:sld>`,
		"ppt/slides/slide10.xml": `<p:sld xmlns:p="x"><a:t xmlns:a="y">tenth slide</a:t></p:sld>`,
		"ppt/notesSlides/notesSlide1.xml": `<p:notes xmlns:p="x">speaker notes</p:notes>`,
	})

	svc := NewService(nil, nil)
	text, err := svc.Extract(context.Background(), path, models.FileTypePPTX)

	require.NoError(t, err)
	assert.Equal(t, "first slide\n\nsecond slide\n\ntenth slide\n\n", text)
}

func TestExtractPPTXSkipsMalformedSlide(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "deck.pptx")
	writeZip(t, path, map[string]string{
		"ppt/slides/slide1.xml": `<p:sld xmlns:p="x"><a:t xmlns:a="y">good slide</a:t></p:sld>`,
		"ppt/slides/slide2.xml": `<p:sld><unclosed`,
	})

	svc := NewService(nil, nil)
	text, err := svc.Extract(context.Background(), path, models.FileTypePPTX)

	require.NoError(t, err)
	assert.Equal(t, "good slide\n\n", text)
}

func TestExtractPPTXWithoutTextIsEmpty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "deck.pptx")
	writeZip(t, path, map[string]string{
		"ppt/presentation.xml": `<p:presentation xmlns:p="x"/>`,
	})

	svc := NewService(nil, nil)
	text, err := svc.Extract(context.Background(), path, models.FileTypePPTX)

	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestExtractImageWithoutOCRFails(t *testing.T) {
	svc := NewService(nil, nil)
	_, err := svc.Extract(context.Background(), "photo.png", models.FileTypePNG)
	assert.Error(t, err)
}

func TestExtractWAVWithoutTranscriberReturnsPlaceholder(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "audio.wav")
	require.NoError(t, os.WriteFile(path, []byte("RIFF"), 0o644))

	svc := NewService(nil, nil)
	text, err := svc.Extract(context.Background(), path, models.FileTypeWAV)

	require.NoError(t, err)
	assert.Equal(t, PlaceholderTranscription, text)
}
