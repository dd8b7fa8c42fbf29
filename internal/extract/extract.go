// Package extract turns stored uploads into plain text. Dispatch is purely on
// the declared file type derived from the upload's extension; file content is
// never sniffed.
package extract

import (
	"context"
	"fmt"
	"os"

	"github.com/studymind/studymind/internal/app/models"
	"github.com/studymind/studymind/internal/pkg/apperrors"
)

// OCR recognizes text in a raster image. An empty result is valid: an image
// without text extracts to the empty string.
type OCR interface {
	ImageText(ctx context.Context, path string) (string, error)
}

// Transcriber converts a normalized WAV file into text
type Transcriber interface {
	Transcribe(ctx context.Context, wavPath string) (string, error)
}

// Service is the content extractor. OCR and transcription backends are
// injected at construction; either may be nil, in which case the
// corresponding file types degrade (OCR fails, transcription yields the
// placeholder).
type Service struct {
	ocr         OCR
	transcriber Transcriber
}

// NewService creates the extractor
func NewService(ocr OCR, transcriber Transcriber) *Service {
	return &Service{ocr: ocr, transcriber: transcriber}
}

// Extract produces the plain text of a stored upload. Unsupported types fail
// with apperrors.ErrUnsupportedFileType; corrupt documents fail with the
// underlying parser error. For audio and video a transient .wav sibling may
// be written next to the source file; it is not cleaned up here.
func (s *Service) Extract(ctx context.Context, filePath string, fileType models.FileType) (string, error) {
	switch {
	case fileType == models.FileTypeTXT:
		data, err := os.ReadFile(filePath)
		if err != nil {
			return "", fmt.Errorf("read text file: %w", err)
		}
		return string(data), nil

	case fileType == models.FileTypePDF:
		return extractPDF(filePath)

	case fileType == models.FileTypeDOCX:
		return extractDOCX(filePath)

	case fileType == models.FileTypePPT || fileType == models.FileTypePPTX:
		return extractSlides(filePath)

	case fileType.IsImage():
		if s.ocr == nil {
			return "", fmt.Errorf("ocr backend not configured")
		}
		return s.ocr.ImageText(ctx, filePath)

	case fileType.IsMedia():
		return s.extractMedia(ctx, filePath)
	}

	return "", apperrors.ErrUnsupportedFileType
}
