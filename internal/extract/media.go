package extract

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// extractMedia normalizes audio and video to 16kHz mono WAV, then hands the
// waveform to the transcriber. The transcoded file is left in the upload
// directory next to the original; deleting the note removes only the
// original upload.
func (s *Service) extractMedia(ctx context.Context, filePath string) (string, error) {
	wavPath := filePath
	if ext := filepath.Ext(filePath); !strings.EqualFold(ext, ".wav") {
		wavPath = strings.TrimSuffix(filePath, ext) + ".wav"
		err := ffmpeg.Input(filePath).
			Output(wavPath, ffmpeg.KwArgs{
				"format": "wav",
				"acodec": "pcm_s16le",
				"ar":     16000,
				"ac":     1,
			}).
			OverWriteOutput().
			Silent(true).
			Run()
		if err != nil {
			return "", fmt.Errorf("transcode to wav: %w", err)
		}
	}

	if s.transcriber == nil {
		return PlaceholderTranscription, nil
	}
	return s.transcriber.Transcribe(ctx, wavPath)
}
