package extract

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	speech "cloud.google.com/go/speech/apiv1"
	"cloud.google.com/go/speech/apiv1/speechpb"
	"google.golang.org/api/option"
)

// PlaceholderTranscription is stored when no transcription backend is
// configured.
const PlaceholderTranscription = "Audio transcription placeholder"

// PlaceholderTranscriber stands in when speech recognition is disabled
type PlaceholderTranscriber struct{}

func (PlaceholderTranscriber) Transcribe(ctx context.Context, wavPath string) (string, error) {
	return PlaceholderTranscription, nil
}

// SpeechTranscriber converts WAV audio to text through the Cloud Speech API
type SpeechTranscriber struct {
	client *speech.Client
}

// NewSpeechTranscriber creates the Speech backed transcriber
func NewSpeechTranscriber(ctx context.Context, opts ...option.ClientOption) (*SpeechTranscriber, error) {
	client, err := speech.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("speech client: %w", err)
	}
	return &SpeechTranscriber{client: client}, nil
}

// Close releases the underlying gRPC connection
func (t *SpeechTranscriber) Close() error {
	if t == nil || t.client == nil {
		return nil
	}
	return t.client.Close()
}

// Transcribe recognizes speech in a normalized 16kHz mono WAV file
func (t *SpeechTranscriber) Transcribe(ctx context.Context, wavPath string) (string, error) {
	audio, err := os.ReadFile(wavPath)
	if err != nil {
		return "", fmt.Errorf("read wav: %w", err)
	}
	if len(audio) == 0 {
		return "", nil
	}

	ctx, cancel := context.WithTimeout(ctx, 3*time.Minute)
	defer cancel()

	req := &speechpb.RecognizeRequest{
		Config: &speechpb.RecognitionConfig{
			Encoding:                   speechpb.RecognitionConfig_LINEAR16,
			SampleRateHertz:            16000,
			AudioChannelCount:          1,
			LanguageCode:               "en-US",
			EnableAutomaticPunctuation: true,
		},
		Audio: &speechpb.RecognitionAudio{
			AudioSource: &speechpb.RecognitionAudio_Content{Content: audio},
		},
	}

	resp, err := t.client.Recognize(ctx, req)
	if err != nil {
		return "", fmt.Errorf("speech recognize: %w", err)
	}

	var parts []string
	for _, result := range resp.GetResults() {
		alts := result.GetAlternatives()
		if len(alts) == 0 {
			continue
		}
		if txt := strings.TrimSpace(alts[0].GetTranscript()); txt != "" {
			parts = append(parts, txt)
		}
	}
	return strings.Join(parts, " "), nil
}
