package services

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// TranscriptionService turns dictated Arabic audio into text.
type TranscriptionService struct {
	client AudioTranscriber
	model  string
	log    *zap.Logger
}

func NewTranscriptionService(client AudioTranscriber, model string, log *zap.Logger) *TranscriptionService {
	if log == nil {
		log = zap.NewNop()
	}
	return &TranscriptionService{client: client, model: model, log: log}
}

// Transcribe sends one audio file to the whisper model. filename is used by
// the upstream to detect the audio format.
func (s *TranscriptionService) Transcribe(ctx context.Context, filename string, audio io.Reader) (string, error) {
	resp, err := s.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    s.model,
		FilePath: filename,
		Reader:   audio,
		Language: "ar",
		Format:   openai.AudioResponseFormatJSON,
	})
	if err != nil {
		s.log.Error("Transcription failed", zap.String("file", filename), zap.Error(err))
		return "", fmt.Errorf("transcribe %s: %w", filename, err)
	}
	return strings.TrimSpace(resp.Text), nil
}
