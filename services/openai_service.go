package services

import (
	"Alkhabir/config/environment"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/sashabaranov/go-openai"
)

// ChatCompleter is the part of the completion API the dispatcher needs.
// *openai.Client satisfies it.
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// AudioTranscriber is the part of the completion API used for dictation.
type AudioTranscriber interface {
	CreateTranscription(ctx context.Context, req openai.AudioRequest) (openai.AudioResponse, error)
}

// OpenAIService talks to Groq through its OpenAI compatible endpoint. One
// instance is created at startup and shared by every request.
type OpenAIService struct {
	client       *openai.Client
	WhisperModel string
}

// NewOpenAIService creates the shared Groq client
func NewOpenAIService(cfg *environment.Config) *OpenAIService {
	clientCfg := openai.DefaultConfig(cfg.GroqAPIKey)
	clientCfg.BaseURL = cfg.GroqBaseURL

	return &OpenAIService{
		client:       openai.NewClientWithConfig(clientCfg),
		WhisperModel: cfg.WhisperModel,
	}
}

func (s *OpenAIService) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	return s.client.CreateChatCompletion(ctx, req)
}

func (s *OpenAIService) CreateTranscription(ctx context.Context, req openai.AudioRequest) (openai.AudioResponse, error) {
	return s.client.CreateTranscription(ctx, req)
}

// EncodeImage turns raw image bytes into a data URL suitable for an
// image_url message part.
func EncodeImage(imageData []byte) (string, error) {
	if len(imageData) == 0 {
		return "", errors.New("empty image")
	}

	// Detect the image format
	imageType := http.DetectContentType(imageData)
	if len(imageType) < 6 || imageType[:6] != "image/" {
		return "", fmt.Errorf("unsupported image type %s", imageType)
	}

	return "data:" + imageType + ";base64," + base64.StdEncoding.EncodeToString(imageData), nil
}

// ReadImage reads an uploaded image and encodes it, capped at maxBytes.
func ReadImage(r io.Reader, maxBytes int64) (string, error) {
	imageData, err := io.ReadAll(io.LimitReader(r, maxBytes+1))
	if err != nil {
		return "", fmt.Errorf("error reading image data: %w", err)
	}
	if int64(len(imageData)) > maxBytes {
		return "", fmt.Errorf("image larger than %d bytes", maxBytes)
	}
	return EncodeImage(imageData)
}
