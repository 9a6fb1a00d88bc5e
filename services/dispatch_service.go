package services

import (
	"Alkhabir/models"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// ReadyMessage is returned by the health check.
const ReadyMessage = "Alkhabir AI (Powered by Groq) is ready!"

const (
	msgInsufficientInput = "المدخلات غير كافية."
	msgUnknownType       = "نوع الطلب غير معروف"
	msgInvalidInput      = "صيغة الطلب غير صالحة."
)

// dispatchTemperature is the fixed sampling temperature of every request.
const dispatchTemperature = 0.5

// DispatchError carries the status code and kind of a failed dispatch.
type DispatchError struct {
	Kind       models.ErrorKind
	StatusCode int
	Message    string
	Err        error
}

func (e *DispatchError) Error() string {
	return e.Message
}

func (e *DispatchError) Unwrap() error {
	return e.Err
}

// Failure renders the error as the client visible envelope.
func (e *DispatchError) Failure() models.DispatchFailure {
	return models.DispatchFailure{Success: false, Error: e.Message, Kind: e.Kind}
}

func invalidInput(err error) *DispatchError {
	return &DispatchError{Kind: models.KindInvalidInput, StatusCode: http.StatusBadRequest, Message: msgInvalidInput, Err: err}
}

// DispatchService routes a typed request to its prompt profile, calls the
// completion API once and normalizes the answer. It keeps no per-request
// state and is safe for concurrent use.
type DispatchService struct {
	client   ChatCompleter
	profiles ProfileTable
	debug    bool
	log      *zap.Logger
}

func NewDispatchService(client ChatCompleter, profiles ProfileTable, debug bool, log *zap.Logger) *DispatchService {
	if log == nil {
		log = zap.NewNop()
	}
	return &DispatchService{client: client, profiles: profiles, debug: debug, log: log}
}

// ParseRequest decodes a dispatch body. The body may be a JSON object or a
// JSON string holding the object.
func ParseRequest(body []byte) (*models.DispatchRequest, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil, invalidInput(fmt.Errorf("empty body"))
	}

	if body[0] == '"' {
		var inner string
		if err := json.Unmarshal(body, &inner); err != nil {
			return nil, invalidInput(err)
		}
		body = []byte(inner)
	}

	var req models.DispatchRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, invalidInput(err)
	}
	return &req, nil
}

// QueryText returns the first non-empty of description and query.
func QueryText(req *models.DispatchRequest) string {
	if req.Description != "" {
		return req.Description
	}
	return req.Query
}

// Resolve validates the request and returns its type, text and profile
// without touching the network.
func (s *DispatchService) Resolve(req *models.DispatchRequest) (models.RequestType, string, models.PromptProfile, error) {
	rt := req.Type
	if rt == "" {
		rt = models.RequestAnalyze
	}

	query := QueryText(req)
	if query == "" {
		return rt, "", models.PromptProfile{}, &DispatchError{
			Kind:       models.KindInsufficientInput,
			StatusCode: http.StatusBadRequest,
			Message:    msgInsufficientInput,
		}
	}

	profile, ok := s.profiles.Lookup(rt)
	if !ok {
		return rt, query, models.PromptProfile{}, &DispatchError{
			Kind:       models.KindUnknownRequestType,
			StatusCode: http.StatusBadRequest,
			Message:    msgUnknownType,
		}
	}
	return rt, query, profile, nil
}

// BuildMessages constructs the system + user message pair. An ocr request
// with an image gets a multi-part user message, every other request (ocr
// without image included) a plain text one.
func BuildMessages(rt models.RequestType, query, image string, profile models.PromptProfile) []openai.ChatCompletionMessage {
	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: profile.SystemPrompt},
	}

	if rt == models.RequestOCR && image != "" {
		text := query
		if text == "" {
			text = OCRFallbackInstruction
		}
		return append(messages, openai.ChatCompletionMessage{
			Role: openai.ChatMessageRoleUser,
			MultiContent: []openai.ChatMessagePart{
				{Type: openai.ChatMessagePartTypeText, Text: text},
				{Type: openai.ChatMessagePartTypeImageURL, ImageURL: &openai.ChatMessageImageURL{URL: image}},
			},
		})
	}

	return append(messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: query})
}

// BuildCompletionRequest assembles the single outbound request.
func BuildCompletionRequest(rt models.RequestType, query, image string, profile models.PromptProfile) openai.ChatCompletionRequest {
	req := openai.ChatCompletionRequest{
		Model:       profile.Model,
		Messages:    BuildMessages(rt, query, image, profile),
		Temperature: dispatchTemperature,
	}
	if profile.ExpectsJSON {
		// best effort, the model may still answer with fenced text
		req.ResponseFormat = &openai.ChatCompletionResponseFormat{Type: openai.ChatCompletionResponseFormatTypeJSONObject}
	}
	return req
}

// Dispatch runs one request end to end. Errors are always *DispatchError.
func (s *DispatchService) Dispatch(ctx context.Context, req *models.DispatchRequest) (*models.DispatchResponse, error) {
	rt, query, profile, err := s.Resolve(req)
	if err != nil {
		return nil, err
	}

	s.log.Info("Processing request", zap.String("type", string(rt)), zap.String("query", preview(query, 50)))

	resp, err := s.client.CreateChatCompletion(ctx, BuildCompletionRequest(rt, query, req.Image, profile))
	if err != nil {
		s.log.Error("Groq Error", zap.String("type", string(rt)), zap.Error(err))
		return nil, &DispatchError{
			Kind:       models.KindUpstreamFailure,
			StatusCode: http.StatusInternalServerError,
			Message:    err.Error(),
			Err:        err,
		}
	}

	var result string
	if len(resp.Choices) > 0 {
		result = resp.Choices[0].Message.Content
	}

	out := &models.DispatchResponse{Success: true}
	if profile.ExpectsJSON {
		normalized, ok := NormalizeAnalysis(result)
		if !ok {
			s.log.Warn("Failed to parse JSON from LLM", zap.Int("length", len(result)))
			if s.debug {
				out.Raw = result
			}
		}
		result = normalized
	}

	out.Analysis = result
	out.Result = result
	return out, nil
}

// preview shortens s to at most n runes for logging.
func preview(s string, n int) string {
	r := []rune(strings.TrimSpace(s))
	if len(r) <= n {
		return string(r)
	}
	return string(r[:n]) + "..."
}
