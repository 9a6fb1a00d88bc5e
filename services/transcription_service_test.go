package services

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/sashabaranov/go-openai"
)

type fakeTranscriber struct {
	text string
	err  error
	got  openai.AudioRequest
	body string
}

func (f *fakeTranscriber) CreateTranscription(_ context.Context, req openai.AudioRequest) (openai.AudioResponse, error) {
	f.got = req
	data, _ := io.ReadAll(req.Reader)
	f.body = string(data)
	return openai.AudioResponse{Text: f.text}, f.err
}

func TestTranscribe(t *testing.T) {
	ft := &fakeTranscriber{text: "  وقائع القضية \n"}
	svc := NewTranscriptionService(ft, "whisper-large-v3", nil)

	text, err := svc.Transcribe(context.Background(), "note.webm", strings.NewReader("audio"))
	if err != nil {
		t.Fatalf("Transcribe: %v", err)
	}
	if text != "وقائع القضية" {
		t.Errorf("text = %q", text)
	}
	if ft.got.Model != "whisper-large-v3" || ft.got.Language != "ar" || ft.got.FilePath != "note.webm" || ft.body != "audio" {
		t.Errorf("request = %+v body=%q", ft.got, ft.body)
	}
}

func TestTranscribe_Error(t *testing.T) {
	ft := &fakeTranscriber{err: errors.New("413 too large")}
	_, err := NewTranscriptionService(ft, "m", nil).Transcribe(context.Background(), "a.mp3", strings.NewReader(""))
	if !errors.Is(err, ft.err) {
		t.Errorf("err = %v", err)
	}
}
