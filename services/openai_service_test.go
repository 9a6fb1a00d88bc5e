package services

import (
	"Alkhabir/config/environment"
	"Alkhabir/models"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sashabaranov/go-openai"
)

// mockGroq returns an OpenAIService pointed at an httptest server.
func mockGroq(t *testing.T, handler http.HandlerFunc) *OpenAIService {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewOpenAIService(&environment.Config{GroqAPIKey: "gsk-test", GroqBaseURL: srv.URL, WhisperModel: "whisper-test"})
}

func TestOpenAIService_ChatCompletionWireFormat(t *testing.T) {
	var got map[string]any
	svc := mockGroq(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer gsk-test" {
			t.Errorf("Authorization = %q", auth)
		}
		json.NewDecoder(r.Body).Decode(&got)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id":"c1","choices":[{"index":0,"message":{"role":"assistant","content":"{\"ok\":true}"}}]}`)
	})

	d := NewDispatchService(svc, NewProfileTable("llama-test", "vision-test"), false, nil)
	resp, err := d.Dispatch(context.Background(), &models.DispatchRequest{Description: "وقائع"})
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if resp.Result != `{"ok":true}` {
		t.Errorf("result = %q", resp.Result)
	}

	if got["model"] != "llama-test" || got["temperature"] != 0.5 {
		t.Errorf("model/temperature = %v/%v", got["model"], got["temperature"])
	}
	rf, _ := got["response_format"].(map[string]any)
	if rf["type"] != "json_object" {
		t.Errorf("response_format = %v", got["response_format"])
	}
	msgs, _ := got["messages"].([]any)
	if len(msgs) != 2 {
		t.Fatalf("messages = %v", got["messages"])
	}
}

func TestOpenAIService_OCRWireFormat(t *testing.T) {
	var got struct {
		Messages []struct {
			Role    string          `json:"role"`
			Content json.RawMessage `json:"content"`
		} `json:"messages"`
	}
	svc := mockGroq(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&got)
		fmt.Fprint(w, `{"choices":[{"message":{"role":"assistant","content":"نص"}}]}`)
	})

	d := NewDispatchService(svc, NewProfileTable("t", "v"), false, nil)
	if _, err := d.Dispatch(context.Background(), &models.DispatchRequest{Type: models.RequestOCR, Query: "q", Image: "data:image/png;base64,AAAA"}); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}

	var parts []map[string]any
	if err := json.Unmarshal(got.Messages[1].Content, &parts); err != nil {
		t.Fatalf("user content is not a part array: %s", got.Messages[1].Content)
	}
	if parts[0]["type"] != "text" || parts[1]["type"] != "image_url" {
		t.Errorf("parts = %v", parts)
	}
}

func TestOpenAIService_UpstreamError(t *testing.T) {
	svc := mockGroq(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"error":{"message":"Invalid API Key","type":"invalid_request_error"}}`)
	})

	_, err := NewDispatchService(svc, NewProfileTable("t", "v"), false, nil).
		Dispatch(context.Background(), &models.DispatchRequest{Query: "q"})
	de := dispatchErr(t, err)
	if de.StatusCode != http.StatusInternalServerError || !strings.Contains(de.Message, "Invalid API Key") {
		t.Errorf("got %d %q", de.StatusCode, de.Message)
	}
}

func TestOpenAIService_Transcription(t *testing.T) {
	svc := mockGroq(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/audio/transcriptions" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("ParseMultipartForm: %v", err)
		}
		if m := r.FormValue("model"); m != "whisper-test" {
			t.Errorf("model = %q", m)
		}
		f, _, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("FormFile: %v", err)
		}
		data, _ := io.ReadAll(f)
		if string(data) != "RIFF-audio" {
			t.Errorf("file = %q", data)
		}
		fmt.Fprint(w, `{"text":"وقائع القضية"}`)
	})

	resp, err := svc.CreateTranscription(context.Background(), openai.AudioRequest{
		Model:    svc.WhisperModel,
		FilePath: "case.wav",
		Reader:   strings.NewReader("RIFF-audio"),
		Format:   openai.AudioResponseFormatJSON,
	})
	if err != nil {
		t.Fatalf("CreateTranscription: %v", err)
	}
	if resp.Text != "وقائع القضية" {
		t.Errorf("text = %q", resp.Text)
	}
}

func TestEncodeImage(t *testing.T) {
	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
	url, err := EncodeImage(png)
	if err != nil {
		t.Fatalf("EncodeImage: %v", err)
	}
	if !strings.HasPrefix(url, "data:image/png;base64,") {
		t.Errorf("url = %q", url)
	}

	if _, err := EncodeImage([]byte("just text")); err == nil {
		t.Error("EncodeImage accepted text")
	}
	if _, err := EncodeImage(nil); err == nil {
		t.Error("EncodeImage accepted empty input")
	}
	if _, err := ReadImage(strings.NewReader(string(png)), 4); err == nil {
		t.Error("ReadImage ignored the size cap")
	}
}
