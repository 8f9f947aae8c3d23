package vertex

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"golang.org/x/oauth2"

	"github.com/turtlefinance/meeting-sync/pkg/config"
)

func staticTokens() oauth2.TokenSource {
	return oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "test-token"})
}

func TestGenerateContent_Success(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("expected POST got %s", r.Method)
		}
		if !strings.Contains(r.URL.Path, "/models/gemini-1.5-pro:generateContent") {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Fatalf("unexpected auth header %q", got)
		}
		var payload generateRequest
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("invalid payload: %v", err)
		}
		if len(payload.Contents) != 1 || payload.Contents[0].Role != "user" {
			t.Fatalf("unexpected contents %+v", payload.Contents)
		}
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"candidates": []map[string]interface{}{
				{"content": map[string]interface{}{
					"parts": []map[string]string{{"text": `{"meetingSummary":"ok"}`}},
				}},
			},
		})
	}))
	defer ts.Close()

	cfg := &config.VertexConfig{ProjectID: "proj", Location: "us-central1", Model: "gemini-1.5-pro"}
	client := newClientWithTokenSource(cfg, ts.URL, staticTokens())

	text, err := client.GenerateContent(context.Background(), "summarize this")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if text != `{"meetingSummary":"ok"}` {
		t.Fatalf("unexpected text %q", text)
	}
}

func TestGenerateContent_EmptyCandidates(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]interface{}{"candidates": []interface{}{}})
	}))
	defer ts.Close()

	cfg := &config.VertexConfig{ProjectID: "proj", Location: "us-central1", Model: "gemini-1.5-pro"}
	client := newClientWithTokenSource(cfg, ts.URL, staticTokens())

	if _, err := client.GenerateContent(context.Background(), "x"); err == nil {
		t.Fatal("expected error for empty candidates")
	}
}

func TestGenerateContent_ServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer ts.Close()

	cfg := &config.VertexConfig{ProjectID: "proj", Location: "us-central1", Model: "gemini-1.5-pro"}
	client := newClientWithTokenSource(cfg, ts.URL, staticTokens())

	if _, err := client.GenerateContent(context.Background(), "x"); err == nil {
		t.Fatal("expected error for 429 response")
	}
}
