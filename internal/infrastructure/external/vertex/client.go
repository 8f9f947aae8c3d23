package vertex

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/turtlefinance/meeting-sync/errors"
	"github.com/turtlefinance/meeting-sync/internal/domain/entities"
	"github.com/turtlefinance/meeting-sync/pkg/config"
)

const cloudPlatformScope = "https://www.googleapis.com/auth/cloud-platform"

// Client calls the Vertex AI generateContent endpoint. Authentication uses
// short-lived bearer tokens obtained from the service-account credential
// exchange; a token failure is fatal for that call only.
type Client struct {
	projectID string
	location  string
	model     string
	baseURL   string
	tokens    oauth2.TokenSource
	client    *http.Client
}

// NewClient builds a Vertex client from service-account JSON credentials.
func NewClient(ctx context.Context, cfg *config.VertexConfig) (*Client, error) {
	creds, err := google.CredentialsFromJSON(ctx, []byte(cfg.CredentialsJSON), cloudPlatformScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse service account credentials: %w", err)
	}

	baseURL := fmt.Sprintf("https://%s-aiplatform.googleapis.com", cfg.Location)

	return &Client{
		projectID: cfg.ProjectID,
		location:  cfg.Location,
		model:     cfg.Model,
		baseURL:   baseURL,
		tokens:    creds.TokenSource,
		client:    &http.Client{Timeout: 60 * time.Second},
	}, nil
}

// newClientWithTokenSource is used by tests to bypass the credential exchange.
func newClientWithTokenSource(cfg *config.VertexConfig, baseURL string, ts oauth2.TokenSource) *Client {
	return &Client{
		projectID: cfg.ProjectID,
		location:  cfg.Location,
		model:     cfg.Model,
		baseURL:   baseURL,
		tokens:    ts,
		client:    &http.Client{Timeout: 60 * time.Second},
	}
}

// generateRequest is the shape for generateContent requests
type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Role  string `json:"role"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

// generateResponse is a minimal response shape
type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (c *Client) endpoint() string {
	return fmt.Sprintf("%s/v1/projects/%s/locations/%s/publishers/google/models/%s:generateContent",
		c.baseURL, c.projectID, c.location, c.model)
}

// GenerateContent sends one user prompt and returns the model's text reply.
func (c *Client) GenerateContent(ctx context.Context, prompt string) (string, error) {
	token, err := c.tokens.Token()
	if err != nil {
		return "", errors.ErrTokenExchangeFailed(err)
	}

	reqBody := generateRequest{
		Contents: []content{
			{Role: "user", Parts: []part{{Text: prompt}}},
		},
	}

	b, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.endpoint(), bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+token.AccessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("vertex returned status %d", resp.StatusCode)
	}

	var gr generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
		return "", err
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return "", entities.ErrEmptyModelResponse
	}
	return gr.Candidates[0].Content.Parts[0].Text, nil
}
