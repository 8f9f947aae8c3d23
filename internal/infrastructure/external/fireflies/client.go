package fireflies

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/turtlefinance/meeting-sync/internal/domain/entities"
	"github.com/turtlefinance/meeting-sync/pkg/config"
)

// transcriptQuery requests the fixed field set the pipeline consumes.
const transcriptQuery = `query Transcript($transcriptId: String!) {
  transcript(id: $transcriptId) {
    id
    title
    organizer_email
    participants
    date
    speakers {
      id
      name
    }
    meeting_info {
      fred_joined
      silent_meeting
      summary_status
    }
    transcript_url
    duration
    meeting_attendees {
      displayName
      email
      phoneNumber
      name
      location
    }
    sentences {
      speaker_name
      text
    }
  }
}`

// Client is a minimal client for the Fireflies GraphQL API
type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewClient creates a Fireflies client using values from the provided config.
// Pass a nil config to fall back to environment variables.
func NewClient(cfg *config.FirefliesConfig) *Client {
	var apiKey string
	if cfg != nil {
		apiKey = cfg.APIKey
	}
	if apiKey == "" {
		apiKey = os.Getenv("FIREFLIES_API_KEY")
	}

	var base string
	if cfg != nil && cfg.BaseURL != "" {
		base = cfg.BaseURL
	} else {
		base = os.Getenv("FIREFLIES_API_URL")
		if base == "" {
			base = "https://api.fireflies.ai/graphql"
		}
	}

	return &Client{
		apiKey:  apiKey,
		baseURL: base,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// graphqlRequest is the shape for GraphQL POST bodies
type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

// transcriptResponse is a minimal response shape
type transcriptResponse struct {
	Data struct {
		Transcript *entities.Transcript `json:"transcript"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// FetchTranscript retrieves one transcript by id and normalizes the singular
// response shape into a list-of-one, so downstream code always sees a list.
// A missing transcript is returned as one transcript with an empty sentence
// list; that is a valid state, not an error.
func (c *Client) FetchTranscript(ctx context.Context, transcriptID string) ([]entities.Transcript, error) {
	reqBody := graphqlRequest{
		Query:     transcriptQuery,
		Variables: map[string]any{"transcriptId": transcriptID},
	}

	b, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entities.ErrProviderUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("fireflies returned status %d", resp.StatusCode)
	}

	var tr transcriptResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return nil, err
	}
	if len(tr.Errors) > 0 {
		return nil, fmt.Errorf("fireflies query error: %s", tr.Errors[0].Message)
	}

	if tr.Data.Transcript == nil {
		// Empty meeting placeholder keeps the pipeline shape intact.
		return []entities.Transcript{{ID: transcriptID}}, nil
	}

	return []entities.Transcript{*tr.Data.Transcript}, nil
}
