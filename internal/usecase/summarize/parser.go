package summarize

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/turtlefinance/meeting-sync/internal/domain/entities"
)

// Result is the structured outcome of one summarization call.
type Result struct {
	MeetingSummary string                `json:"meetingSummary"`
	ActionItems    []entities.ActionItem `json:"actionItems"`
}

// Parser handles parsing and validation of model responses
type Parser struct{}

// NewParser creates a new Parser instance
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses the model's JSON response into a Result. The model may wrap
// the object in a markdown code fence; the wrapper is stripped first.
func (p *Parser) Parse(raw string) (*Result, error) {
	raw = extractJSON(raw)

	var result Result
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, fmt.Errorf("%w: %v", entities.ErrMalformedModelJSON, err)
	}

	if result.ActionItems == nil {
		result.ActionItems = make([]entities.ActionItem, 0)
	}
	for i := range result.ActionItems {
		if result.ActionItems[i].Status == "" {
			result.ActionItems[i].Status = entities.ActionItemStatusPending
		}
	}

	return &result, nil
}

// extractJSON extracts JSON content from markdown code blocks or plain text
func extractJSON(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	} else if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	}

	return strings.TrimSpace(content)
}
