package summarize

import (
	"testing"

	"github.com/turtlefinance/meeting-sync/internal/domain/entities"
)

func TestParse_PlainJSON(t *testing.T) {
	raw := `{"meetingSummary":"We agreed on the proposal.","actionItems":[{"task":"Send proposal","responsiblePerson":"Alice","deadline":"21/02/25"}]}`

	result, err := NewParser().Parse(raw)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if result.MeetingSummary != "We agreed on the proposal." {
		t.Fatalf("unexpected summary %q", result.MeetingSummary)
	}
	if len(result.ActionItems) != 1 {
		t.Fatalf("expected 1 action item, got %d", len(result.ActionItems))
	}
	item := result.ActionItems[0]
	if item.Task != "Send proposal" || item.ResponsiblePerson != "Alice" || item.Deadline != "21/02/25" {
		t.Fatalf("unexpected action item %+v", item)
	}
	if item.Status != entities.ActionItemStatusPending {
		t.Fatalf("expected default pending status, got %q", item.Status)
	}
}

func TestParse_CodeFencedJSON(t *testing.T) {
	raw := "```json\n{\"meetingSummary\":\"short\",\"actionItems\":[]}\n```"

	result, err := NewParser().Parse(raw)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if result.MeetingSummary != "short" {
		t.Fatalf("unexpected summary %q", result.MeetingSummary)
	}
	if len(result.ActionItems) != 0 {
		t.Fatalf("expected no action items, got %d", len(result.ActionItems))
	}
}

func TestParse_BareFence(t *testing.T) {
	raw := "```\n{\"meetingSummary\":\"s\",\"actionItems\":[]}\n```"

	if _, err := NewParser().Parse(raw); err != nil {
		t.Fatalf("parse failed: %v", err)
	}
}

func TestParse_MalformedJSON(t *testing.T) {
	if _, err := NewParser().Parse("not json at all"); err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}

func TestParse_MissingActionItems(t *testing.T) {
	result, err := NewParser().Parse(`{"meetingSummary":"only a summary"}`)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if result.ActionItems == nil {
		t.Fatal("expected initialized action items slice")
	}
}

func TestSynthesizeDeadline(t *testing.T) {
	if got := SynthesizeDeadline("14/02/25"); got != "21/02/25" {
		t.Fatalf("expected 21/02/25, got %q", got)
	}
	// Month boundary
	if got := SynthesizeDeadline("28/02/25"); got != "07/03/25" {
		t.Fatalf("expected 07/03/25, got %q", got)
	}
	if got := SynthesizeDeadline("not a date"); got != "" {
		t.Fatalf("expected empty string for invalid input, got %q", got)
	}
}
