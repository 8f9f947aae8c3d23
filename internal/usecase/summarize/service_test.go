package summarize

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type fakeGenerator struct {
	reply    string
	err      error
	failures int
	calls    int
	prompts  []string
}

func (g *fakeGenerator) GenerateContent(ctx context.Context, prompt string) (string, error) {
	g.calls++
	g.prompts = append(g.prompts, prompt)
	if g.calls <= g.failures {
		return "", errors.New("transient failure")
	}
	if g.err != nil {
		return "", g.err
	}
	return g.reply, nil
}

func TestSummarize_FillsMissingDeadline(t *testing.T) {
	gen := &fakeGenerator{
		reply: `{"meetingSummary":"done","actionItems":[{"task":"Send proposal","responsiblePerson":"Alice","deadline":""}]}`,
	}

	result, err := NewService(gen, nil).Summarize(context.Background(), "Alice: hi", "14/02/25")
	if err != nil {
		t.Fatalf("summarize failed: %v", err)
	}
	if result.ActionItems[0].Deadline != "21/02/25" {
		t.Fatalf("expected synthesized deadline 21/02/25, got %q", result.ActionItems[0].Deadline)
	}
}

func TestSummarize_PromptContainsTranscriptAndDate(t *testing.T) {
	gen := &fakeGenerator{reply: `{"meetingSummary":"s","actionItems":[]}`}

	if _, err := NewService(gen, nil).Summarize(context.Background(), "Alice: hi there", "30/01/25"); err != nil {
		t.Fatalf("summarize failed: %v", err)
	}
	prompt := gen.prompts[0]
	if !strings.Contains(prompt, "Alice: hi there") {
		t.Fatal("prompt missing transcript text")
	}
	if !strings.Contains(prompt, "30/01/25") {
		t.Fatal("prompt missing formatted date")
	}
	if !strings.Contains(prompt, "meetingSummary") || !strings.Contains(prompt, "actionItems") {
		t.Fatal("prompt missing attribute name constraints")
	}
}

func TestSummarize_RetriesTransientFailures(t *testing.T) {
	gen := &fakeGenerator{
		reply:    `{"meetingSummary":"s","actionItems":[]}`,
		failures: 2,
	}

	if _, err := NewService(gen, nil).Summarize(context.Background(), "text", "30/01/25"); err != nil {
		t.Fatalf("expected retries to succeed, got %v", err)
	}
	if gen.calls != 3 {
		t.Fatalf("expected 3 calls, got %d", gen.calls)
	}
}

func TestSummarize_ParseFailureNotRetried(t *testing.T) {
	gen := &fakeGenerator{reply: "garbage"}

	if _, err := NewService(gen, nil).Summarize(context.Background(), "text", "30/01/25"); err == nil {
		t.Fatal("expected parse error")
	}
	if gen.calls != 1 {
		t.Fatalf("expected a single model call, got %d", gen.calls)
	}
}
