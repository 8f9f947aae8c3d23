package transcript

import (
	"strings"
	"testing"

	"github.com/turtlefinance/meeting-sync/internal/domain/entities"
)

func TestFormat_SingleTranscript(t *testing.T) {
	transcripts := []entities.Transcript{
		{
			ID: "M1",
			Sentences: []entities.Sentence{
				{SpeakerName: "Alice", Text: "Hello everyone"},
				{SpeakerName: "Bob", Text: "Hi Alice"},
			},
		},
	}

	got := Format(transcripts)
	want := "Transcript 1:\nAlice: Hello everyone\nBob: Hi Alice"
	if got != want {
		t.Fatalf("unexpected format:\n got %q\nwant %q", got, want)
	}
}

func TestFormat_EmptyMeeting(t *testing.T) {
	got := Format([]entities.Transcript{{ID: "M1"}})
	want := "Transcript 1:\n" + EmptyMeetingMarker
	if got != want {
		t.Fatalf("unexpected format: %q", got)
	}
}

func TestSplit_RoundTrip(t *testing.T) {
	transcripts := []entities.Transcript{
		{ID: "M1", Sentences: []entities.Sentence{{SpeakerName: "Alice", Text: "first meeting"}}},
		{ID: "M2", Sentences: []entities.Sentence{{SpeakerName: "Bob", Text: "second meeting"}}},
		{ID: "M3"},
	}

	segments := Split(Format(transcripts))
	if len(segments) != len(transcripts) {
		t.Fatalf("expected %d segments, got %d", len(transcripts), len(segments))
	}
	if segments[0] != "Alice: first meeting" {
		t.Fatalf("unexpected first segment %q", segments[0])
	}
	if segments[1] != "Bob: second meeting" {
		t.Fatalf("unexpected second segment %q", segments[1])
	}
	if !strings.Contains(segments[2], EmptyMeetingMarker) {
		t.Fatalf("expected empty-meeting marker in %q", segments[2])
	}
}

func TestFormatMeetingDate(t *testing.T) {
	// 2025-01-30 05:10:00 UTC
	got := FormatMeetingDate(1738211400000)
	if got != "30/01/25" {
		t.Fatalf("expected 30/01/25, got %q", got)
	}
}
