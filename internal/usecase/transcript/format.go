package transcript

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/turtlefinance/meeting-sync/internal/domain/entities"
)

// EmptyMeetingMarker is rendered in place of sentences when a meeting has no
// spoken content.
const EmptyMeetingMarker = "This meeting is empty"

// MeetingDateFormat is the dd/mm/yy layout used in prompts and deadlines.
const MeetingDateFormat = "02/01/06"

var blockSeparator = regexp.MustCompile(`\n\nTranscript \d+:\n`)

// Format renders each transcript as a labeled block
// "Transcript {n}:\n{speaker}: {text}\n..." and joins the blocks with a
// double newline.
func Format(transcripts []entities.Transcript) string {
	blocks := make([]string, 0, len(transcripts))
	for i, t := range transcripts {
		var b strings.Builder
		fmt.Fprintf(&b, "Transcript %d:\n", i+1)
		if t.IsEmpty() {
			b.WriteString(EmptyMeetingMarker)
		} else {
			lines := make([]string, 0, len(t.Sentences))
			for _, s := range t.Sentences {
				lines = append(lines, fmt.Sprintf("%s: %s", s.SpeakerName, s.Text))
			}
			b.WriteString(strings.Join(lines, "\n"))
		}
		blocks = append(blocks, b.String())
	}
	return strings.Join(blocks, "\n\n")
}

// Split recovers the per-transcript segments from formatted text. The first
// block's label is stripped before splitting so every element is one
// segment's body. A length mismatch against the source transcripts is a
// warning condition for the caller, not an error here.
func Split(formatted string) []string {
	trimmed := strings.TrimPrefix(formatted, "Transcript 1:\n")
	parts := blockSeparator.Split(trimmed, -1)

	segments := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			segments = append(segments, p)
		}
	}
	return segments
}

// FormatMeetingDate converts an epoch-millisecond timestamp to dd/mm/yy.
func FormatMeetingDate(epochMillis int64) string {
	return time.UnixMilli(epochMillis).UTC().Format(MeetingDateFormat)
}

// FormatMeetingDateTime converts an epoch-millisecond timestamp to a
// human-readable datetime string for spreadsheet cells.
func FormatMeetingDateTime(epochMillis int64) string {
	return time.UnixMilli(epochMillis).UTC().Format("02/01/2006, 15:04:05")
}
