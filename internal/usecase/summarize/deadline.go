package summarize

import (
	"time"

	"github.com/turtlefinance/meeting-sync/internal/usecase/transcript"
)

// SynthesizeDeadline returns meeting date + 7 days in dd/mm/yy. The model is
// instructed to do this itself; this is the backstop applied when it still
// returns an empty deadline. An unparseable meeting date yields an empty
// string, which the destinations accept.
func SynthesizeDeadline(meetingDate string) string {
	d, err := time.Parse(transcript.MeetingDateFormat, meetingDate)
	if err != nil {
		return ""
	}
	return d.AddDate(0, 0, 7).Format(transcript.MeetingDateFormat)
}
