package entities

// Transcript is one completed meeting recording as returned by the
// transcription provider, enriched in place by the pipeline.
type Transcript struct {
	ID             string      `json:"id"`
	Title          string      `json:"title"`
	OrganizerEmail string      `json:"organizer_email"`
	Participants   []string    `json:"participants"`
	Date           int64       `json:"date"` // epoch milliseconds, authoritative meeting time
	Speakers       []Speaker   `json:"speakers"`
	MeetingInfo    MeetingInfo `json:"meeting_info"`
	TranscriptURL  string      `json:"transcript_url"`
	Duration       float64     `json:"duration"`
	Attendees      []Attendee  `json:"meeting_attendees"`
	Sentences      []Sentence  `json:"sentences"`

	// Filled by the summarizer; empty until summarization completes.
	Summary     string       `json:"meeting_summary,omitempty"`
	ActionItems []ActionItem `json:"action_items,omitempty"`
}

// Speaker identifies one voice in the recording.
type Speaker struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// MeetingInfo carries provider-side meeting metadata.
type MeetingInfo struct {
	FredJoined    bool   `json:"fred_joined"`
	SilentMeeting bool   `json:"silent_meeting"`
	SummaryStatus string `json:"summary_status"`
}

// Attendee is one invited participant with contact details.
type Attendee struct {
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Name        string `json:"name"`
	Location    string `json:"location"`
}

// Sentence is one spoken line attributed to a speaker.
type Sentence struct {
	SpeakerName string `json:"speaker_name"`
	Text        string `json:"text"`
}

// IsEmpty reports whether the meeting has no spoken content.
func (t *Transcript) IsEmpty() bool {
	return len(t.Sentences) == 0
}

// SpeakerNames returns the names of all speakers, in order.
func (t *Transcript) SpeakerNames() []string {
	names := make([]string, 0, len(t.Speakers))
	for _, s := range t.Speakers {
		names = append(names, s.Name)
	}
	return names
}

// AttendeeEmails returns the email addresses of all attendees, in order.
func (t *Transcript) AttendeeEmails() []string {
	emails := make([]string, 0, len(t.Attendees))
	for _, a := range t.Attendees {
		emails = append(emails, a.Email)
	}
	return emails
}
