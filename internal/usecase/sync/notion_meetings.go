package sync

import (
	"context"
	"fmt"
	"strings"
	"time"

	notionapi "github.com/dstotijn/go-notion"

	"github.com/turtlefinance/meeting-sync/internal/domain/entities"
)

// NotionMeetings writes one page per meeting into the complete-meeting
// Notion database.
type NotionMeetings struct {
	store      PageStore
	databaseID string
}

// NewNotionMeetings constructs the meeting-level record-store destination.
func NewNotionMeetings(store PageStore, databaseID string) *NotionMeetings {
	return &NotionMeetings{store: store, databaseID: databaseID}
}

func (n *NotionMeetings) Name() string {
	return "notion:meetings"
}

// Exists queries the database for a page whose Meeting ID title equals the id.
func (n *NotionMeetings) Exists(ctx context.Context, meetingID string) (bool, error) {
	return n.store.MeetingExists(ctx, n.databaseID, strings.TrimSpace(meetingID))
}

// Write creates the meeting page directly; record stores need no blank-row
// pre-allocation.
func (n *NotionMeetings) Write(ctx context.Context, t *entities.Transcript) error {
	actionItems := make([]string, 0, len(t.ActionItems))
	for _, item := range t.ActionItems {
		actionItems = append(actionItems,
			fmt.Sprintf("Task: %s, Responsible: %s, Deadline: %s", item.Task, item.ResponsiblePerson, item.Deadline))
	}

	props := notionapi.DatabasePageProperties{
		"Meeting ID":        titleProperty(t.ID),
		"Title":             richTextProperty(t.Title),
		"Organizer Email":   emailProperty(t.OrganizerEmail),
		"Participants":      richTextProperty(strings.Join(t.Participants, ", ")),
		"Meeting Attendees": richTextProperty(strings.Join(t.AttendeeEmails(), ", ")),
		"Speaker":           richTextProperty(strings.Join(t.SpeakerNames(), ", ")),
		"Summary":           richTextProperty(t.Summary),
		"Action Items":      richTextProperty(strings.Join(actionItems, "\n")),
	}

	if date, err := time.Parse("2006-01-02", EpochToISO(t.Date)); err == nil {
		props["Date"] = notionapi.DatabasePageProperty{
			Date: &notionapi.Date{Start: notionapi.NewDateTime(date, false)},
		}
	}

	return n.store.CreatePage(ctx, n.databaseID, props)
}

func titleProperty(content string) notionapi.DatabasePageProperty {
	return notionapi.DatabasePageProperty{
		Title: []notionapi.RichText{
			{Type: notionapi.RichTextTypeText, Text: &notionapi.Text{Content: content}},
		},
	}
}

func richTextProperty(content string) notionapi.DatabasePageProperty {
	return notionapi.DatabasePageProperty{
		RichText: []notionapi.RichText{
			{Type: notionapi.RichTextTypeText, Text: &notionapi.Text{Content: content}},
		},
	}
}

func emailProperty(email string) notionapi.DatabasePageProperty {
	return notionapi.DatabasePageProperty{Email: &email}
}
