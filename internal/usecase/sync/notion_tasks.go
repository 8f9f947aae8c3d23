package sync

import (
	"context"
	"strings"
	"time"

	notionapi "github.com/dstotijn/go-notion"

	"github.com/turtlefinance/meeting-sync/internal/domain/entities"
)

// NotionTasks writes one page per action item into the row-wise task Notion
// database.
type NotionTasks struct {
	store      PageStore
	databaseID string
}

// NewNotionTasks constructs the per-task record-store destination.
func NewNotionTasks(store PageStore, databaseID string) *NotionTasks {
	return &NotionTasks{store: store, databaseID: databaseID}
}

func (n *NotionTasks) Name() string {
	return "notion:tasks"
}

// Exists queries the database for a page whose Meeting ID title equals the id.
func (n *NotionTasks) Exists(ctx context.Context, meetingID string) (bool, error) {
	return n.store.MeetingExists(ctx, n.databaseID, strings.TrimSpace(meetingID))
}

// Write creates one record per action item. A still-missing deadline is an
// empty string and simply leaves the date property unset.
func (n *NotionTasks) Write(ctx context.Context, t *entities.Transcript) error {
	participants := strings.Join(t.Participants, ", ")

	for _, item := range t.ActionItems {
		status := item.Status
		if status == "" {
			status = entities.ActionItemStatusPending
		}

		props := notionapi.DatabasePageProperties{
			"Meeting ID":      titleProperty(t.ID),
			"Organizer Email": emailProperty(t.OrganizerEmail),
			"Participants":    richTextProperty(participants),
			"Task":            richTextProperty(item.Task),
			"Responsible":     richTextProperty(item.ResponsiblePerson),
			"Status": notionapi.DatabasePageProperty{
				Select: &notionapi.SelectOptions{Name: status},
			},
		}

		if iso := ToISODate(item.Deadline); iso != "" {
			if deadline, err := time.Parse("2006-01-02", iso); err == nil {
				props["Deadline"] = notionapi.DatabasePageProperty{
					Date: &notionapi.Date{Start: notionapi.NewDateTime(deadline, false)},
				}
			}
		}

		if err := n.store.CreatePage(ctx, n.databaseID, props); err != nil {
			return err
		}
	}
	return nil
}
