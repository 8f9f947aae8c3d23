package sync

import (
	"context"
	"testing"

	notionapi "github.com/dstotijn/go-notion"

	"github.com/turtlefinance/meeting-sync/internal/domain/entities"
)

type createdPage struct {
	databaseID string
	props      notionapi.DatabasePageProperties
}

type fakePageStore struct {
	existing map[string]bool
	pages    []createdPage
}

func (f *fakePageStore) MeetingExists(_ context.Context, _, meetingID string) (bool, error) {
	return f.existing[meetingID], nil
}

func (f *fakePageStore) CreatePage(_ context.Context, databaseID string, props notionapi.DatabasePageProperties) error {
	f.pages = append(f.pages, createdPage{databaseID: databaseID, props: props})
	return nil
}

func TestNotionMeetingsWritesSinglePage(t *testing.T) {
	store := &fakePageStore{}
	dest := NewNotionMeetings(store, "db-meetings")

	if err := dest.Write(context.Background(), sampleTranscript()); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	if len(store.pages) != 1 {
		t.Fatalf("created %d pages, want 1", len(store.pages))
	}
	page := store.pages[0]
	if page.databaseID != "db-meetings" {
		t.Fatalf("database = %q, want db-meetings", page.databaseID)
	}

	title := page.props["Meeting ID"].Title
	if len(title) != 1 || title[0].Text.Content != "M1" {
		t.Fatalf("Meeting ID title = %+v, want M1", title)
	}
	if got := *page.props["Organizer Email"].Email; got != "lead@example.com" {
		t.Fatalf("Organizer Email = %q", got)
	}
	date := page.props["Date"].Date
	if date == nil || date.Start.Format("2006-01-02") != "2025-01-30" {
		t.Fatalf("Date property = %+v, want 2025-01-30", date)
	}
}

func TestNotionMeetingsExists(t *testing.T) {
	store := &fakePageStore{existing: map[string]bool{"M1": true}}
	dest := NewNotionMeetings(store, "db-meetings")

	exists, err := dest.Exists(context.Background(), " M1 ")
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if !exists {
		t.Fatal("expected trimmed id to match existing page")
	}
}

func TestNotionTasksCreatesPagePerActionItem(t *testing.T) {
	store := &fakePageStore{}
	dest := NewNotionTasks(store, "db-tasks")

	if err := dest.Write(context.Background(), sampleTranscript()); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	if len(store.pages) != 2 {
		t.Fatalf("created %d pages, want one per action item", len(store.pages))
	}

	first := store.pages[0].props
	if got := first["Task"].RichText[0].Text.Content; got != "Ship the report" {
		t.Fatalf("Task = %q", got)
	}
	if got := first["Status"].Select.Name; got != entities.ActionItemStatusPending {
		t.Fatalf("Status = %q, want pending", got)
	}
	deadline := first["Deadline"].Date
	if deadline == nil || deadline.Start.Format("2006-01-02") != "2025-02-06" {
		t.Fatalf("Deadline = %+v, want 2025-02-06", deadline)
	}
}

func TestNotionTasksOmitsUnparseableDeadline(t *testing.T) {
	store := &fakePageStore{}
	dest := NewNotionTasks(store, "db-tasks")

	tr := sampleTranscript()
	tr.ActionItems = []entities.ActionItem{{Task: "Follow up", ResponsiblePerson: "Alice"}}

	if err := dest.Write(context.Background(), tr); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	props := store.pages[0].props
	if _, ok := props["Deadline"]; ok {
		t.Fatal("deadline property must be omitted when no deadline is known")
	}
	if got := props["Status"].Select.Name; got != entities.ActionItemStatusPending {
		t.Fatalf("Status = %q, want default pending", got)
	}
}
