package notiondb

import (
	"context"
	"fmt"
	"net/http"
	"time"

	notionapi "github.com/dstotijn/go-notion"
)

// MeetingIDProperty is the title property every synced database keys on.
// Duplicate prevention filters on it with an exact match.
const MeetingIDProperty = "Meeting ID"

// Client wraps the Notion API with the query-with-filter, create-record and
// patch-record(archive) operations the sync destinations use.
type Client struct {
	nc *notionapi.Client
}

// NewClient creates a Notion client for the given integration key.
func NewClient(apiKey string) *Client {
	return &Client{
		nc: notionapi.NewClient(apiKey,
			notionapi.WithHTTPClient(&http.Client{Timeout: 30 * time.Second})),
	}
}

// MeetingExists reports whether a page keyed by meetingID is already present
// in the database.
func (c *Client) MeetingExists(ctx context.Context, databaseID, meetingID string) (bool, error) {
	query := &notionapi.DatabaseQuery{
		Filter: &notionapi.DatabaseQueryFilter{
			Property: MeetingIDProperty,
			DatabaseQueryPropertyFilter: notionapi.DatabaseQueryPropertyFilter{
				Title: &notionapi.TextPropertyFilter{Equals: meetingID},
			},
		},
	}

	resp, err := c.nc.QueryDatabase(ctx, databaseID, query)
	if err != nil {
		return false, fmt.Errorf("failed to query database %s: %w", databaseID, err)
	}
	return len(resp.Results) > 0, nil
}

// CreatePage creates one record in the database.
func (c *Client) CreatePage(ctx context.Context, databaseID string, props notionapi.DatabasePageProperties) error {
	_, err := c.nc.CreatePage(ctx, notionapi.CreatePageParams{
		ParentType:             notionapi.ParentTypeDatabase,
		ParentID:               databaseID,
		DatabasePageProperties: &props,
	})
	if err != nil {
		return fmt.Errorf("failed to create page in database %s: %w", databaseID, err)
	}
	return nil
}

// ArchivePage archives (soft-deletes) a page.
func (c *Client) ArchivePage(ctx context.Context, pageID string) error {
	archived := true
	_, err := c.nc.UpdatePage(ctx, pageID, notionapi.UpdatePageParams{
		Archived: &archived,
	})
	if err != nil {
		return fmt.Errorf("failed to archive page %s: %w", pageID, err)
	}
	return nil
}

// CreateMeetingDatabase bootstraps the complete-meeting database schema
// under the parent page and returns its id.
func (c *Client) CreateMeetingDatabase(ctx context.Context, parentPageID string) (string, error) {
	db, err := c.nc.CreateDatabase(ctx, notionapi.CreateDatabaseParams{
		ParentPageID: parentPageID,
		Title: []notionapi.RichText{
			{Type: notionapi.RichTextTypeText, Text: &notionapi.Text{Content: "Complete Fireflies Meeting Data"}},
		},
		Properties: notionapi.DatabaseProperties{
			MeetingIDProperty:   {Type: notionapi.DBPropTypeTitle, Title: &notionapi.EmptyMetadata{}},
			"Title":             {Type: notionapi.DBPropTypeRichText, RichText: &notionapi.EmptyMetadata{}},
			"Organizer Email":   {Type: notionapi.DBPropTypeEmail, Email: &notionapi.EmptyMetadata{}},
			"Participants":      {Type: notionapi.DBPropTypeRichText, RichText: &notionapi.EmptyMetadata{}},
			"Meeting Attendees": {Type: notionapi.DBPropTypeRichText, RichText: &notionapi.EmptyMetadata{}},
			"Date":              {Type: notionapi.DBPropTypeDate, Date: &notionapi.EmptyMetadata{}},
			"Speaker":           {Type: notionapi.DBPropTypeRichText, RichText: &notionapi.EmptyMetadata{}},
			"Summary":           {Type: notionapi.DBPropTypeRichText, RichText: &notionapi.EmptyMetadata{}},
			"Action Items":      {Type: notionapi.DBPropTypeRichText, RichText: &notionapi.EmptyMetadata{}},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to create meeting database: %w", err)
	}
	return db.ID, nil
}

// CreateTaskDatabase bootstraps the row-wise task database schema under the
// parent page and returns its id.
func (c *Client) CreateTaskDatabase(ctx context.Context, parentPageID string) (string, error) {
	db, err := c.nc.CreateDatabase(ctx, notionapi.CreateDatabaseParams{
		ParentPageID: parentPageID,
		Title: []notionapi.RichText{
			{Type: notionapi.RichTextTypeText, Text: &notionapi.Text{Content: "Detailed Row Wise Task View"}},
		},
		Properties: notionapi.DatabaseProperties{
			MeetingIDProperty: {Type: notionapi.DBPropTypeTitle, Title: &notionapi.EmptyMetadata{}},
			"Organizer Email": {Type: notionapi.DBPropTypeEmail, Email: &notionapi.EmptyMetadata{}},
			"Participants":    {Type: notionapi.DBPropTypeRichText, RichText: &notionapi.EmptyMetadata{}},
			"Task":            {Type: notionapi.DBPropTypeRichText, RichText: &notionapi.EmptyMetadata{}},
			"Responsible":     {Type: notionapi.DBPropTypeRichText, RichText: &notionapi.EmptyMetadata{}},
			"Deadline":        {Type: notionapi.DBPropTypeDate, Date: &notionapi.EmptyMetadata{}},
			"Status": {
				Type: notionapi.DBPropTypeSelect,
				Select: &notionapi.SelectMetadata{
					Options: []notionapi.SelectOptions{
						{Name: "pending", Color: notionapi.ColorYellow},
						{Name: "done", Color: notionapi.ColorGreen},
						{Name: "assigned", Color: notionapi.ColorBlue},
					},
				},
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to create task database: %w", err)
	}
	return db.ID, nil
}
