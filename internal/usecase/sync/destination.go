package sync

import (
	"context"

	notionapi "github.com/dstotijn/go-notion"

	"github.com/turtlefinance/meeting-sync/internal/domain/entities"
)

// Destination is one external system that receives a durable copy of
// transcript and action-item data. The engine depends only on this
// capability set; spreadsheet-style and record-store variants implement it.
type Destination interface {
	// Name identifies the destination in logs.
	Name() string
	// Exists reports whether the destination already holds a record keyed
	// by meetingID (trimmed exact string match). A hit means the whole
	// write is skipped.
	Exists(ctx context.Context, meetingID string) (bool, error)
	// Write materializes the transcript into the destination, including
	// any header/schema bootstrap on first write.
	Write(ctx context.Context, t *entities.Transcript) error
}

// RowStore is the spreadsheet collaborator: row get/update/clear,
// insert-dimension and set-validation operations keyed by a sheet name and
// A1-style range.
type RowStore interface {
	GetValues(ctx context.Context, rangeA1 string) ([][]interface{}, error)
	UpdateValues(ctx context.Context, rangeA1 string, values [][]interface{}) error
	ClearValues(ctx context.Context, rangeA1 string) error
	SheetID(ctx context.Context, title string) (int64, error)
	InsertRows(ctx context.Context, sheetID, startIndex, endIndex int64, inheritFromBefore bool) error
	SetChoiceValidation(ctx context.Context, sheetID, startRow, endRow, startCol, endCol int64, options []string) error
}

// PageStore is the record-store collaborator: query-with-filter and
// create-record operations keyed by a database identifier.
type PageStore interface {
	MeetingExists(ctx context.Context, databaseID, meetingID string) (bool, error)
	CreatePage(ctx context.Context, databaseID string, props notionapi.DatabasePageProperties) error
}
