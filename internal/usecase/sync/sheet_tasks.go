package sync

import (
	"context"
	"fmt"
	"strings"

	"github.com/turtlefinance/meeting-sync/internal/domain/entities"
)

var taskSheetHeader = []interface{}{
	"Meeting ID",
	"Organizer Email",
	"Participants",
	"Task",
	"Responsible",
	"Deadline",
	"Status",
}

// statusColumnIndex is the zero-indexed column carrying the choice list.
const statusColumnIndex = 6

var statusOptions = []string{
	entities.ActionItemStatusPending,
	entities.ActionItemStatusDone,
	entities.ActionItemStatusAssigned,
}

// TaskSheet writes one row per action item into a spreadsheet sheet and
// constrains the status column of new rows to the allowed values.
type TaskSheet struct {
	store RowStore
	sheet string
}

// NewTaskSheet constructs the per-task spreadsheet destination.
func NewTaskSheet(store RowStore, sheetName string) *TaskSheet {
	return &TaskSheet{store: store, sheet: sheetName}
}

func (ts *TaskSheet) Name() string {
	return "sheet:" + ts.sheet
}

// Exists scans column A of all existing rows for the meeting id.
func (ts *TaskSheet) Exists(ctx context.Context, meetingID string) (bool, error) {
	rows, err := ts.store.GetValues(ctx, ts.sheet+"!A:Z")
	if err != nil {
		return false, err
	}
	return sheetHasMeetingID(rows, meetingID), nil
}

// Write pre-allocates one blank row per action item at the end of the sheet,
// fills them, then applies the status choice list to exactly the new rows.
func (ts *TaskSheet) Write(ctx context.Context, t *entities.Transcript) error {
	newRows := ts.buildRows(t)
	if len(newRows) == 0 {
		return nil
	}

	rows, err := ts.store.GetValues(ctx, ts.sheet+"!A:Z")
	if err != nil {
		return err
	}

	if !sheetHasHeader(rows) {
		values := append([][]interface{}{taskSheetHeader}, newRows...)
		return ts.store.UpdateValues(ctx, ts.sheet+"!A1", values)
	}

	lastRowIndex := int64(len(rows))

	sheetID, err := ts.store.SheetID(ctx, ts.sheet)
	if err != nil {
		return err
	}
	if err := ts.store.InsertRows(ctx, sheetID, lastRowIndex, lastRowIndex+int64(len(newRows)), true); err != nil {
		return err
	}

	updateRange := fmt.Sprintf("%s!A%d:%s%d",
		ts.sheet, lastRowIndex+1, columnLetter(len(taskSheetHeader)), lastRowIndex+int64(len(newRows)))
	if err := ts.store.UpdateValues(ctx, updateRange, newRows); err != nil {
		return err
	}

	return ts.store.SetChoiceValidation(ctx, sheetID,
		lastRowIndex, lastRowIndex+int64(len(newRows)),
		statusColumnIndex, statusColumnIndex+1,
		statusOptions)
}

func (ts *TaskSheet) buildRows(t *entities.Transcript) [][]interface{} {
	participants := strings.Join(t.Participants, ", ")

	rows := make([][]interface{}, 0, len(t.ActionItems))
	for _, item := range t.ActionItems {
		status := item.Status
		if status == "" {
			status = entities.ActionItemStatusPending
		}
		rows = append(rows, []interface{}{
			t.ID,
			t.OrganizerEmail,
			participants,
			item.Task,
			item.ResponsiblePerson,
			item.Deadline,
			status,
		})
	}
	return rows
}
