package sync

import (
	"context"
	"fmt"
	"strings"

	"github.com/turtlefinance/meeting-sync/internal/domain/entities"
	"github.com/turtlefinance/meeting-sync/internal/usecase/transcript"
)

// meetingSheetHeader is the schema bootstrapped on first write. The last
// column holds a formula the sheet recomputes on each view.
var meetingSheetHeader = []interface{}{
	"Meeting ID",
	"Title",
	"Organizer Email",
	"Participants",
	"Meeting Attendees",
	"Date",
	"Speakers",
	"Summary",
	"Action Items",
	"Days Since Last Call",
}

// MeetingSheet writes one summary row per meeting into a spreadsheet sheet.
type MeetingSheet struct {
	store RowStore
	sheet string
}

// NewMeetingSheet constructs the meeting-summary spreadsheet destination.
func NewMeetingSheet(store RowStore, sheetName string) *MeetingSheet {
	return &MeetingSheet{store: store, sheet: sheetName}
}

func (m *MeetingSheet) Name() string {
	return "sheet:" + m.sheet
}

// Exists scans column A of all existing rows for the meeting id.
func (m *MeetingSheet) Exists(ctx context.Context, meetingID string) (bool, error) {
	rows, err := m.store.GetValues(ctx, m.sheet+"!A:Z")
	if err != nil {
		return false, err
	}
	return sheetHasMeetingID(rows, meetingID), nil
}

// Write appends the meeting row, bootstrapping the header together with the
// first data row when the sheet is still empty.
func (m *MeetingSheet) Write(ctx context.Context, t *entities.Transcript) error {
	rows, err := m.store.GetValues(ctx, m.sheet+"!A:Z")
	if err != nil {
		return err
	}

	if !sheetHasHeader(rows) {
		dataRow := m.buildRow(t, 2)
		return m.store.UpdateValues(ctx, m.sheet+"!A1", [][]interface{}{meetingSheetHeader, dataRow})
	}

	lastRowIndex := int64(len(rows)) // zero-indexed position of the new row

	sheetID, err := m.store.SheetID(ctx, m.sheet)
	if err != nil {
		return err
	}
	if err := m.store.InsertRows(ctx, sheetID, lastRowIndex, lastRowIndex+1, true); err != nil {
		return err
	}

	rowNumber := lastRowIndex + 1 // A1 notation
	dataRow := m.buildRow(t, rowNumber)
	updateRange := fmt.Sprintf("%s!A%d:%s%d", m.sheet, rowNumber, columnLetter(len(meetingSheetHeader)), rowNumber)
	return m.store.UpdateValues(ctx, updateRange, [][]interface{}{dataRow})
}

// buildRow renders the row for A1 row rowNumber. The "days since" cell
// references the row's own date cell so the sheet keeps it current.
func (m *MeetingSheet) buildRow(t *entities.Transcript, rowNumber int64) []interface{} {
	actionItems := make([]string, 0, len(t.ActionItems))
	for _, item := range t.ActionItems {
		actionItems = append(actionItems,
			fmt.Sprintf("Task: %s, Responsible: %s, Deadline: %s", item.Task, item.ResponsiblePerson, item.Deadline))
	}

	return []interface{}{
		t.ID,
		t.Title,
		t.OrganizerEmail,
		strings.Join(t.Participants, ", "),
		strings.Join(t.AttendeeEmails(), ", "),
		transcript.FormatMeetingDateTime(t.Date),
		strings.Join(t.SpeakerNames(), ", "),
		t.Summary,
		strings.Join(actionItems, "\n"),
		fmt.Sprintf("=TODAY()-F%d", rowNumber),
	}
}

// sheetHasHeader reports whether the first row has at least one nonempty cell.
func sheetHasHeader(rows [][]interface{}) bool {
	if len(rows) == 0 {
		return false
	}
	for _, cell := range rows[0] {
		if s, ok := cell.(string); ok && strings.TrimSpace(s) != "" {
			return true
		}
	}
	return false
}

// sheetHasMeetingID scans data rows (excluding the header) for a trimmed
// exact match on the key column.
func sheetHasMeetingID(rows [][]interface{}, meetingID string) bool {
	want := strings.TrimSpace(meetingID)
	for i := 1; i < len(rows); i++ {
		if len(rows[i]) == 0 {
			continue
		}
		if s, ok := rows[i][0].(string); ok && strings.TrimSpace(s) == want {
			return true
		}
	}
	return false
}

// columnLetter converts a 1-based column count to its A1 column letter.
func columnLetter(n int) string {
	return string(rune('A' + n - 1))
}
