package sync

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// participantsColumnIndex is the zero-indexed meeting-sheet column holding
// the comma-separated participant emails.
const participantsColumnIndex = 3

// ClientFilter rebuilds the per-client view sheet: it reads the client email
// selected in the view's dropdown cell and copies every meeting row whose
// participants include that email. Row 1 (dropdown) and row 2 (header) of
// the view sheet are never touched; data always starts at row 3.
type ClientFilter struct {
	store       RowStore
	sourceSheet string
	viewSheet   string
	logger      *zap.Logger
}

// NewClientFilter constructs the filter over the meeting sheet.
func NewClientFilter(store RowStore, sourceSheet, viewSheet string, logger *zap.Logger) *ClientFilter {
	return &ClientFilter{
		store:       store,
		sourceSheet: sourceSheet,
		viewSheet:   viewSheet,
		logger:      logger,
	}
}

// Apply refreshes the view sheet and returns the number of matching rows.
func (f *ClientFilter) Apply(ctx context.Context) (int, error) {
	dropdown, err := f.store.GetValues(ctx, f.viewSheet+"!E1")
	if err != nil {
		return 0, err
	}
	if len(dropdown) == 0 || len(dropdown[0]) == 0 {
		return 0, fmt.Errorf("no client selected in %s!E1", f.viewSheet)
	}
	selected, _ := dropdown[0][0].(string)
	selected = strings.TrimSpace(selected)
	if selected == "" {
		return 0, fmt.Errorf("no client selected in %s!E1", f.viewSheet)
	}

	sourceRows, err := f.store.GetValues(ctx, f.sourceSheet+"!A:Z")
	if err != nil {
		return 0, err
	}
	if len(sourceRows) == 0 {
		return 0, nil
	}

	headerRow := sourceRows[0]
	matches := make([][]interface{}, 0)
	for i := 1; i < len(sourceRows); i++ {
		row := sourceRows[i]
		if len(row) <= participantsColumnIndex {
			continue
		}
		cell, _ := row[participantsColumnIndex].(string)
		if rowMatchesClient(cell, selected) {
			matches = append(matches, row)
		}
	}

	// Clear the old view before writing; the view stays empty when nothing
	// matches.
	if err := f.store.ClearValues(ctx, f.viewSheet+"!A3:Z"); err != nil {
		return 0, err
	}
	if len(matches) == 0 {
		f.logger.Info("no meetings match selected client",
			zap.String("client", selected),
		)
		return 0, nil
	}

	sheetID, err := f.store.SheetID(ctx, f.viewSheet)
	if err != nil {
		return 0, err
	}
	// Data begins at row 3, zero-indexed 2.
	if err := f.store.InsertRows(ctx, sheetID, 2, 2+int64(len(matches)), false); err != nil {
		return 0, err
	}

	updateRange := fmt.Sprintf("%s!A3:%s%d", f.viewSheet, columnLetter(len(headerRow)), 2+len(matches))
	if err := f.store.UpdateValues(ctx, updateRange, matches); err != nil {
		return 0, err
	}

	f.logger.Info("client view refreshed",
		zap.String("client", selected),
		zap.Int("rows", len(matches)),
	)
	return len(matches), nil
}

func rowMatchesClient(participantsCell, client string) bool {
	for _, email := range strings.Split(participantsCell, ",") {
		if strings.EqualFold(strings.TrimSpace(email), client) {
			return true
		}
	}
	return false
}
