package gsheets

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/turtlefinance/meeting-sync/internal/domain/entities"
)

// Client wraps the Google Sheets API with the row-get/update/clear/
// insert-dimension/set-validation operations the sync destinations use,
// keyed by a sheet name and A1-style range.
type Client struct {
	svc           *sheets.Service
	spreadsheetID string
}

// NewClient authenticates with service-account JSON credentials.
func NewClient(ctx context.Context, spreadsheetID, credentialsJSON string, opts ...option.ClientOption) (*Client, error) {
	all := append([]option.ClientOption{}, opts...)
	if credentialsJSON != "" {
		all = append(all, option.WithCredentialsJSON([]byte(credentialsJSON)))
	}
	all = append(all, option.WithScopes(sheets.SpreadsheetsScope))

	svc, err := sheets.NewService(ctx, all...)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}
	return &Client{svc: svc, spreadsheetID: spreadsheetID}, nil
}

// GetValues returns all cell values in the A1-style range.
func (c *Client) GetValues(ctx context.Context, rangeA1 string) ([][]interface{}, error) {
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, rangeA1).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	return resp.Values, nil
}

// UpdateValues writes values into the A1-style range. Values are written
// USER_ENTERED so formula strings are evaluated by the sheet.
func (c *Client) UpdateValues(ctx context.Context, rangeA1 string, values [][]interface{}) error {
	_, err := c.svc.Spreadsheets.Values.Update(c.spreadsheetID, rangeA1, &sheets.ValueRange{Values: values}).
		ValueInputOption("USER_ENTERED").
		Context(ctx).Do()
	return err
}

// ClearValues clears all cell values in the A1-style range.
func (c *Client) ClearValues(ctx context.Context, rangeA1 string) error {
	_, err := c.svc.Spreadsheets.Values.Clear(c.spreadsheetID, rangeA1, &sheets.ClearValuesRequest{}).
		Context(ctx).Do()
	return err
}

// SheetID resolves a sheet title to its grid id.
func (c *Client) SheetID(ctx context.Context, title string) (int64, error) {
	meta, err := c.svc.Spreadsheets.Get(c.spreadsheetID).Context(ctx).Do()
	if err != nil {
		return 0, err
	}
	for _, s := range meta.Sheets {
		if s.Properties != nil && s.Properties.Title == title {
			return s.Properties.SheetId, nil
		}
	}
	return 0, fmt.Errorf("%w: %s", entities.ErrSheetNotFound, title)
}

// InsertRows appends blank rows in [startIndex, endIndex), zero-indexed.
func (c *Client) InsertRows(ctx context.Context, sheetID, startIndex, endIndex int64, inheritFromBefore bool) error {
	req := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{
			{
				InsertDimension: &sheets.InsertDimensionRequest{
					Range: &sheets.DimensionRange{
						SheetId:    sheetID,
						Dimension:  "ROWS",
						StartIndex: startIndex,
						EndIndex:   endIndex,
					},
					InheritFromBefore: inheritFromBefore,
				},
			},
		},
	}
	_, err := c.svc.Spreadsheets.BatchUpdate(c.spreadsheetID, req).Context(ctx).Do()
	return err
}

// SetChoiceValidation applies a strict ONE_OF_LIST constraint to the cell
// block [startRow, endRow) x [startCol, endCol), zero-indexed.
func (c *Client) SetChoiceValidation(ctx context.Context, sheetID, startRow, endRow, startCol, endCol int64, options []string) error {
	values := make([]*sheets.ConditionValue, 0, len(options))
	for _, opt := range options {
		values = append(values, &sheets.ConditionValue{UserEnteredValue: opt})
	}

	req := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{
			{
				SetDataValidation: &sheets.SetDataValidationRequest{
					Range: &sheets.GridRange{
						SheetId:          sheetID,
						StartRowIndex:    startRow,
						EndRowIndex:      endRow,
						StartColumnIndex: startCol,
						EndColumnIndex:   endCol,
					},
					Rule: &sheets.DataValidationRule{
						Condition: &sheets.BooleanCondition{
							Type:   "ONE_OF_LIST",
							Values: values,
						},
						ShowCustomUi: true,
						Strict:       true,
					},
				},
			},
		},
	}
	_, err := c.svc.Spreadsheets.BatchUpdate(c.spreadsheetID, req).Context(ctx).Do()
	return err
}
