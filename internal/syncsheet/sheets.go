package syncsheet

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// sheetsRemote implements Remote on top of the Google Sheets v4 API.
type sheetsRemote struct {
	service       *sheets.Service
	spreadsheetID string
}

// NewSheetsRemote creates a Remote bound to one spreadsheet. The token source
// is consulted per request, so a token cached after startup works without
// rebuilding the client.
func NewSheetsRemote(ctx context.Context, tokens oauth2.TokenSource, spreadsheetID string) (Remote, error) {
	service, err := sheets.NewService(ctx, option.WithTokenSource(tokens))
	if err != nil {
		return nil, fmt.Errorf("unable to create sheets client: %w", err)
	}
	return &sheetsRemote{
		service:       service,
		spreadsheetID: spreadsheetID,
	}, nil
}

// ReadRange reads a cell range. Cells come back as strings; the remote layout
// only ever holds IDs and JSON blobs.
func (r *sheetsRemote) ReadRange(ctx context.Context, rng string) ([][]string, error) {
	resp, err := r.service.Spreadsheets.Values.
		Get(r.spreadsheetID, rng).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("read range %q: %w", rng, err)
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, raw := range resp.Values {
		row := make([]string, 0, len(raw))
		for _, cell := range raw {
			row = append(row, fmt.Sprint(cell))
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// WriteRange overwrites a cell range with raw (unparsed) values.
func (r *sheetsRemote) WriteRange(ctx context.Context, rng string, values [][]string) error {
	_, err := r.service.Spreadsheets.Values.
		Update(r.spreadsheetID, rng, &sheets.ValueRange{Values: toInterfaceRows(values)}).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("write range %q: %w", rng, err)
	}
	return nil
}

// AppendRow appends one row after the last data row of the range's table.
func (r *sheetsRemote) AppendRow(ctx context.Context, rng string, row []string) error {
	_, err := r.service.Spreadsheets.Values.
		Append(r.spreadsheetID, rng, &sheets.ValueRange{Values: toInterfaceRows([][]string{row})}).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("append row to %q: %w", rng, err)
	}
	return nil
}

// DeleteRow removes one row by absolute zero-based index from the named tab.
func (r *sheetsRemote) DeleteRow(ctx context.Context, sheetTitle string, rowIndex int) error {
	sheetID, err := r.sheetIDByTitle(ctx, sheetTitle)
	if err != nil {
		return err
	}

	req := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			DeleteDimension: &sheets.DeleteDimensionRequest{
				Range: &sheets.DimensionRange{
					SheetId:    sheetID,
					Dimension:  "ROWS",
					StartIndex: int64(rowIndex),
					EndIndex:   int64(rowIndex + 1),
				},
			},
		}},
	}

	_, err = r.service.Spreadsheets.
		BatchUpdate(r.spreadsheetID, req).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("delete row %d of %q: %w", rowIndex, sheetTitle, err)
	}
	return nil
}

// sheetIDByTitle resolves a tab title to its numeric sheet ID. Looked up per
// delete; the spreadsheet's tabs can be reordered between calls.
func (r *sheetsRemote) sheetIDByTitle(ctx context.Context, title string) (int64, error) {
	meta, err := r.service.Spreadsheets.
		Get(r.spreadsheetID).
		Fields("sheets(properties(sheetId,title))").
		Context(ctx).
		Do()
	if err != nil {
		return 0, fmt.Errorf("get spreadsheet metadata: %w", err)
	}

	for _, sheet := range meta.Sheets {
		if sheet.Properties != nil && sheet.Properties.Title == title {
			return sheet.Properties.SheetId, nil
		}
	}
	return 0, fmt.Errorf("sheet %q not found in spreadsheet", title)
}

func toInterfaceRows(values [][]string) [][]interface{} {
	rows := make([][]interface{}, len(values))
	for i, row := range values {
		cells := make([]interface{}, len(row))
		for j, cell := range row {
			cells[j] = cell
		}
		rows[i] = cells
	}
	return rows
}
