// Package syncsheet reconciles the local collection stores and session list
// against a row/cell-oriented remote spreadsheet store.
package syncsheet

import "context"

// Remote is the narrow contract the adapter needs from the spreadsheet side:
// read a range, overwrite a range, append a row, delete a row by index.
//
// Row indices passed to DeleteRow are absolute zero-based sheet rows (the
// header row is index 0). Deleting a row shifts every subsequent index, so
// batch deletes must recompute indices between deletions and work
// back-to-front; the adapter owns that discipline, implementations must not.
type Remote interface {
	ReadRange(ctx context.Context, rng string) ([][]string, error)
	WriteRange(ctx context.Context, rng string, values [][]string) error
	AppendRow(ctx context.Context, rng string, row []string) error
	DeleteRow(ctx context.Context, sheetTitle string, rowIndex int) error
}
