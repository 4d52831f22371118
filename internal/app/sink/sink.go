// Package sink is the thin adapter over the Google Sheets API that the
// export coordinator writes through. It translates the API's error
// payloads into the two classes the coordinator distinguishes:
// rate-limited (retryable) and everything else (permanent for this run).
package sink

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// ErrRateLimited marks a write rejected because the API's request quota
// was exceeded. The coordinator backs off and retries on this class only.
var ErrRateLimited = errors.New("rate limited")

// Sink delivers values into named tabs of a single destination
// spreadsheet.
type Sink interface {
	EnsureTab(ctx context.Context, name string) error
	Clear(ctx context.Context, name string) error
	Write(ctx context.Context, name string, values [][]any) error
}

// GoogleSheets is the Sheets API implementation of Sink.
type GoogleSheets struct {
	srv           *sheets.Service
	spreadsheetID string
	tabs          map[string]bool
}

// NewGoogleSheets builds the Sheets client and probes the destination.
// An unreachable or invalid spreadsheet surfaces here, before any sheet
// is attempted.
func NewGoogleSheets(ctx context.Context, client *http.Client, spreadsheetID string) (*GoogleSheets, error) {
	srv, err := sheets.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("error while creating sheets client: %w", err)
	}

	spreadsheet, err := srv.Spreadsheets.Get(spreadsheetID).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("destination spreadsheet %s is unreachable: %w", spreadsheetID, err)
	}

	tabs := make(map[string]bool, len(spreadsheet.Sheets))
	for _, s := range spreadsheet.Sheets {
		tabs[s.Properties.Title] = true
	}

	return &GoogleSheets{
		srv:           srv,
		spreadsheetID: spreadsheetID,
		tabs:          tabs,
	}, nil
}

// EnsureTab creates the named tab if the destination does not have it yet.
func (g *GoogleSheets) EnsureTab(ctx context.Context, name string) error {
	if g.tabs[name] {
		return nil
	}

	rq := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{
			{
				AddSheet: &sheets.AddSheetRequest{
					Properties: &sheets.SheetProperties{
						Title: name,
					},
				},
			},
		},
	}

	if _, err := g.srv.Spreadsheets.BatchUpdate(g.spreadsheetID, rq).Context(ctx).Do(); err != nil {
		return translate(fmt.Errorf("failed to add tab %q: %w", name, err))
	}

	g.tabs[name] = true
	return nil
}

// Clear wipes the whole tab. Using the bare tab name as the range covers
// whatever shape a previous export left behind.
func (g *GoogleSheets) Clear(ctx context.Context, name string) error {
	_, err := g.srv.Spreadsheets.Values.Clear(g.spreadsheetID, name, &sheets.ClearValuesRequest{}).Context(ctx).Do()
	if err != nil {
		return translate(fmt.Errorf("failed to clear tab %q: %w", name, err))
	}
	return nil
}

// Write puts the values into the tab starting at A1, in a single update
// call. RAW keeps the cells exactly as the model produced them.
func (g *GoogleSheets) Write(ctx context.Context, name string, values [][]any) error {
	vr := &sheets.ValueRange{
		Values: toInterfaceRows(values),
	}

	_, err := g.srv.Spreadsheets.Values.Update(g.spreadsheetID, name+"!A1", vr).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return translate(fmt.Errorf("failed to write tab %q: %w", name, err))
	}
	return nil
}

func toInterfaceRows(values [][]any) [][]interface{} {
	rows := make([][]interface{}, len(values))
	for i, row := range values {
		cells := make([]interface{}, len(row))
		copy(cells, row)
		rows[i] = cells
	}
	return rows
}

// translate tags quota errors with ErrRateLimited and passes everything
// else through unchanged.
func translate(err error) error {
	if isRateLimited(err) {
		return fmt.Errorf("%w: %v", ErrRateLimited, err)
	}
	return err
}

func isRateLimited(err error) bool {
	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		return false
	}

	if apiErr.Code == http.StatusTooManyRequests {
		return true
	}

	if apiErr.Code == http.StatusForbidden {
		for _, e := range apiErr.Errors {
			switch e.Reason {
			case "rateLimitExceeded", "userRateLimitExceeded", "quotaExceeded":
				return true
			}
		}
	}

	return false
}
