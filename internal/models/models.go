package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Sheet is one named table produced by the financial model. Cells are
// string, float64, int or nil (empty).
type Sheet struct {
	Name   string
	Header []string
	Rows   [][]any
}

// Values returns the header and body rows in the form the Sheets API
// expects: one slice of cell values per row, header first.
func (s Sheet) Values() [][]any {
	values := make([][]any, 0, len(s.Rows)+1)

	header := make([]any, len(s.Header))
	for i, h := range s.Header {
		header[i] = h
	}
	values = append(values, header)

	return append(values, s.Rows...)
}

// ExportBatch is the full ordered collection of sheets for one run.
// Order determines destination tab ordering; sheets are otherwise
// independent of each other.
type ExportBatch []Sheet

// Validate rejects batches with duplicate sheet names.
func (b ExportBatch) Validate() error {
	seen := make(map[string]bool, len(b))
	for _, sheet := range b {
		if seen[sheet.Name] {
			return fmt.Errorf("duplicate sheet name %q in export batch", sheet.Name)
		}
		seen[sheet.Name] = true
	}
	return nil
}

type Status string

const (
	StatusSuccess Status = "success"
	StatusFailed  Status = "failed"
)

// DeliveryResult is the outcome of exporting a single sheet.
type DeliveryResult struct {
	Sheet    string
	Status   Status
	Attempts int
	Err      error
}

// RunReport aggregates the per-sheet outcomes of one export run, in the
// batch's original order.
type RunReport struct {
	ID         uuid.UUID
	StartedAt  time.Time
	FinishedAt time.Time
	Results    []DeliveryResult
}

// Failed returns the number of sheets that were not delivered.
func (r RunReport) Failed() int {
	n := 0
	for _, result := range r.Results {
		if result.Status == StatusFailed {
			n++
		}
	}
	return n
}
