package models

import (
	"errors"
	"reflect"
	"testing"
)

func TestBatchValidateRejectsDuplicateNames(t *testing.T) {
	batch := ExportBatch{
		{Name: "Dashboard"},
		{Name: "Income Statement"},
		{Name: "Dashboard"},
	}

	if err := batch.Validate(); err == nil {
		t.Error("expected an error for duplicate sheet names")
	}

	unique := ExportBatch{{Name: "Dashboard"}, {Name: "Income Statement"}}
	if err := unique.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestSheetValuesHeaderFirst(t *testing.T) {
	sheet := Sheet{
		Name:   "Revenue Summary",
		Header: []string{"Item", "Y1"},
		Rows: [][]any{
			{"Total Revenue", 1250.0},
			{"Total Expenses", nil},
		},
	}

	got := sheet.Values()
	expected := [][]any{
		{"Item", "Y1"},
		{"Total Revenue", 1250.0},
		{"Total Expenses", nil},
	}

	if !reflect.DeepEqual(got, expected) {
		t.Errorf("got %v, expected %v", got, expected)
	}
}

func TestRunReportFailed(t *testing.T) {
	report := RunReport{
		Results: []DeliveryResult{
			{Sheet: "A", Status: StatusSuccess, Attempts: 1},
			{Sheet: "B", Status: StatusFailed, Attempts: 5, Err: errors.New("rate limited")},
			{Sheet: "C", Status: StatusFailed, Attempts: 1, Err: errors.New("permission denied")},
		},
	}

	if got := report.Failed(); got != 2 {
		t.Errorf("Failed() = %d, expected 2", got)
	}
}
