// Package snapshot writes a local .xlsx copy of an export batch, one
// worksheet per sheet. The workbook is an operator-requested artifact
// produced before anything is sent to the destination.
package snapshot

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tealeg/xlsx/v3"

	"github.com/matmaxwellness/finmodel2googlesheet/internal/models"
)

// Write saves the batch as a workbook at path, creating parent
// directories as needed. An existing file at path is replaced.
func Write(batch models.ExportBatch, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create snapshot directory: %w", err)
		}
	}

	workbook := xlsx.NewFile()
	defer func() {
		for _, sheet := range workbook.Sheets {
			sheet.Close()
		}
	}()

	for _, sheet := range batch {
		ws, err := workbook.AddSheet(sheet.Name)
		if err != nil {
			return fmt.Errorf("failed to add worksheet %q: %w", sheet.Name, err)
		}

		for _, row := range sheet.Values() {
			wr := ws.AddRow()
			for _, cell := range row {
				setCell(wr.AddCell(), cell)
			}
		}
	}

	if err := workbook.Save(path); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}

	return nil
}

func setCell(cell *xlsx.Cell, value any) {
	switch v := value.(type) {
	case nil:
		cell.SetString("")
	case string:
		cell.SetString(v)
	case float64:
		cell.SetFloat(v)
	case int:
		cell.SetInt(v)
	default:
		cell.SetString(fmt.Sprint(v))
	}
}
