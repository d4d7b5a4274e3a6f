package estimate

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestOpenTypedCells(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Drinks"
	if _, err := f.NewSheet(sheet); err != nil {
		t.Fatalf("NewSheet failed: %v", err)
	}
	f.SetCellValue(sheet, "A1", "#")
	f.SetCellValue(sheet, "B1", "Position")
	f.SetCellValue(sheet, "A2", 1)
	f.SetCellValue(sheet, "B2", "Wine")
	f.SetCellValue(sheet, "D2", 20)
	f.SetCellValue(sheet, "E2", 8.5)

	tmpFile := filepath.Join(t.TempDir(), "estimate.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	wb, err := Open(tmpFile)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	g := wb.Sheet(sheet)
	if len(g) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(g))
	}
	if g[0][1] != "Position" {
		t.Errorf("Expected \"Position\", got %v", g[0][1])
	}
	if g[1][0] != int64(1) {
		t.Errorf("Expected int64(1), got %v (type: %T)", g[1][0], g[1][0])
	}
	if g[1][4] != 8.5 {
		t.Errorf("Expected 8.5, got %v", g[1][4])
	}

	if got := wb.Sheet("No such sheet"); len(got) != 0 {
		t.Errorf("Expected empty grid for missing sheet, got %d rows", len(got))
	}

	res, err := Extract(tmpFile)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if len(res.BudgetItems) != 1 {
		t.Fatalf("Expected 1 budget item, got %d", len(res.BudgetItems))
	}
	if res.BudgetItems[0].TotalAmount != 170 {
		t.Errorf("Expected total 170, got %v", res.BudgetItems[0].TotalAmount)
	}
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.xlsx"))
	if !errors.Is(err, ErrFileNotFound) {
		t.Errorf("Expected ErrFileNotFound, got %v", err)
	}
}

func TestOpenInvalidFormat(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "not-a-workbook.xlsx")
	if err := os.WriteFile(tmpFile, []byte("plain text"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	_, err := Open(tmpFile)
	if !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("Expected ErrInvalidFormat, got %v", err)
	}
}
