package purchase

import (
	"github.com/xuri/excelize/v2"
)

// exportSheet is the sheet name buyers expect in the exported workbook.
const exportSheet = "Закупка"

var exportHeader = []any{
	"Статус", "Позиция", "Поставщик", "Ед.",
	"Нужно (точно)", "Нужно (округл.)",
	"Упаковок", "Упаковка", "Размер упаковки", "Комментарий",
}

// ExportXLSX writes the purchase list as a single-sheet .xlsx file.
func ExportXLSX(lines []Line, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(exportSheet, "A1", &exportHeader); err != nil {
		return err
	}
	for i, l := range lines {
		status := "НУЖНО"
		if l.Bought {
			status = "КУПЛЕНО"
		}
		var packs any = ""
		if l.Packs > 0 {
			packs = l.Packs
		}
		var packSize any = ""
		if l.PackSize > 0 {
			packSize = l.PackSize
		}
		row := []any{
			status, l.ItemName, l.Supplier, string(l.Uom),
			l.QtyExact, l.QtyRounded,
			packs, l.PackUom, packSize, l.Comment,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return err
		}
	}
	return f.SaveAs(path)
}
