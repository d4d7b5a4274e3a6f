package parser

import "github.com/lpfevents/catering-mvp/pkg/estimate/models"

// ParseMenu extracts dish rows from a menu sheet: index, position, unit,
// quantity, price, total, note, per-unit weight, total weight. The header
// is located by a "Позиция" label. Total weight defaults to weight *
// quantity when its column is blank. The menu type comes from the caller,
// not from row content.
func ParseMenu(g models.Grid, menuType models.MenuType) []models.MenuItem {
	header := FindHeaderRow(g, "Позиция")
	if header < 0 {
		return nil
	}

	var out []models.MenuItem
	for i := header + 1; i < len(g); i++ {
		row := g[i]
		position := text(row, 1)
		unit := text(row, 2)
		qty := num(row, 3)
		price := num(row, 4)
		total := num(row, 5)
		if total == 0 {
			total = qty * price
		}
		note := text(row, 6)
		weight := num(row, 7)
		totalWeight := num(row, 8)
		if totalWeight == 0 {
			totalWeight = weight * qty
		}

		if position == "" && qty == 0 && price == 0 && total == 0 && note == "" {
			if trailingBlankRun(g, i, menuRowBlank) {
				break
			}
			continue
		}
		if position == "" {
			continue
		}

		out = append(out, models.MenuItem{
			MenuType:     menuType,
			Position:     position,
			Unit:         unit,
			Qty:          qty,
			Price:        price,
			TotalAmount:  total,
			WeightG:      weight,
			TotalWeightG: totalWeight,
			Note:         note,
		})
	}
	return out
}

func menuRowBlank(row []models.Cell) bool {
	return text(row, 1) == "" && num(row, 3) == 0 && num(row, 4) == 0
}
