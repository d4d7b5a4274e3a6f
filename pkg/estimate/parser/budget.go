package parser

import (
	"strings"

	"github.com/lpfevents/catering-mvp/pkg/estimate/models"
)

// ParseBudgetTable extracts budget lines from a budget-style sheet laid
// out as index, position, unit, quantity, price, total. The header is
// located by a "Position" label. Rows with a label but all-zero numbers
// are section markers: they update the running category and emit nothing.
// An explicit total cell wins over quantity * price.
func ParseBudgetTable(g models.Grid, defaultCategory string) []models.BudgetItem {
	header := FindHeaderRow(g, "Position")
	if header < 0 {
		return nil
	}

	var out []models.BudgetItem
	category := defaultCategory
	for i := header + 1; i < len(g); i++ {
		row := g[i]
		idx := text(row, 0)
		position := text(row, 1)
		unit := text(row, 2)
		qty := num(row, 3)
		price := num(row, 4)
		total := num(row, 5)
		if total == 0 {
			total = qty * price
		}

		if position == "" && idx == "" && qty == 0 && price == 0 && total == 0 {
			if trailingBlankRun(g, i, budgetRowBlank) {
				break
			}
			continue
		}

		if idx == "" && position != "" && qty == 0 && price == 0 && total == 0 {
			if label := strings.TrimSpace(strings.TrimSuffix(position, ":")); label != "" {
				category = label
			}
			continue
		}

		if position == "" {
			continue
		}

		out = append(out, models.BudgetItem{
			Category:    category,
			Title:       position,
			Unit:        unit,
			Qty:         qty,
			Price:       price,
			TotalAmount: total,
		})
	}
	return out
}

func budgetRowBlank(row []models.Cell) bool {
	return text(row, 0) == "" && text(row, 1) == "" && text(row, 2) == "" &&
		num(row, 3) == 0 && num(row, 4) == 0 && num(row, 5) == 0
}
