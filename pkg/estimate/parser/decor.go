package parser

import (
	"strings"

	"github.com/lpfevents/catering-mvp/pkg/estimate/models"
)

// ParseDecor extracts budget lines and provisional payments from the
// decor sheet, whose columns run title, price, quantity, total, paid,
// remaining (price before quantity, unlike the budget-style layout). The
// header row has "Статья расходов" in the first column and is followed
// by a units subheader, so data starts two rows below it. A positive
// paid column yields a paid payment, a positive remaining column a
// planned one, both keyed by category::title.
func ParseDecor(g models.Grid) ([]models.BudgetItem, []models.Payment) {
	header := -1
	for i, row := range g {
		if strings.Contains(strings.ToLower(text(row, 0)), "статья") {
			header = i
			break
		}
	}
	if header < 0 {
		return nil, nil
	}

	var items []models.BudgetItem
	var payments []models.Payment
	category := "Decor"
	for i := header + 2; i < len(g); i++ {
		row := g[i]
		title := text(row, 0)
		price := num(row, 1)
		qty := num(row, 2)
		total := num(row, 3)
		if total == 0 {
			total = qty * price
		}
		paid := num(row, 4)
		remain := num(row, 5)

		if title == "" && price == 0 && qty == 0 && total == 0 && paid == 0 && remain == 0 {
			if trailingBlankRun(g, i, decorRowBlank) {
				break
			}
			continue
		}

		if title != "" && price == 0 && qty == 0 && total == 0 {
			category = "Decor / " + title
			continue
		}
		if title == "" {
			continue
		}

		key := models.BudgetKey(category, title)
		items = append(items, models.BudgetItem{
			Category:    category,
			Title:       title,
			Qty:         qty,
			Price:       price,
			TotalAmount: total,
		})
		if paid > 0 {
			payments = append(payments, models.Payment{BudgetKey: key, Amount: paid, Status: models.PaymentPaid})
		}
		if remain > 0 {
			payments = append(payments, models.Payment{BudgetKey: key, Amount: remain, Status: models.PaymentPlanned})
		}
	}
	return items, payments
}

func decorRowBlank(row []models.Cell) bool {
	return text(row, 0) == "" && num(row, 1) == 0 && num(row, 2) == 0 && num(row, 3) == 0
}
