package estimate

import (
	"strings"

	"github.com/lpfevents/catering-mvp/pkg/estimate/models"
	"github.com/lpfevents/catering-mvp/pkg/estimate/parser"
)

// sheetHandler folds one routed sheet's output into the result bundle.
type sheetHandler func(res *models.ParsedWorkbook, name string, g models.Grid)

// route pairs a sheet-name matcher with its handler. Routes are checked
// in order, the first match wins, and sheets matching nothing are
// ignored silently.
type route struct {
	match   func(name string) bool
	handler sheetHandler
}

// routes is the dispatch table for the known template sheets. Exact
// names cover the English budget sheets; the menu, rider and timing
// sheets are named inconsistently across files and match by pattern.
var routes = []route{
	{exact(metaSheetName), budgetSheet("Main")},
	{exact("Decor"), decorSheet},
	{exact("Drinks"), budgetSheet("Drinks")},
	{exact("Staff and Staff Food"), budgetSheet("Staff Food")},
	{exact("Staff from venue"), budgetSheet("Venue Staff")},
	{allOf(containsFold("меню"), containsFold("стафф")), menuSheet(models.MenuStaff)},
	{equalsFold("меню"), menuSheet(models.MenuGuest)},
	{anyOf(prefixFold("rider"), containsFold("райдер")), riderSheet},
	{containsFold("тайминг"), timingSheet},
}

func exact(want string) func(string) bool {
	return func(name string) bool { return name == want }
}

func equalsFold(want string) func(string) bool {
	return func(name string) bool { return strings.EqualFold(name, want) }
}

func containsFold(sub string) func(string) bool {
	return func(name string) bool { return strings.Contains(strings.ToLower(name), sub) }
}

func prefixFold(prefix string) func(string) bool {
	return func(name string) bool { return strings.HasPrefix(strings.ToLower(name), prefix) }
}

func allOf(ms ...func(string) bool) func(string) bool {
	return func(name string) bool {
		for _, m := range ms {
			if !m(name) {
				return false
			}
		}
		return true
	}
}

func anyOf(ms ...func(string) bool) func(string) bool {
	return func(name string) bool {
		for _, m := range ms {
			if m(name) {
				return true
			}
		}
		return false
	}
}

func budgetSheet(category string) sheetHandler {
	return func(res *models.ParsedWorkbook, _ string, g models.Grid) {
		res.BudgetItems = append(res.BudgetItems, parser.ParseBudgetTable(g, category)...)
	}
}

func decorSheet(res *models.ParsedWorkbook, _ string, g models.Grid) {
	items, payments := parser.ParseDecor(g)
	res.BudgetItems = append(res.BudgetItems, items...)
	res.Payments = append(res.Payments, payments...)
}

func menuSheet(t models.MenuType) sheetHandler {
	return func(res *models.ParsedWorkbook, _ string, g models.Grid) {
		res.MenuItems = append(res.MenuItems, parser.ParseMenu(g, t)...)
	}
}

func riderSheet(res *models.ParsedWorkbook, name string, g models.Grid) {
	res.RiderDocs = append(res.RiderDocs, parser.ParseRider(name, g))
}

func timingSheet(res *models.ParsedWorkbook, _ string, g models.Grid) {
	res.Tasks = append(res.Tasks, parser.ParseTiming(g)...)
}
