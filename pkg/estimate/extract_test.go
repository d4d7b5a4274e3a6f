package estimate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lpfevents/catering-mvp/pkg/estimate/models"
)

func testWorkbook() *models.GridWorkbook {
	budgetHeader := []models.Cell{"#", "Position", "Unit", "Quantity", "Price", "Total"}
	return &models.GridWorkbook{
		Names: []string{
			"Main", "Decor", "Drinks", "Меню", "Меню для стаффа",
			"Rider - Band", "Тайминг 05.09", "Scratch",
		},
		Sheets: map[string]models.Grid{
			"Main": {
				{"Event Estimate"},
				{"Corporate Night"},
				{"Date: 2025-09-05"},
				{"Number of people:", nil, 80.0},
				budgetHeader,
				{int64(1), "Tent", "pcs", 1.0, 500.0, nil},
			},
			"Decor": {
				{"Статья расходов", "Цена", "Кол-во", "Сумма", "Оплачено", "Остаток"},
				{nil, "руб", "шт", "руб", "руб", "руб"},
				{"Flowers", 10.0, 2.0, nil, 15.0, 5.0},
			},
			"Drinks": {
				budgetHeader,
				{int64(1), "Wine", "btl", 20.0, 8.0, nil},
			},
			"Меню": {
				{"#", "Позиция", "Ед.", "Кол-во", "Цена", "Сумма", "Комментарий", "Вес, г", "Общий вес, г"},
				{int64(1), "Салат", "порц", 80.0, 5.0, nil, nil, 120.0, nil},
			},
			"Меню для стаффа": {
				{"#", "Позиция", "Ед.", "Кол-во", "Цена", "Сумма", "Комментарий", "Вес, г", "Общий вес, г"},
				{int64(1), "Суп", "порц", 10.0, 3.0, nil, nil, 300.0, nil},
			},
			"Rider - Band": {
				{"Must provide 2x monitors"},
				{"Stage size 6x4m"},
			},
			"Тайминг 05.09": {
				{"05 Сентября"},
				{nil, "Валентин:"},
				{nil, 0.75, "Саундчек"},
			},
			"Scratch": {
				{"random", "notes", 1.0},
			},
		},
	}
}

func TestParse(t *testing.T) {
	res := Parse(testWorkbook())

	assert.Equal(t, "Corporate Night", res.Meta.Name)
	assert.Equal(t, "2025-09-05", res.Meta.Date)
	assert.Equal(t, 80, res.Meta.Guests)

	require.Len(t, res.BudgetItems, 3)
	assert.Equal(t, "Main", res.BudgetItems[0].Category)
	assert.Equal(t, "Decor", res.BudgetItems[1].Category)
	assert.Equal(t, "Drinks", res.BudgetItems[2].Category)

	require.Len(t, res.Payments, 2)
	assert.Equal(t, "Decor::Flowers", res.Payments[0].BudgetKey)

	require.Len(t, res.MenuItems, 2)
	assert.Equal(t, models.MenuGuest, res.MenuItems[0].MenuType)
	assert.Equal(t, models.MenuStaff, res.MenuItems[1].MenuType)

	require.Len(t, res.Tasks, 1)
	assert.Equal(t, "Саундчек", res.Tasks[0].Title)
	assert.Equal(t, "Валентин", res.Tasks[0].AssigneeName)

	require.Len(t, res.RiderDocs, 1)
	assert.Equal(t, "Rider - Band", res.RiderDocs[0].Title)
	assert.Len(t, res.RiderDocs[0].Items, 2)
}

func TestParseIgnoresUnmatchedSheets(t *testing.T) {
	wb := testWorkbook()
	res := Parse(wb)

	wb.Names = wb.Names[:len(wb.Names)-1]
	delete(wb.Sheets, "Scratch")
	assert.Equal(t, res, Parse(wb))
}

func TestParseIsIdempotent(t *testing.T) {
	wb := testWorkbook()
	assert.Equal(t, Parse(wb), Parse(wb))
}

func TestParseEmptyWorkbook(t *testing.T) {
	res := Parse(&models.GridWorkbook{})
	assert.Equal(t, models.EventMeta{}, res.Meta)
	assert.Empty(t, res.BudgetItems)
	assert.Empty(t, res.Payments)
	assert.Empty(t, res.MenuItems)
	assert.Empty(t, res.Tasks)
	assert.Empty(t, res.RiderDocs)
}

func TestParseMissingHeader(t *testing.T) {
	// a present sheet without its header marker contributes nothing
	wb := &models.GridWorkbook{
		Names: []string{"Drinks"},
		Sheets: map[string]models.Grid{
			"Drinks": {{"no", "header", "here"}},
		},
	}
	assert.Empty(t, Parse(wb).BudgetItems)
}

func TestRouteOrderPrefersStaffMenu(t *testing.T) {
	wb := &models.GridWorkbook{
		Names: []string{"меню стафф"},
		Sheets: map[string]models.Grid{
			"меню стафф": {
				{"#", "Позиция", "Ед.", "Кол-во", "Цена"},
				{int64(1), "Суп", "порц", 10.0, 3.0},
			},
		},
	}
	res := Parse(wb)
	require.Len(t, res.MenuItems, 1)
	assert.Equal(t, models.MenuStaff, res.MenuItems[0].MenuType)
}
