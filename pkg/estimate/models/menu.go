package models

// MenuType tells guest menus apart from staff menus. It is a property of
// the sheet being parsed, not of individual rows.
type MenuType string

const (
	// MenuGuest is the guest menu.
	MenuGuest MenuType = "guest"
	// MenuStaff is the staff menu.
	MenuStaff MenuType = "staff"
)

// MenuItem is one dish row from a menu sheet.
type MenuItem struct {
	// MenuType is guest or staff.
	MenuType MenuType `json:"menu_type"`
	// Position is the dish name.
	Position string `json:"position"`
	// Unit is the unit-of-measure text, if any.
	Unit string `json:"unit,omitempty"`
	// Qty is the quantity cell value.
	Qty float64 `json:"qty"`
	// Price is the unit price cell value.
	Price float64 `json:"price"`
	// TotalAmount is the explicit total when present, otherwise Qty * Price.
	TotalAmount float64 `json:"total_amount"`
	// WeightG is the per-unit weight in grams.
	WeightG float64 `json:"weight_g"`
	// TotalWeightG is the explicit total weight when present, otherwise
	// WeightG * Qty.
	TotalWeightG float64 `json:"total_weight_g"`
	// Note is free-text per-row commentary, if any.
	Note string `json:"note,omitempty"`
}
