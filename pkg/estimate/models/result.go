package models

// ParsedWorkbook is the full extraction result for one workbook: event
// metadata plus flat collections concatenated across all matched sheets.
// It is produced in a single pass and not mutated afterwards; the
// persistence collaborator assigns identities and resolves payment keys.
type ParsedWorkbook struct {
	// Meta is the event-level metadata from the Main sheet.
	Meta EventMeta `json:"meta"`
	// BudgetItems are budget lines from all budget-style sheets.
	BudgetItems []BudgetItem `json:"budget_items"`
	// Payments are provisional payments keyed to budget items.
	Payments []Payment `json:"payments"`
	// MenuItems are dishes from guest and staff menu sheets.
	MenuItems []MenuItem `json:"menu_items"`
	// Tasks are scheduled actions from timing sheets.
	Tasks []Task `json:"tasks"`
	// RiderDocs are technical-requirement sheets.
	RiderDocs []RiderDocument `json:"rider_docs"`
}
