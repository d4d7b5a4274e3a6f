package models

// BudgetItem is one budget line recovered from a budget-style table.
type BudgetItem struct {
	// Category is propagated from the most recent section marker row.
	Category string `json:"category"`
	// Title is the line label; always non-empty.
	Title string `json:"title"`
	// Unit is the unit-of-measure text, if the sheet carries one.
	Unit string `json:"unit,omitempty"`
	// Qty is the quantity cell value.
	Qty float64 `json:"qty"`
	// Price is the unit price cell value.
	Price float64 `json:"price"`
	// TotalAmount is the explicit total cell when present, otherwise
	// Qty * Price.
	TotalAmount float64 `json:"total_amount"`
}

// PaymentStatus distinguishes money already paid from money still owed.
type PaymentStatus string

const (
	// PaymentPlanned marks an amount still to be paid.
	PaymentPlanned PaymentStatus = "planned"
	// PaymentPaid marks an amount already paid.
	PaymentPaid PaymentStatus = "paid"
)

// Payment is a provisional payment record. At parse time the owning
// budget item has no durable identity yet, so the payment carries only a
// composite budget key; the persistence layer resolves the key later and
// drops payments whose key matches nothing.
type Payment struct {
	// BudgetKey links the payment to its budget item, see BudgetKey.
	BudgetKey string `json:"budget_key"`
	// Amount is the payment amount.
	Amount float64 `json:"amount"`
	// Status is planned or paid.
	Status PaymentStatus `json:"status"`
	// DueDate is free-text due date, if any.
	DueDate string `json:"due_date,omitempty"`
}

// BudgetKey builds the composite key associating a payment with a budget
// item. The "::" separator is not expected to occur in titles, which come
// from single spreadsheet cells.
func BudgetKey(category, title string) string {
	return category + "::" + title
}
