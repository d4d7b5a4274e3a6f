package models

// Task is one scheduled action from a timing sheet.
type Task struct {
	// Title is the action text; always non-empty.
	Title string `json:"title"`
	// Description is additional free text, if any.
	Description string `json:"description,omitempty"`
	// DueAt is display text composed from the running date label and the
	// row's time label (e.g. "05 Сентября 18:30"). It is not a normalized
	// timestamp: the source templates are inconsistent about date format.
	DueAt string `json:"due_at,omitempty"`
	// AssigneeName is the running assignee at the time of the row.
	AssigneeName string `json:"assignee_name,omitempty"`
	// AssigneePhone is the running assignee phone, digits only.
	AssigneePhone string `json:"assignee_phone,omitempty"`
}
