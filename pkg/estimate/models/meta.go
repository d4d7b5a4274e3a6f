package models

// EventMeta holds event-level fields scraped from the Main sheet. Every
// field is optional; a zero value means the field was not found, never
// that parsing failed.
type EventMeta struct {
	// Name is the event name.
	Name string `json:"name,omitempty"`
	// Date is the event date as written in the sheet (free text).
	Date string `json:"date,omitempty"`
	// Location is the venue text.
	Location string `json:"location,omitempty"`
	// Guests is the guest count.
	Guests int `json:"guests,omitempty"`
}
