package models

// RiderSeverity classifies rider lines by how binding they read.
type RiderSeverity string

const (
	// RiderNormal is an ordinary rider line.
	RiderNormal RiderSeverity = "normal"
	// RiderCritical marks lines using mandatory/required language.
	RiderCritical RiderSeverity = "critical"
)

// RiderItem is one line of a rider document.
type RiderItem struct {
	// Section is the grouping label. The current heuristic does not
	// detect sections and always uses "General".
	Section string `json:"section"`
	// Text is the line content.
	Text string `json:"text"`
	// Severity is normal or critical.
	Severity RiderSeverity `json:"severity"`
}

// RiderDocument is a technical-requirements sheet treated as prose.
type RiderDocument struct {
	// Title is the sheet name.
	Title string `json:"title"`
	// RawText is every non-empty row joined into lines, newline-separated.
	RawText string `json:"raw_text"`
	// Items are the classified lines, in sheet order.
	Items []RiderItem `json:"items"`
}
