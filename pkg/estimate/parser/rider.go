package parser

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/lpfevents/catering-mvp/pkg/estimate/models"
)

// criticalPat flags rider lines written in mandatory/required language.
var criticalPat = regexp.MustCompile(`(?i)must|required|обязательно`)

// maxRiderItems caps the item list per document; the raw text is always
// kept in full.
const maxRiderItems = 400

// ParseRider flattens a rider sheet into prose: each row's non-empty
// cells join into one line, lines join into the document's raw text.
// Lines longer than two characters become items, classified critical
// when they use mandatory language.
func ParseRider(sheetName string, g models.Grid) models.RiderDocument {
	var lines []string
	for _, row := range g {
		var parts []string
		for _, c := range row {
			if s := Text(c); s != "" {
				parts = append(parts, s)
			}
		}
		if line := strings.TrimSpace(strings.Join(parts, " ")); line != "" {
			lines = append(lines, line)
		}
	}

	doc := models.RiderDocument{
		Title:   sheetName,
		RawText: strings.Join(lines, "\n"),
	}
	for _, line := range lines {
		if utf8.RuneCountInString(line) <= 2 {
			continue
		}
		if len(doc.Items) >= maxRiderItems {
			break
		}
		severity := models.RiderNormal
		if criticalPat.MatchString(line) {
			severity = models.RiderCritical
		}
		doc.Items = append(doc.Items, models.RiderItem{Section: "General", Text: line, Severity: severity})
	}
	return doc
}
