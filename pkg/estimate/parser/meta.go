package parser

import (
	"math"
	"strings"

	"github.com/lpfevents/catering-mvp/pkg/estimate/models"
)

// metaScanRows bounds the fixed-position metadata scan; event-level
// fields always sit in the first rows of the Main sheet.
const metaScanRows = 15

// ParseMeta scrapes event-level fields from the top of the Main sheet:
// the second row holds the event name, "date:"/"data:" and "location:"
// prefixed rows hold date and location, and a "number of people" row
// carries the guest count in its third column. Every field is optional.
func ParseMeta(g models.Grid) models.EventMeta {
	var meta models.EventMeta
	limit := len(g)
	if limit > metaScanRows {
		limit = metaScanRows
	}
	for i := 0; i < limit; i++ {
		a := text(g[i], 0)
		if a == "" {
			continue
		}
		if i == 1 {
			meta.Name = a
		}
		low := strings.ToLower(a)
		switch {
		case strings.HasPrefix(low, "data:"):
			meta.Date = strings.TrimSpace(a[len("data:"):])
		case strings.HasPrefix(low, "date:"):
			meta.Date = strings.TrimSpace(a[len("date:"):])
		case strings.HasPrefix(low, "location:"):
			meta.Location = strings.TrimSpace(a[len("location:"):])
		}
		if strings.Contains(low, "number of people") {
			if guests := num(g[i], 2); guests != 0 {
				meta.Guests = int(math.Round(guests))
			}
		}
	}
	return meta
}
