// Package parser implements the per-template extraction heuristics over
// in-memory sheet grids. All functions are total over arbitrary cell
// content: malformed input degrades to zero values instead of erroring.
package parser

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/lpfevents/catering-mvp/pkg/estimate/models"
)

// Number coerces a raw cell value to a finite float64. Booleans map to
// 1/0, strings are parsed after stripping whitespace and converting a
// decimal comma, and anything unparseable (including NaN and infinities)
// yields 0.
func Number(v models.Cell) float64 {
	switch x := v.(type) {
	case nil:
		return 0
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return 0
		}
		return x
	case float32:
		return Number(float64(x))
	case int:
		return float64(x)
	case int64:
		return float64(x)
	case bool:
		if x {
			return 1
		}
		return 0
	case string:
		return parseNumeric(x)
	default:
		return parseNumeric(Text(v))
	}
}

// parseNumeric parses spreadsheet number text: whitespace (including
// thousands separators) is dropped and the first comma becomes a dot, so
// "1 234,50" parses as 1234.5.
func parseNumeric(s string) float64 {
	var b strings.Builder
	for _, r := range s {
		if !unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	cleaned := strings.Replace(b.String(), ",", ".", 1)
	if cleaned == "" {
		return 0
	}
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// Text coerces a raw cell value to trimmed text. Nil yields "".
func Text(v models.Cell) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case bool:
		return strconv.FormatBool(x)
	case time.Time:
		return x.Format("2006-01-02 15:04:05")
	default:
		return strings.TrimSpace(fmt.Sprint(x))
	}
}

// ClockLabel renders a time-ish cell as display text: a date value's
// wall-clock time, a numeric Excel day fraction as HH:MM, anything else
// as its raw text.
func ClockLabel(v models.Cell) string {
	switch x := v.(type) {
	case time.Time:
		return x.Format("15:04")
	case float64:
		return fractionClock(x)
	case float32:
		return fractionClock(float64(x))
	case int:
		return fractionClock(float64(x))
	case int64:
		return fractionClock(float64(x))
	default:
		return Text(v)
	}
}

func fractionClock(f float64) string {
	total := int(math.Round(f * 24 * 60))
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
