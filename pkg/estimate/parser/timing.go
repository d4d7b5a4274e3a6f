package parser

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/lpfevents/catering-mvp/pkg/estimate/models"
)

var (
	// dayLabelPat matches running date headings like "05 Сентября".
	dayLabelPat = regexp.MustCompile(`\d{1,2}\s+\p{L}+`)
	// namePhonePat splits "Валентин - 555 123 4567" into name and phone:
	// optional name, optional separator, trailing run of 7+ digits with
	// spaces allowed inside.
	namePhonePat = regexp.MustCompile(`^(.*?)(?:\s*[-:]\s*)?(\+?\d[\d\s]{6,})$`)
	// bareNamePat matches a bare assignee label like "Валентин:".
	bareNamePat = regexp.MustCompile(`^(.*?):$`)
)

// timingState is the cross-row memory of the timing scan. Date and
// assignee act as running section headings in these sheets, so they
// persist until superseded.
type timingState struct {
	dateLabel     string
	assigneeName  string
	assigneePhone string
}

// next applies one row to the state and returns the task the row emits,
// if any. Transitions are tried in priority order; most rows only update
// state or contribute nothing.
func (s timingState) next(row []models.Cell) (timingState, *models.Task) {
	colA := text(row, 0)
	rawB := at(row, 1)
	colB := Text(rawB)
	colC := text(row, 2)
	colD := text(row, 3)

	// date heading like "05 Сентября"
	if colA != "" && dayLabelPat.MatchString(colA) && utf8.RuneCountInString(colA) < 25 {
		s.dateLabel = colA
		return s, nil
	}

	// assignee heading like "Валентин:" in the second column
	if colB != "" && strings.HasSuffix(colB, ":") && colC == "" {
		s.assigneeName, s.assigneePhone = SplitNamePhone(colB)
		return s, nil
	}

	// standalone contact line (phone in B, name in C), common near the
	// top of the sheet; not a task and not an assignee change
	if colA == "" && colB != "" && colC != "" && colD == "" && digitCount(colB) >= 7 {
		return s, nil
	}

	// inline assignee like "Лона - 5551234567" in the first column
	if colA != "" && containsDigit(colA) && !dayLabelPat.MatchString(colA) {
		s.assigneeName, s.assigneePhone = SplitNamePhone(colA)
	}

	if colC == "" {
		return s, nil
	}

	due := s.dateLabel
	if label := ClockLabel(rawB); label != "" {
		if due != "" {
			due += " "
		}
		due += label
	}
	return s, &models.Task{
		Title:         colC,
		Description:   colD,
		DueAt:         strings.TrimSpace(due),
		AssigneeName:  s.assigneeName,
		AssigneePhone: s.assigneePhone,
	}
}

// ParseTiming extracts tasks from a timing sheet. The sheet has no fixed
// header: date labels and assignee labels appear as their own rows and
// apply to everything below until replaced, so the scan folds an explicit
// state value over the rows.
func ParseTiming(g models.Grid) []models.Task {
	var st timingState
	var tasks []models.Task
	for _, row := range g {
		var t *models.Task
		st, t = st.next(row)
		if t != nil {
			tasks = append(tasks, *t)
		}
	}
	return tasks
}

// SplitNamePhone splits free text into a name and a phone number. It
// first looks for a trailing 7+ digit run (spaces inside allowed), then
// for a bare "Name:" label; failing both, the whole text is the name.
// Empty results mean the field is absent.
func SplitNamePhone(s string) (name, phone string) {
	cleaned := strings.Join(strings.Fields(s), " ")
	if m := namePhonePat.FindStringSubmatch(cleaned); m != nil {
		name = strings.TrimSpace(strings.TrimSuffix(m[1], ":"))
		phone = strings.ReplaceAll(m[2], " ", "")
		return name, phone
	}
	if m := bareNamePat.FindStringSubmatch(cleaned); m != nil {
		return strings.TrimSpace(m[1]), ""
	}
	return cleaned, ""
}

func containsDigit(s string) bool {
	return strings.ContainsFunc(s, unicode.IsDigit)
}

func digitCount(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsDigit(r) {
			n++
		}
	}
	return n
}
