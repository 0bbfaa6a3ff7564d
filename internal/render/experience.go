package render

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"github.com/Zachkp/folio/internal/portfolio"
)

// dateLayouts are tried before the lenient parser so common month-first and
// month-only entries resolve the same way every time.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-1-2",
	"2006-01",
	"2006/01/02",
	"1/2/2006",
	"01/2006",
	"1/2006",
	"January 2006",
	"Jan 2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"January 2 2006",
	"Jan 2 2006",
	"2006",
}

// septMonth matches the four-letter September abbreviation Go does not know.
var septMonth = regexp.MustCompile(`(?i)\bsept\b\.?`)

// Summary is the headline experience metric, e.g. "2+" / "Years Exp".
type Summary struct {
	Value string
	Label string
}

// ExperienceEntry is one timeline item.
type ExperienceEntry struct {
	DateRange   string
	Role        string
	Company     string
	Description string
}

// ExperienceView is the timeline and its summary. Summary is nil when there
// is nothing to summarize.
type ExperienceView struct {
	Summary *Summary
	Entries []ExperienceEntry
	OOB     bool
}

// Empty reports whether only the placeholder is rendered.
func (v ExperienceView) Empty() bool {
	return len(v.Entries) == 0
}

// Experience renders the timeline in input order and derives the summary
// from the earliest parseable start date relative to now.
func Experience(experiences []portfolio.Experience, now time.Time) ExperienceView {
	var v ExperienceView
	if len(experiences) == 0 {
		return v
	}

	v.Summary = summarize(experiences, now)
	v.Entries = make([]ExperienceEntry, 0, len(experiences))
	for _, exp := range experiences {
		end := exp.EndDate
		if end == "" {
			end = "Present"
		}
		v.Entries = append(v.Entries, ExperienceEntry{
			DateRange:   exp.StartDate + " - " + end,
			Role:        exp.Role,
			Company:     exp.CompanyName,
			Description: exp.Description,
		})
	}
	return v
}

func summarize(experiences []portfolio.Experience, now time.Time) *Summary {
	earliest, ok := EarliestStart(experiences)
	if !ok {
		return &Summary{Value: strconv.Itoa(len(experiences)), Label: LabelPositions}
	}

	months := MonthsBetween(earliest, now)
	if months < 12 {
		return &Summary{Value: strconv.Itoa(max(1, months)) + " Months", Label: LabelMonths}
	}
	return &Summary{Value: strconv.Itoa(months/12) + "+", Label: LabelYears}
}

// EarliestStart returns the earliest parseable start date. Unparseable and
// missing dates are ignored.
func EarliestStart(experiences []portfolio.Experience) (time.Time, bool) {
	var earliest time.Time
	found := false
	for _, exp := range experiences {
		t, ok := ParseDate(exp.StartDate)
		if !ok {
			continue
		}
		if !found || t.Before(earliest) {
			earliest = t
			found = true
		}
	}
	return earliest, found
}

// ParseDate parses a free-form date entered for an experience. Known layouts
// are tried first, then dateparse's format detection.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	s = septMonth.ReplaceAllString(s, "Sep")
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	if t, err := dateparse.ParseIn(s, time.UTC); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// MonthsBetween counts calendar months from from to to, ignoring the day.
func MonthsBetween(from, to time.Time) int {
	return (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
}
