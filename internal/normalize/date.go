package normalize

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

const isoDate = "2006-01-02"

// absoluteLayouts are tried in order. 01/02/2006 before 02/01/2006 means a
// string valid under both reads as MM/DD; that preference is policy, not
// inference (see DESIGN.md).
var absoluteLayouts = []string{
	isoDate,
	"01/02/2006",
	"02/01/2006",
}

var relativeRe = regexp.MustCompile(`^(\d+)\s+(minute|hour|day|week|month|year)s?\s+ago$`)

// Date converts a raw posting-date string into ISO YYYY-MM-DD. Relative
// phrases resolve against ref. The second return is false when nothing
// matched; no error is ever produced for bad input.
func Date(raw string, ref time.Time) (string, bool) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return "", false
	}

	for _, layout := range absoluteLayouts {
		if d, err := time.Parse(layout, text); err == nil {
			return d.Format(isoDate), true
		}
	}

	day := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, time.UTC)
	lower := strings.ToLower(text)

	switch lower {
	case "today", "just now":
		return day.Format(isoDate), true
	case "yesterday":
		return day.AddDate(0, 0, -1).Format(isoDate), true
	}

	m := relativeRe.FindStringSubmatch(lower)
	if m == nil {
		return "", false
	}

	n, err := strconv.Atoi(m[1])
	if err != nil {
		return "", false
	}

	switch m[2] {
	case "minute", "hour":
		// No sub-day precision is kept.
		return day.Format(isoDate), true
	case "day":
		return day.AddDate(0, 0, -n).Format(isoDate), true
	case "week":
		return day.AddDate(0, 0, -7*n).Format(isoDate), true
	case "month":
		return day.AddDate(0, -n, 0).Format(isoDate), true
	case "year":
		return day.AddDate(-n, 0, 0).Format(isoDate), true
	}
	return "", false
}
