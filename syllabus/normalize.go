package syllabus

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	planner "github.com/danielkim-905/schedule-planner"
)

// Date is a normalized calendar date.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d Date) String() string {
	return d.Time().Format(planner.DateFmt)
}

// Entry lifts a date into the common schedule row shape.
func (d Date) Entry() planner.Entry {
	t := d.Time()
	return planner.Entry{
		Task:        planner.SyllabusTask,
		Day:         t.Weekday().String(),
		StartTime:   planner.NA,
		EndTime:     planner.NA,
		Description: t.Format(planner.DateFmt),
	}
}

// Outcome is the per-mention result of normalization: either a date or a
// rejection reason. Callers decide whether rejections are worth surfacing.
type Outcome struct {
	Mention Mention
	Date    Date
	Err     error
}

func (o Outcome) Valid() bool {
	return o.Err == nil
}

var months = map[string]time.Month{
	"jan": time.January, "january": time.January,
	"feb": time.February, "february": time.February,
	"mar": time.March, "march": time.March,
	"apr": time.April, "april": time.April,
	"may": time.May,
	"jun": time.June, "june": time.June,
	"jul": time.July, "july": time.July,
	"aug": time.August, "august": time.August,
	"sep": time.September, "september": time.September,
	"oct": time.October, "october": time.October,
	"nov": time.November, "november": time.November,
	"dec": time.December, "december": time.December,
}

var mentionParts = regexp.MustCompile(`(?i)^([a-z]+)\.?\s+(\d{1,2})(?:,\s+(\d{4}))?$`)

// Check parses a single mention. Mentions without a year get refYear, so
// resolution depends on the caller's reference point and not on the clock.
func Check(m Mention, refYear int) Outcome {
	parts := mentionParts.FindStringSubmatch(strings.TrimSpace(m.Text))
	if parts == nil {
		return Outcome{Mention: m, Err: fmt.Errorf("not a month-day mention: %q", m.Text)}
	}
	month, ok := months[strings.ToLower(parts[1])]
	if !ok {
		return Outcome{Mention: m, Err: fmt.Errorf("unknown month %q", parts[1])}
	}
	day, err := strconv.Atoi(parts[2])
	if err != nil {
		return Outcome{Mention: m, Err: fmt.Errorf("invalid day %q: %w", parts[2], err)}
	}
	year := refYear
	if len(parts[3]) > 0 {
		if year, err = strconv.Atoi(parts[3]); err != nil {
			return Outcome{Mention: m, Err: fmt.Errorf("invalid year %q: %w", parts[3], err)}
		}
	}
	// time.Date rolls invalid days over into the next month, so a changed
	// month or day after the round-trip means the combination was invalid.
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Month() != month || t.Day() != day {
		return Outcome{Mention: m, Err: fmt.Errorf("no day %d in %s %d", day, month, year)}
	}
	return Outcome{Mention: m, Date: Date{Year: year, Month: month, Day: day}}
}

// Normalize parses mentions in input order, dropping the ones that fail;
// unparseable text never interrupts extraction. The output is never longer
// than the input.
func Normalize(mentions []Mention, refYear int) []Date {
	dates := make([]Date, 0, len(mentions))
	for _, m := range mentions {
		if o := Check(m, refYear); o.Valid() {
			dates = append(dates, o.Date)
		}
	}
	return dates
}
