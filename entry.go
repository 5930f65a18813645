package planner

import (
	"fmt"
	"strings"
	"time"
)

// NA is the sentinel used when an entry has no start or end time.
const NA = "N/A"

// SyllabusTask is the task label given to entries lifted from syllabus dates.
const SyllabusTask = "Syllabus Event"

// DateFmt is the format used for syllabus dates in entry descriptions.
const DateFmt = "2006-01-02"

// TimeFmt is the format for entry start and end times.
const TimeFmt = "15:04"

type Entry struct {
	Task        string
	Day         string
	StartTime   string
	EndTime     string
	Description string
}

func (e Entry) IsValid() bool {
	return len(e.Task) > 0 && ValidDay(e.Day)
}

func (e Entry) Equals(other Entry) bool {
	return e.Task == other.Task &&
		e.Day == other.Day &&
		e.StartTime == other.StartTime &&
		e.EndTime == other.EndTime &&
		e.Description == other.Description
}

func (e Entry) String() string {
	if e.StartTime == NA && e.EndTime == NA {
		return fmt.Sprintf("<%s @ %s>", e.Task, e.Day)
	}
	return fmt.Sprintf("<%s @ %s//%s-%s>", e.Task, e.Day, e.StartTime, e.EndTime)
}

// Times parses the start and end times of an entry.
// Entries carrying the NA sentinel report ok as false.
func (e Entry) Times() (time.Time, time.Time, bool) {
	st, err := time.Parse(TimeFmt, e.StartTime)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	et, err := time.Parse(TimeFmt, e.EndTime)
	if err != nil {
		return st, st, true
	}
	return st, et, true
}

// Date returns the concrete calendar date for syllabus entries, which keep
// it in their description.
func (e Entry) Date() (time.Time, bool) {
	d, err := time.Parse(DateFmt, e.Description)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// NormalizeDay maps free-form user input ("monday", " MONDAY ") onto the
// canonical weekday name.
func NormalizeDay(day string) string {
	day = strings.TrimSpace(day)
	if len(day) == 0 {
		return day
	}
	return strings.ToUpper(day[:1]) + strings.ToLower(day[1:])
}
