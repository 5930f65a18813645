package ical

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/soh335/ical"

	planner "github.com/danielkim-905/schedule-planner"
	"github.com/danielkim-905/schedule-planner/storage/boltdb"
)

type cal struct {
	Version string
	path    string
}

func NewHandler(path string) *cal {
	return &cal{Version: "1.0", path: path}
}

// defaultSlot is the event length used when an entry has a start but no end.
const defaultSlot = time.Hour

// Calendar builds a VCALENDAR out of schedule rows. Syllabus entries carry a
// concrete date and keep it; weekly tasks land on their weekday in the week
// of ref. Rows with neither a date nor a known weekday are left out.
func Calendar(s planner.Schedule, ref time.Time, version string) *ical.VCalendar {
	c := ical.NewBasicVCalendar()
	c.PRODID = fmt.Sprintf("-//SCHEDULE-PLANNER//EN/%s", version)
	c.VERSION = "2.0"

	name := "WeeklySchedule"
	c.NAME = name
	c.X_WR_CALNAME = name
	description := "Weekly schedule with syllabus events"
	c.DESCRIPTION = description
	c.X_WR_CALDESC = description

	tz := ref.Location().String()
	c.TIMEZONE_ID = tz
	c.X_WR_TIMEZONE = tz

	c.REFRESH_INTERVAL = "PT1H"
	c.X_PUBLISHED_TTL = "PT1H"
	c.CALSCALE = "GREGORIAN"
	c.METHOD = "PUBLISH"

	for i, e := range s {
		start, end, allDay, ok := eventTimes(e, ref)
		if !ok {
			continue
		}
		ev := &ical.VEvent{
			UID:         fmt.Sprintf("%d@schedule-planner", i),
			DTSTAMP:     ref,
			DTSTART:     start,
			DTEND:       end,
			SUMMARY:     e.Task,
			DESCRIPTION: e.Description,
			TZID:        tz,
			AllDay:      allDay,
		}
		c.VComponent = append(c.VComponent, ev)
	}
	return c
}

func eventTimes(e planner.Entry, ref time.Time) (time.Time, time.Time, bool, bool) {
	day, haveDate := e.Date()
	if !haveDate {
		if !planner.ValidDay(e.Day) {
			return time.Time{}, time.Time{}, false, false
		}
		day = weekdayDate(e.Day, ref)
	}
	st, et, timed := e.Times()
	if !timed {
		start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, ref.Location())
		return start, start.Add(24 * time.Hour), true, true
	}
	start := time.Date(day.Year(), day.Month(), day.Day(), st.Hour(), st.Minute(), 0, 0, ref.Location())
	end := time.Date(day.Year(), day.Month(), day.Day(), et.Hour(), et.Minute(), 0, 0, ref.Location())
	if !end.After(start) {
		end = start.Add(defaultSlot)
	}
	return start, end, false, true
}

// weekdayDate maps a weekday name onto its date in the week of ref, with
// weeks starting on Monday.
func weekdayDate(day string, ref time.Time) time.Time {
	target := 0
	for i, d := range planner.WeekDays {
		if d == day {
			target = i
			break
		}
	}
	refIdx := (int(ref.Weekday()) + 6) % 7
	d := ref.AddDate(0, 0, target-refIdx)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, ref.Location())
}

func (c *cal) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	st := boltdb.New(boltdb.Config{Path: c.path})
	entries, err := st.LoadEntries()
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(fmt.Sprintf("%s", err)))
		return
	}

	cal := Calendar(entries, time.Now(), c.Version)

	b := &bytes.Buffer{}
	if err = cal.Encode(b); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(fmt.Sprintf("%s", err)))
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Write(b.Bytes())
}
