package ical

import (
	"testing"
	"time"

	"github.com/soh335/ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	planner "github.com/danielkim-905/schedule-planner"
)

// 2025-03-05 is a Wednesday.
var ref = time.Date(2025, time.March, 5, 12, 0, 0, 0, time.UTC)

func TestWeekdayDate(t *testing.T) {
	assert.Equal(t, 3, weekdayDate("Monday", ref).Day())
	assert.Equal(t, 5, weekdayDate("Wednesday", ref).Day())
	assert.Equal(t, 9, weekdayDate("Sunday", ref).Day())
}

func TestCalendar(t *testing.T) {
	s := planner.Schedule{
		{Task: "Gym", Day: "Monday", StartTime: "18:00", EndTime: "19:00"},
		{Task: planner.SyllabusTask, Day: "Wednesday", StartTime: planner.NA, EndTime: planner.NA, Description: "2025-09-10"},
		{Task: "Nonsense", Day: "Funday", StartTime: planner.NA, EndTime: planner.NA},
	}

	c := Calendar(s, ref, "1.0")
	require.Len(t, c.VComponent, 2)

	gym, ok := c.VComponent[0].(*ical.VEvent)
	require.True(t, ok)
	assert.Equal(t, "Gym", gym.SUMMARY)
	assert.False(t, gym.AllDay)
	assert.Equal(t, time.Date(2025, time.March, 3, 18, 0, 0, 0, time.UTC), gym.DTSTART)
	assert.Equal(t, time.Date(2025, time.March, 3, 19, 0, 0, 0, time.UTC), gym.DTEND)

	syl, ok := c.VComponent[1].(*ical.VEvent)
	require.True(t, ok)
	assert.True(t, syl.AllDay)
	assert.Equal(t, time.Date(2025, time.September, 10, 0, 0, 0, 0, time.UTC), syl.DTSTART)
	assert.Equal(t, time.Date(2025, time.September, 11, 0, 0, 0, 0, time.UTC), syl.DTEND)
}

func TestCalendarOpenEndedEntryGetsDefaultSlot(t *testing.T) {
	s := planner.Schedule{
		{Task: "Reading", Day: "Friday", StartTime: "10:00", EndTime: planner.NA},
	}
	c := Calendar(s, ref, "1.0")
	require.Len(t, c.VComponent, 1)

	ev := c.VComponent[0].(*ical.VEvent)
	assert.Equal(t, ev.DTSTART.Add(defaultSlot), ev.DTEND)
}
