package syllabus

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	planner "github.com/danielkim-905/schedule-planner"
)

func TestCheck(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		refYear int
		want    Date
		wantErr bool
	}{
		{
			name:    "explicit year",
			text:    "Mar. 3, 2025",
			refYear: 1999,
			want:    Date{Year: 2025, Month: time.March, Day: 3},
		},
		{
			name:    "missing year falls back to the reference year",
			text:    "Jan 15",
			refYear: 2024,
			want:    Date{Year: 2024, Month: time.January, Day: 15},
		},
		{
			name:    "full month name",
			text:    "December 9",
			refYear: 2025,
			want:    Date{Year: 2025, Month: time.December, Day: 9},
		},
		{
			name:    "day out of range for the month",
			text:    "February 30",
			refYear: 2025,
			wantErr: true,
		},
		{
			name:    "leap day on a leap year",
			text:    "Feb 29",
			refYear: 2024,
			want:    Date{Year: 2024, Month: time.February, Day: 29},
		},
		{
			name:    "leap day on a common year",
			text:    "Feb 29",
			refYear: 2025,
			wantErr: true,
		},
		{
			name:    "not a date at all",
			text:    "whatever",
			refYear: 2025,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := Check(Mention{Text: tt.text}, tt.refYear)
			if tt.wantErr {
				require.Error(t, o.Err)
				assert.False(t, o.Valid())
				return
			}
			require.NoError(t, o.Err)
			assert.Equal(t, tt.want, o.Date)
		})
	}
}

func TestCheckIsStable(t *testing.T) {
	m := Mention{Text: "Mar. 3, 2025"}
	first := Check(m, 2024)
	second := Check(m, 2024)
	require.NoError(t, first.Err)
	assert.Equal(t, first.Date, second.Date)
}

func TestNormalize(t *testing.T) {
	t.Run("parsed dates keep scan order", func(t *testing.T) {
		mentions := Scan("Classes begin Jan 15 and the midterm is Mar. 3, 2025.")
		dates := Normalize(mentions, 2024)
		require.Len(t, dates, 2)
		assert.Equal(t, Date{Year: 2024, Month: time.January, Day: 15}, dates[0])
		assert.Equal(t, Date{Year: 2025, Month: time.March, Day: 3}, dates[1])
	})
	t.Run("invalid mentions are elided", func(t *testing.T) {
		mentions := Scan("Due February 30")
		require.Len(t, mentions, 1)
		assert.Empty(t, Normalize(mentions, 2025))
	})
	t.Run("output is never longer than input", func(t *testing.T) {
		mentions := Scan("Jan 1, Feb 30, Mar 3, Apr 31, May 5")
		dates := Normalize(mentions, 2025)
		assert.LessOrEqual(t, len(dates), len(mentions))
		assert.Len(t, dates, 3)
	})
	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, Normalize(nil, 2025))
	})
}

func TestDateEntry(t *testing.T) {
	d := Date{Year: 2025, Month: time.March, Day: 3}
	e := d.Entry()
	assert.Equal(t, planner.SyllabusTask, e.Task)
	assert.Equal(t, "Monday", e.Day)
	assert.Equal(t, planner.NA, e.StartTime)
	assert.Equal(t, planner.NA, e.EndTime)
	assert.Equal(t, "2025-03-03", e.Description)
	assert.True(t, e.IsValid())
}
