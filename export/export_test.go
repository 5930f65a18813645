package export

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	planner "github.com/danielkim-905/schedule-planner"
)

var sample = planner.Schedule{
	{Task: "Gym", Day: "Wednesday", StartTime: "18:00", EndTime: "19:00", Description: "leg day"},
	{Task: planner.SyllabusTask, Day: "Monday", StartTime: planner.NA, EndTime: planner.NA, Description: "2025-03-03"},
}

func TestCSV(t *testing.T) {
	b := bytes.Buffer{}
	require.NoError(t, CSV(&b, sample))

	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Task,Day,Start Time,End Time,Description", lines[0])
	assert.Equal(t, "Gym,Wednesday,18:00,19:00,leg day", lines[1])
	assert.Equal(t, "Syllabus Event,Monday,N/A,N/A,2025-03-03", lines[2])
}

func TestCSVQuotesFields(t *testing.T) {
	b := bytes.Buffer{}
	s := planner.Schedule{{Task: "Office hours, optional", Day: "Friday", StartTime: planner.NA, EndTime: planner.NA}}
	require.NoError(t, CSV(&b, s))
	assert.Contains(t, b.String(), `"Office hours, optional"`)
}

func TestCSVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schedule.csv")
	require.NoError(t, CSVFile(path, sample))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "Task,Day,"))
}

func TestCSVFileUnwritablePath(t *testing.T) {
	err := CSVFile(filepath.Join(t.TempDir(), "missing", "schedule.csv"), sample)
	require.Error(t, err)
}

func TestMarkdownGroupsDaysInCanonicalOrder(t *testing.T) {
	b := bytes.Buffer{}
	require.NoError(t, Markdown(&b, sample))

	out := b.String()
	monday := strings.Index(out, "## Monday")
	wednesday := strings.Index(out, "## Wednesday")
	require.NotEqual(t, -1, monday)
	require.NotEqual(t, -1, wednesday)
	assert.Less(t, monday, wednesday)
	assert.NotContains(t, out, "## Friday")
}

func TestHTML(t *testing.T) {
	b := bytes.Buffer{}
	require.NoError(t, HTML(&b, sample))

	out := b.String()
	assert.Contains(t, out, "<h1>Weekly Schedule</h1>")
	assert.Contains(t, out, "<table>")
	assert.Contains(t, out, "Gym")
}
