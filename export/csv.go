package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	planner "github.com/danielkim-905/schedule-planner"
)

// Header matches the field names of a schedule row.
var Header = []string{"Task", "Day", "Start Time", "End Time", "Description"}

// CSV writes the schedule as a comma separated table with a header row.
func CSV(w io.Writer, s planner.Schedule) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, e := range s {
		if err := cw.Write([]string{e.Task, e.Day, e.StartTime, e.EndTime, e.Description}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// CSVFile writes the schedule to path, creating or truncating the file.
func CSVFile(path string, s planner.Schedule) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create %s: %w", path, err)
	}
	defer f.Close()
	return CSV(f, s)
}
