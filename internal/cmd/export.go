package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli"

	"github.com/danielkim-905/schedule-planner/export"
	"github.com/danielkim-905/schedule-planner/ical"
)

var ExportCmd = cli.Command{
	Name:  "export",
	Usage: "Exports the schedule to a file",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "format",
			Usage: "Export format: csv, markdown, html, ics",
			Value: "csv",
		},
		&cli.StringFlag{
			Name:  "output",
			Usage: "File to write to, stdout if empty",
		},
	},
	Action: exportSchedule,
}

func exportSchedule(c *cli.Context) error {
	entries, err := repo(c).LoadEntries()
	if err != nil {
		return fmt.Errorf("unable to load entries: %w", err)
	}

	var w io.Writer = os.Stdout
	if out := c.String("output"); len(out) > 0 {
		f, err := os.Create(out)
		if err != nil {
			// a failed write loses nothing already shown, so just report it
			errFn("unable to write %s: %s", out, err)
			return nil
		}
		defer f.Close()
		w = f
	}

	format := strings.ToLower(c.String("format"))
	switch format {
	case "csv":
		err = export.CSV(w, entries)
	case "markdown", "md":
		err = export.Markdown(w, entries)
	case "html":
		err = export.HTML(w, entries)
	case "ics", "ical":
		err = ical.Calendar(entries, time.Now(), AppVersion).Encode(w)
	default:
		return fmt.Errorf("unknown format %s", format)
	}
	if err != nil {
		errFn("unable to export schedule as %s: %s", format, err)
	}
	return nil
}
