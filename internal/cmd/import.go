package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli"
	"golang.org/x/sync/errgroup"

	planner "github.com/danielkim-905/schedule-planner"
	"github.com/danielkim-905/schedule-planner/syllabus"
)

var ImportCmd = cli.Command{
	Name:      "import",
	Usage:     "Extracts dates from syllabus documents and adds them to the schedule",
	ArgsUsage: "DOCUMENT...",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:  "year",
			Usage: "Reference year for dates that don't carry one",
			Value: now.Year(),
		},
		&cli.BoolFlag{
			Name:  "dry-run",
			Usage: "Don't persist entries",
		},
		&cli.BoolFlag{
			Name:  "debug",
			Usage: "Output debug messages",
		},
	},
	Action: importSyllabus,
}

func isURL(arg string) bool {
	return strings.HasPrefix(arg, "http://") || strings.HasPrefix(arg, "https://")
}

func importSyllabus(c *cli.Context) error {
	args := c.Args()
	if len(args) == 0 {
		return fmt.Errorf("expected at least one document path or URL")
	}
	for _, arg := range args {
		if isURL(arg) {
			continue
		}
		if _, err := os.Stat(arg); err != nil {
			return fmt.Errorf("unable to find document %s: %w", arg, err)
		}
	}

	logFn := func(string, ...interface{}) {}
	if c.Bool("debug") {
		logFn = info
	}
	ext := syllabus.New(syllabus.Config{
		RefYear: c.Int("year"),
		LogFn:   logFn,
		ErrFn:   errFn,
	})

	schedules := make([]planner.Schedule, len(args))
	reports := make([]syllabus.Report, len(args))
	g := errgroup.Group{}
	for i, arg := range args {
		i, arg := i, arg
		g.Go(func() error {
			schedules[i], reports[i] = ext.Entries(syllabus.SourceFor(arg))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	failed := 0
	for i, rep := range reports {
		if rep.Err != nil {
			failed++
			errFn("%s: %s", args[i], rep)
			continue
		}
		info("%s: %s", args[i], rep)
	}

	merged := planner.Merge(schedules...)
	if len(merged) == 0 {
		if failed == len(args) {
			return fmt.Errorf("no document could be opened")
		}
		info("no dates found, try another file")
		return nil
	}
	if c.Bool("dry-run") {
		for _, e := range merged {
			info("%s", e)
		}
		return nil
	}
	if err := repo(c).SaveEntries(merged...); err != nil {
		return fmt.Errorf("unable to save entries: %w", err)
	}
	info("saved %d syllabus entries", len(merged))
	return nil
}
