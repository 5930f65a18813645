package cmd

import (
	"fmt"
	"log"
	"strings"

	"github.com/urfave/cli"

	planner "github.com/danielkim-905/schedule-planner"
)

var ShowCmd = cli.Command{
	Name:  "show",
	Usage: "Shows the weekly schedule grouped by day",
	Flags: []cli.Flag{
		&cli.StringSliceFlag{
			Name:  "day",
			Usage: "Which days to show",
		},
	},
	Action: showSchedule,
}

func showSchedule(c *cli.Context) error {
	entries, err := repo(c).LoadEntries(c.StringSlice("day")...)
	if err != nil {
		return fmt.Errorf("unable to load entries: %w", err)
	}
	if len(entries) == 0 {
		fmt.Printf("nothing found\n")
		return nil
	}
	printSchedule(entries)
	return nil
}

func printSchedule(s planner.Schedule) {
	f := log.Flags()
	log.SetFlags(0)
	defer log.SetFlags(f)

	groups := s.ByDay()
	for _, day := range planner.WeekDays {
		dayEntries, ok := groups[day]
		if !ok {
			continue
		}
		log.Printf("%s", strings.ToUpper(day))
		for i, e := range dayEntries {
			if e.StartTime == planner.NA {
				log.Printf("#%d %s %s", i, e.Task, e.Description)
				continue
			}
			log.Printf("#%d %s-%s %s %s", i, e.StartTime, e.EndTime, e.Task, e.Description)
		}
	}
}
