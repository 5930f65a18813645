package cmd

import (
	"fmt"

	"github.com/urfave/cli"
)

var ClearCmd = cli.Command{
	Name:   "clear",
	Usage:  "Removes all saved schedule entries",
	Action: clearSchedule,
}

func clearSchedule(c *cli.Context) error {
	if err := repo(c).Clear(); err != nil {
		return fmt.Errorf("unable to clear schedule: %w", err)
	}
	info("schedule cleared")
	return nil
}
