package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/danielkim-905/schedule-planner/internal/cmd"
)

func main() {
	var err error

	ctl := cli.App{
		Name:    fmt.Sprintf("%sctl", cmd.AppName),
		Version: cmd.AppVersion,
		Usage:   "Weekly schedule planner with syllabus date extraction",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "path",
				Usage: "The path for storage",
				Value: cmd.DataPath(),
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Output debug messages",
			},
		},
		Commands: []cli.Command{
			cmd.AddCmd,
			cmd.ImportCmd,
			cmd.ShowCmd,
			cmd.ExportCmd,
			cmd.ClearCmd,
			cmd.ServerCmd,
		},
	}

	err = ctl.Run(os.Args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}
