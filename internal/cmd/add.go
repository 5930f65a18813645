package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli"

	planner "github.com/danielkim-905/schedule-planner"
)

var AddCmd = cli.Command{
	Name:  "add",
	Usage: "Adds tasks to the weekly schedule interactively",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "dry-run",
			Usage: "Don't persist entries",
		},
	},
	Action: addTasks,
}

func addTasks(c *cli.Context) error {
	entries := make(planner.Schedule, 0)
	for {
		task, err := prompt("Task name (leave empty to finish):")()
		if err != nil {
			return err
		}
		task = strings.TrimSpace(task)
		if len(task) == 0 {
			break
		}

		day, err := prompt("Day of the week (e.g. Monday):")()
		if err != nil {
			return err
		}
		day = planner.NormalizeDay(day)
		if !planner.ValidDay(day) {
			errFn("invalid day of the week %q, skipping task %s", day, task)
			continue
		}

		start, err := prompt("Start time (HH:MM, 24hr format):")()
		if err != nil {
			return err
		}
		end, err := prompt("End time (HH:MM, 24hr format):")()
		if err != nil {
			return err
		}
		description, err := prompt("Optional description:")()
		if err != nil {
			return err
		}

		entries = append(entries, planner.Entry{
			Task:        task,
			Day:         day,
			StartTime:   cleanTime(start),
			EndTime:     cleanTime(end),
			Description: strings.TrimSpace(description),
		})
	}

	if len(entries) == 0 {
		info("nothing to add")
		return nil
	}
	if c.Bool("dry-run") {
		for _, e := range entries {
			info("%s", e)
		}
		return nil
	}
	if err := repo(c).SaveEntries(entries...); err != nil {
		return fmt.Errorf("unable to save entries: %w", err)
	}
	info("saved %d entries", len(entries))
	return nil
}

// cleanTime keeps valid HH:MM values and maps everything else to the NA
// sentinel.
func cleanTime(val string) string {
	val = strings.TrimSpace(val)
	if _, err := time.Parse(planner.TimeFmt, val); err != nil {
		return planner.NA
	}
	return val
}

type model struct {
	prompt    string
	textInput *textinput.Model
	err       error
}

func initialModel(prompt string) model {
	ti := textinput.New()
	ti.Placeholder = "..."
	ti.Focus()
	ti.CharLimit = 156
	ti.Width = 45

	return model{
		prompt:    prompt,
		textInput: &ti,
		err:       nil,
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

type errMsg error

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEnter, tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		}

	// We handle errors just like any other message
	case errMsg:
		m.err = msg
		return m, nil
	}

	*m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m model) View() string {
	return fmt.Sprintf(
		"%s\n\n%s",
		m.prompt,
		m.textInput.View(),
	) + "\n"
}

func prompt(text string) func() (string, error) {
	return func() (string, error) {
		m := initialModel(text)
		err := tea.NewProgram(m).Start()
		return m.textInput.Value(), err
	}
}
