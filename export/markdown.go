package export

import (
	"fmt"
	"io"
	"strings"

	"gitlab.com/golang-commonmark/markdown"

	planner "github.com/danielkim-905/schedule-planner"
)

// Markdown writes the schedule as a markdown document, one section per
// weekday in canonical order.
func Markdown(w io.Writer, s planner.Schedule) error {
	b := strings.Builder{}
	b.WriteString("# Weekly Schedule\n")
	groups := s.ByDay()
	for _, day := range planner.WeekDays {
		entries, ok := groups[day]
		if !ok {
			continue
		}
		b.WriteString(fmt.Sprintf("\n## %s\n\n", day))
		b.WriteString("| Task | Start | End | Description |\n")
		b.WriteString("|------|-------|-----|-------------|\n")
		for _, e := range entries {
			b.WriteString(fmt.Sprintf("| %s | %s | %s | %s |\n", e.Task, e.StartTime, e.EndTime, e.Description))
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// HTML renders the markdown view into HTML.
func HTML(w io.Writer, s planner.Schedule) error {
	b := strings.Builder{}
	if err := Markdown(&b, s); err != nil {
		return err
	}
	md := markdown.New(
		markdown.HTML(true),
		markdown.Tables(true),
		markdown.Linkify(false),
		markdown.Typographer(true),
		markdown.Breaks(true),
	)
	_, err := io.WriteString(w, md.RenderToString([]byte(b.String())))
	return err
}
