package syllabus

import (
	"fmt"
	"time"

	planner "github.com/danielkim-905/schedule-planner"
)

// Source produces the full concatenated text content of a syllabus document.
// Reading is blocking; implementations release the document handle on every
// exit path.
type Source interface {
	Text() (string, error)
}

type LoggerFn func(string, ...interface{})

// Report sums up one extraction run. Err is an adapter failure and is kept
// separate from the "document opened fine but held no dates" case.
type Report struct {
	Mentions int
	Imported int
	Skipped  []Outcome
	Err      error
}

func (r Report) String() string {
	if r.Err != nil {
		return fmt.Sprintf("document could not be read: %s", r.Err)
	}
	if r.Mentions == 0 {
		return "no dates found"
	}
	return fmt.Sprintf("%d mentions, %d imported, %d skipped", r.Mentions, r.Imported, len(r.Skipped))
}

// Config
type Config struct {
	// RefYear resolves mentions that carry no year. Zero means the current
	// system year.
	RefYear int
	LogFn   LoggerFn
	ErrFn   LoggerFn
}

type extractor struct {
	refYear int
	log     LoggerFn
	err     LoggerFn
}

// New returns a new syllabus date extractor.
func New(c Config) *extractor {
	e := extractor{
		refYear: c.RefYear,
		log:     func(string, ...interface{}) {},
		err:     func(string, ...interface{}) {},
	}
	if e.refYear == 0 {
		e.refYear = time.Now().Year()
	}
	if c.LogFn != nil {
		e.log = c.LogFn
	}
	if c.ErrFn != nil {
		e.err = c.ErrFn
	}
	return &e
}

// Extract runs the source text through the scan and normalize stages.
// A source failure yields zero dates and a report carrying the failure;
// every other degradation shows up as fewer results, never as an error.
func (e *extractor) Extract(src Source) ([]Date, Report) {
	text, err := src.Text()
	if err != nil {
		e.err("unable to read document: %s", err)
		return nil, Report{Err: fmt.Errorf("unable to read document: %w", err)}
	}

	mentions := Scan(text)
	rep := Report{Mentions: len(mentions)}

	dates := make([]Date, 0, len(mentions))
	for _, m := range mentions {
		o := Check(m, e.refYear)
		if !o.Valid() {
			e.log("skipping mention %q at %d: %s", o.Mention.Text, o.Mention.Pos, o.Err)
			rep.Skipped = append(rep.Skipped, o)
			continue
		}
		dates = append(dates, o.Date)
	}
	rep.Imported = len(dates)
	return dates, rep
}

// Entries extracts dates and lifts them into schedule rows.
func (e *extractor) Entries(src Source) (planner.Schedule, Report) {
	dates, rep := e.Extract(src)
	entries := make(planner.Schedule, 0, len(dates))
	for _, d := range dates {
		entries = append(entries, d.Entry())
	}
	return entries, rep
}
