package syllabus

import "regexp"

// Mention is a span of the source text suspected to denote a calendar date,
// together with the offset of its first character.
type Mention struct {
	Text string
	Pos  int
}

// datePattern recognizes a month name or its standard abbreviation, an
// optional trailing period, a one or two digit day, and an optional ", YYYY".
var datePattern = regexp.MustCompile(
	`(?i)\b(?:Jan(?:uary)?|Feb(?:ruary)?|Mar(?:ch)?|Apr(?:il)?|May|Jun(?:e)?|Jul(?:y)?|Aug(?:ust)?|` +
		`Sep(?:tember)?|Oct(?:ober)?|Nov(?:ember)?|Dec(?:ember)?)\.?\s+\d{1,2}(?:,\s+\d{4})?`)

// Scan finds date mentions in text. Matches are leftmost-first and
// non-overlapping, reported in order of occurrence with duplicates kept.
// The day number is not checked against the month here, a "February 30"
// passes the scan and gets dropped during normalization.
func Scan(text string) []Mention {
	found := datePattern.FindAllStringIndex(text, -1)
	mentions := make([]Mention, 0, len(found))
	for _, m := range found {
		mentions = append(mentions, Mention{Text: text[m[0]:m[1]], Pos: m[0]})
	}
	return mentions
}
