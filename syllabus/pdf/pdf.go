package pdf

import (
	"bytes"
	"fmt"

	ledongthuc "github.com/ledongthuc/pdf"
)

type source struct {
	path string
}

// New returns a source that reads the concatenated plain text of a PDF.
func New(path string) *source {
	return &source{path: path}
}

func (s *source) Text() (string, error) {
	f, r, err := ledongthuc.Open(s.path)
	if err != nil {
		return "", fmt.Errorf("unable to open pdf %s: %w", s.path, err)
	}
	defer f.Close()

	b, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("unable to extract text from %s: %w", s.path, err)
	}
	buf := bytes.Buffer{}
	if _, err := buf.ReadFrom(b); err != nil {
		return "", fmt.Errorf("unable to read text from %s: %w", s.path, err)
	}
	return buf.String(), nil
}
