package plaintext

import (
	"fmt"
	"os"
)

type source struct {
	path string
}

// New returns a source for text-like documents (.txt, .md).
func New(path string) *source {
	return &source{path: path}
}

func (s *source) Text() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", fmt.Errorf("unable to read %s: %w", s.path, err)
	}
	return string(data), nil
}
