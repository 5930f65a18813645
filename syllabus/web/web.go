package web

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

type source struct {
	url *url.URL
}

// New returns a source that loads a syllabus published as a web page.
func New(u *url.URL) *source {
	return &source{url: u}
}

func (s *source) Text() (string, error) {
	if s.url == nil {
		return "", fmt.Errorf("nil URL received")
	}
	res, err := http.Get(s.url.String())
	if err != nil {
		return "", fmt.Errorf("unable to load syllabus page: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode != 200 {
		return "", fmt.Errorf("status code error: %d %s", res.StatusCode, res.Status)
	}

	doc, err := goquery.NewDocumentFromReader(res.Body)
	if err != nil {
		return "", err
	}
	doc.Find("script,style").Remove()
	return strings.TrimSpace(doc.Find("body").Text()), nil
}
