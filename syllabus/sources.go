package syllabus

import (
	"net/url"
	"path/filepath"
	"strings"

	"github.com/danielkim-905/schedule-planner/syllabus/pdf"
	"github.com/danielkim-905/schedule-planner/syllabus/plaintext"
	"github.com/danielkim-905/schedule-planner/syllabus/web"
)

// SourceFor picks a source adapter for a document argument: http(s) URLs
// load as web pages, .pdf files through the PDF reader, everything else as
// plain text.
func SourceFor(arg string) Source {
	if u, err := url.Parse(arg); err == nil && (u.Scheme == "http" || u.Scheme == "https") {
		return web.New(u)
	}
	if strings.EqualFold(filepath.Ext(arg), ".pdf") {
		return pdf.New(arg)
	}
	return plaintext.New(arg)
}
