package ical

import (
	"net/http"
)

func Routes(path string) http.Handler {
	h := NewHandler(path)
	r := http.NewServeMux()
	r.Handle("/schedule.ics", h)
	r.Handle("/", h)
	return r
}
