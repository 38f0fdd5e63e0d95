package http

import (
	"fmt"
	"io"
	"sort"
	"time"
)

type Response struct {
	StatusCode int
	Status     string
	Headers    map[string]string
	Body       []byte
	Duration   time.Duration
}

func (r *Response) BodyString() string {
	return string(r.Body)
}

func (r *Response) DurationMs() int64 {
	return r.Duration.Milliseconds()
}

// WriteHead writes the status line, the headers sorted by name and the
// round trip time, followed by a blank line.
func (r *Response) WriteHead(w io.Writer) error {
	if _, err := fmt.Fprintln(w, r.Status); err != nil {
		return err
	}

	names := make([]string, 0, len(r.Headers))
	for k := range r.Headers {
		names = append(names, k)
	}
	sort.Strings(names)

	for _, k := range names {
		if _, err := fmt.Fprintf(w, "%s: %s\n", k, r.Headers[k]); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "Time: %dms\n\n", r.DurationMs())
	return err
}
