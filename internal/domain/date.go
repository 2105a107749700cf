package domain

import (
	"fmt"
	"strings"
	"time"
)

var dateLayouts = []string{
	time.RFC1123Z,
	time.RFC1123,
	time.RFC3339,
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseDate parses the date formats found in NPRML and in stored metadata.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

// HTMLLink picks the link value out of a link field. A single link is used
// whatever its type; among several, the last one of type html wins.
func HTMLLink(links Many[Link]) string {
	if len(links) == 1 {
		return links[0].Value
	}
	var out string
	for _, l := range links {
		if l.Type == "html" {
			out = l.Value
		}
	}
	return out
}
