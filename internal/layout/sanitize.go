package layout

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// StripTags removes all markup and returns plain text.
func StripTags(s string) string {
	return strings.TrimSpace(html.UnescapeString(strict.Sanitize(s)))
}

// decodeEntities is the final pass over a rendered body. Invalid UTF-8
// bytes are dropped and entities are decoded so the stored body carries
// literal characters.
func decodeEntities(s string) string {
	return html.UnescapeString(strings.ToValidUTF8(s, ""))
}
