package layout

import (
	"regexp"
	"strings"
)

const fullAttribution = `<div class="fullattribution">`

var (
	blockFragment = regexp.MustCompile(`^<[a-zA-Z0-9 ="\-_']+>.+<[a-zA-Z0-9/]+>$`)
	inlineLead    = regexp.MustCompile(`^<(a href|em|strong)`)
)

// FormatParagraph wraps a paragraph in <p> unless it is already a block
// level fragment. Fragments that open with inline markup are still wrapped.
// The full attribution div is split out of the paragraph it trails.
func FormatParagraph(p string) string {
	if blockFragment.MatchString(p) {
		if inlineLead.MatchString(p) {
			return "<p>" + p + "</p>"
		}
		// storyMajorUpdateDate markers land here too and pass through.
		return p
	}
	if strings.Contains(p, fullAttribution) {
		return "<p>" + strings.ReplaceAll(p, fullAttribution, "</p>"+fullAttribution)
	}
	return "<p>" + p + "</p>"
}
