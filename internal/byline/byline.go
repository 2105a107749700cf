// Package byline flattens story bylines into the single and multi author
// fields stored with a post.
package byline

import (
	"strings"

	"nprstory/internal/domain"
)

const (
	authorSep = "|"
	linkSep   = "~"
)

// Result holds the stored byline fields. Single is the last named author
// and SingleLink the last html link seen, for single-author themes. Multi
// keeps every author in order as "name" or "name~link" tokens joined by "|".
type Result struct {
	Single     string
	SingleLink string
	Multi      string
}

// Extract flattens bylines. Bylines without a name are ignored along with
// their links.
func Extract(bylines domain.Many[domain.Byline]) Result {
	var res Result
	tokens := make([]string, 0, len(bylines))
	for _, b := range bylines {
		name := strings.TrimSpace(b.Name)
		if name == "" {
			continue
		}
		res.Single = name
		token := name
		for _, l := range b.Links {
			if l.Type != "html" || l.Value == "" {
				continue
			}
			res.SingleLink = l.Value
			token += linkSep + l.Value
		}
		tokens = append(tokens, token)
	}
	res.Multi = strings.Join(tokens, authorSep)
	return res
}

// Names splits a multi byline back into author names, dropping links.
func Names(multi string) []string {
	if multi == "" {
		return nil
	}
	var out []string
	for _, token := range strings.Split(multi, authorSep) {
		name, _, _ := strings.Cut(token, linkSep)
		if name = strings.TrimSpace(name); name != "" {
			out = append(out, name)
		}
	}
	return out
}
