package layout

import "nprstory/internal/domain"

// Element is anything a layout entry can reference.
type Element interface {
	ElementID() string
}

// Index keys elements by id. Elements without an id cannot be referenced
// and are dropped; a later element with a repeated id replaces the earlier.
func Index[T Element](items domain.Many[T]) map[string]T {
	out := make(map[string]T, len(items))
	for _, item := range items {
		id := item.ElementID()
		if id == "" {
			continue
		}
		out[id] = item
	}
	return out
}

// Indexes holds one lookup table per referenceable element kind.
type Indexes struct {
	Images         map[string]domain.Image
	HTMLAssets     map[string]domain.HTMLAsset
	ExternalAssets map[string]domain.ExternalAsset
	Multimedia     map[string]domain.Multimedia
	Containers     map[string]domain.Container
	Collections    map[string]domain.Collection
	Members        map[string]domain.Member
	ListTexts      map[string]domain.ListText
	RelatedLinks   map[string]domain.RelatedLink
}

func BuildIndexes(s *domain.Story) Indexes {
	return Indexes{
		Images:         Index(s.Images),
		HTMLAssets:     Index(s.HTMLAssets),
		ExternalAssets: Index(s.ExternalAssets),
		Multimedia:     Index(s.Multimedia),
		Containers:     Index(s.Containers),
		Collections:    Index(s.Collections),
		Members:        Index(s.Members),
		ListTexts:      Index(s.ListTexts),
		RelatedLinks:   Index(s.RelatedLinks),
	}
}
