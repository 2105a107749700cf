package domain

import "strings"

// Story is one NPRML story as delivered by the Story API.
type Story struct {
	ID               string
	Title            string
	Teaser           string
	PubDate          string
	StoryDate        string
	LastModifiedDate string

	Links      Many[Link]
	Bylines    Many[Byline]
	Parents    Many[Parent]
	Paragraphs []Paragraph // textWithHtml
	Layout     *Layout

	Transcripts Many[Transcript]
	Audio       Many[Audio]
	Images      Many[Image]

	HTMLAssets     Many[HTMLAsset]
	ExternalAssets Many[ExternalAsset]
	Multimedia     Many[Multimedia]
	Containers     Many[Container]
	Collections    Many[Collection]
	Members        Many[Member]
	ListTexts      Many[ListText]
	RelatedLinks   Many[RelatedLink]

	Correction *Correction
}

// Link returns the value of the last link with the given type.
func (s *Story) Link(typ string) string {
	var out string
	for _, l := range s.Links {
		if l.Type == typ {
			out = l.Value
		}
	}
	return out
}

// Link is a typed URL. A bare string link has an empty Type.
type Link struct {
	Type  string
	Value string
}

type Byline struct {
	ID    string
	Name  string
	Links Many[Link]
}

type Parent struct {
	ID    string
	Type  string
	Title string
	Links Many[Link]
}

type Paragraph struct {
	Num   int
	Value string
}

// Layout is the storytext part of a story layout, entries in document order.
type Layout struct {
	Entries []LayoutEntry
}

// Layout element types.
const (
	LayoutText          = "text"
	LayoutStaticHTML    = "staticHtml"
	LayoutExternalAsset = "externalAsset"
	LayoutMultimedia    = "multimedia"
	LayoutContainer     = "container"
	LayoutList          = "list"
	LayoutImage         = "image"
)

type LayoutEntry struct {
	Type         string
	Num          int
	RefID        string
	ParagraphNum int
}

type Transcript struct {
	Links Many[Link]
}

type Permissions struct {
	Download string
	Stream   string
	Embed    string
}

func allowed(v string) bool {
	return strings.EqualFold(strings.TrimSpace(v), "true")
}

func (p Permissions) DownloadAllowed() bool { return allowed(p.Download) }
func (p Permissions) StreamAllowed() bool   { return allowed(p.Stream) }
func (p Permissions) EmbedAllowed() bool    { return allowed(p.Embed) }

type Audio struct {
	ID          string
	Type        string
	Title       string
	Duration    string
	Format      AudioFormat
	Permissions Permissions
}

// AudioFormat lists the delivery variants of one audio entry. MP3 links
// carry their variant ("mp3" or "m3u") in Type.
type AudioFormat struct {
	MP3         Many[Link]
	MediaStream string
	HLSOnDemand string
}

func (f AudioFormat) MP3Of(typ string) string {
	for _, l := range f.MP3 {
		if l.Type == typ {
			return l.Value
		}
	}
	return ""
}

type Image struct {
	ID          string
	Type        string
	Src         string
	Title       string
	Caption     string
	Producer    string
	Provider    string
	Copyright   string
	Enlargement string
	Crops       Many[Crop]
}

func (i Image) ElementID() string { return i.ID }

func (i Image) IsPrimary() bool { return i.Type == "primary" }

type Crop struct {
	Type    string
	Src     string
	Width   int
	Height  int
	Primary bool
}

type HTMLAsset struct {
	ID    string
	Value string
}

func (h HTMLAsset) ElementID() string { return h.ID }

type ExternalAsset struct {
	ID         string
	Type       string
	URL        string
	Credit     string
	Caption    string
	ExternalID string
}

func (e ExternalAsset) ElementID() string { return e.ID }

type Multimedia struct {
	ID          string
	Credit      string
	Caption     string
	Permissions Permissions
}

func (m Multimedia) ElementID() string { return m.ID }

type Container struct {
	ID          string
	Title       string
	IntroText   string
	ColSpan     int
	LinkRef     string
	ListTextRef string
}

func (c Container) ElementID() string { return c.ID }

type Collection struct {
	ID          string
	DisplayType string
	Title       string
	Intro       string
	MemberRefs  []string
}

func (c Collection) ElementID() string { return c.ID }

type Member struct {
	ID        string
	Title     string
	IntroText string
	Link      string
	ImageRef  string
	ImageCrop string
}

func (m Member) ElementID() string { return m.ID }

type ListText struct {
	ID         string
	Paragraphs []Paragraph
}

func (l ListText) ElementID() string { return l.ID }

type RelatedLink struct {
	ID      string
	Type    string
	Caption string
	Links   Many[Link]
}

func (r RelatedLink) ElementID() string { return r.ID }

type Correction struct {
	Title string
	Date  string
	Text  string
}
