// Package nprml reads and writes the NPRML documents exchanged with the
// NPR Story API.
package nprml

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"golang.org/x/net/html/charset"

	"nprstory/internal/domain"
)

var ErrNoStory = errors.New("no story in response")

// Message is the API status message attached to a query response.
type Message struct {
	ID    string
	Level string
	Text  string
}

func (m *Message) IsWarning() bool {
	return m != nil && m.Level == "warning"
}

// Result is a parsed query response.
type Result struct {
	Stories []domain.Story
	Message *Message
}

func newDocument() *etree.Document {
	doc := etree.NewDocument()
	doc.ReadSettings = etree.ReadSettings{
		CharsetReader: charset.NewReaderLabel,
		Permissive:    true,
	}
	return doc
}

func readDocument(r io.Reader) (*etree.Element, error) {
	doc := newDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("read nprml: %w", err)
	}
	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("read nprml: document has no root element")
	}
	return root, nil
}

// Parse reads a query response. Fields that are missing or malformed are
// left empty; only unreadable XML is an error.
func Parse(r io.Reader) (*Result, error) {
	root, err := readDocument(r)
	if err != nil {
		return nil, err
	}

	res := &Result{}
	if msg := root.SelectElement("message"); msg != nil {
		res.Message = parseMessage(msg)
	}

	for _, list := range root.SelectElements("list") {
		for _, el := range list.SelectElements("story") {
			res.Stories = append(res.Stories, parseStory(el))
		}
	}
	// A bare <story> document, as returned for single-story fetches.
	if root.Tag == "story" {
		res.Stories = append(res.Stories, parseStory(root))
	}

	return res, nil
}

func parseMessage(el *etree.Element) *Message {
	return &Message{
		ID:    el.SelectAttrValue("id", ""),
		Level: el.SelectAttrValue("level", ""),
		Text:  childText(el, "text"),
	}
}

func parseStory(el *etree.Element) domain.Story {
	s := domain.Story{
		ID: el.SelectAttrValue("id", ""),
	}

	for _, child := range el.ChildElements() {
		switch child.Tag {
		case "title":
			s.Title = text(child)
		case "teaser":
			s.Teaser = text(child)
		case "pubDate":
			s.PubDate = text(child)
		case "storyDate":
			s.StoryDate = text(child)
		case "lastModifiedDate":
			s.LastModifiedDate = text(child)
		case "link":
			s.Links = append(s.Links, parseLink(child))
		case "byline":
			s.Bylines = append(s.Bylines, parseByline(child))
		case "parent":
			s.Parents = append(s.Parents, domain.Parent{
				ID:    child.SelectAttrValue("id", ""),
				Type:  child.SelectAttrValue("type", ""),
				Title: childText(child, "title"),
				Links: parseLinks(child),
			})
		case "textWithHtml":
			s.Paragraphs = parseParagraphs(child)
		case "layout":
			s.Layout = parseLayout(child)
		case "transcript":
			s.Transcripts = append(s.Transcripts, domain.Transcript{Links: parseLinks(child)})
		case "audio":
			s.Audio = append(s.Audio, parseAudio(child))
		case "image":
			s.Images = append(s.Images, parseImage(child))
		case "htmlAsset":
			s.HTMLAssets = append(s.HTMLAssets, domain.HTMLAsset{
				ID:    child.SelectAttrValue("id", ""),
				Value: innerXML(child),
			})
		case "externalAsset":
			s.ExternalAssets = append(s.ExternalAssets, domain.ExternalAsset{
				ID:         child.SelectAttrValue("id", ""),
				Type:       firstNonEmpty(child.SelectAttrValue("type", ""), childText(child, "type")),
				URL:        childText(child, "url"),
				Credit:     childText(child, "credit"),
				Caption:    childText(child, "caption"),
				ExternalID: childText(child, "externalId"),
			})
		case "multimedia":
			s.Multimedia = append(s.Multimedia, domain.Multimedia{
				ID:          child.SelectAttrValue("id", ""),
				Credit:      childText(child, "credit"),
				Caption:     childText(child, "caption"),
				Permissions: parsePermissions(child.SelectElement("permissions")),
			})
		case "container":
			s.Containers = append(s.Containers, parseContainer(child))
		case "collection":
			s.Collections = append(s.Collections, parseCollection(child))
		case "member":
			s.Members = append(s.Members, parseMember(child))
		case "listText":
			s.ListTexts = append(s.ListTexts, domain.ListText{
				ID:         child.SelectAttrValue("id", ""),
				Paragraphs: parseParagraphs(child),
			})
		case "relatedLink":
			s.RelatedLinks = append(s.RelatedLinks, domain.RelatedLink{
				ID:      child.SelectAttrValue("id", ""),
				Type:    child.SelectAttrValue("type", ""),
				Caption: childText(child, "caption"),
				Links:   parseLinks(child),
			})
		case "correction":
			s.Correction = &domain.Correction{
				Title: childText(child, "correctionTitle"),
				Date:  childText(child, "correctionDate"),
				Text:  childText(child, "correctionText"),
			}
		}
	}

	return s
}

func parseLink(el *etree.Element) domain.Link {
	return domain.Link{
		Type:  el.SelectAttrValue("type", ""),
		Value: text(el),
	}
}

func parseLinks(el *etree.Element) domain.Many[domain.Link] {
	var links domain.Many[domain.Link]
	for _, l := range el.SelectElements("link") {
		links = append(links, parseLink(l))
	}
	return links
}

func parseByline(el *etree.Element) domain.Byline {
	return domain.Byline{
		ID:    el.SelectAttrValue("id", ""),
		Name:  childText(el, "name"),
		Links: parseLinks(el),
	}
}

func parseParagraphs(el *etree.Element) []domain.Paragraph {
	var out []domain.Paragraph
	for _, p := range el.SelectElements("paragraph") {
		out = append(out, domain.Paragraph{
			Num:   atoi(p.SelectAttrValue("num", "")),
			Value: innerXML(p),
		})
	}
	return out
}

func parseLayout(el *etree.Element) *domain.Layout {
	storytext := el.SelectElement("storytext")
	if storytext == nil {
		return nil
	}
	layout := &domain.Layout{}
	for _, child := range storytext.ChildElements() {
		layout.Entries = append(layout.Entries, domain.LayoutEntry{
			Type:         child.Tag,
			Num:          atoi(child.SelectAttrValue("num", "")),
			RefID:        child.SelectAttrValue("refId", ""),
			ParagraphNum: atoi(child.SelectAttrValue("paragraphNum", "")),
		})
	}
	if len(layout.Entries) == 0 {
		return nil
	}
	return layout
}

func parsePermissions(el *etree.Element) domain.Permissions {
	if el == nil {
		return domain.Permissions{}
	}
	allow := func(tag string) string {
		if c := el.SelectElement(tag); c != nil {
			return c.SelectAttrValue("allow", "")
		}
		return ""
	}
	return domain.Permissions{
		Download: allow("download"),
		Stream:   allow("stream"),
		Embed:    allow("embed"),
	}
}

func parseAudio(el *etree.Element) domain.Audio {
	a := domain.Audio{
		ID:          el.SelectAttrValue("id", ""),
		Type:        el.SelectAttrValue("type", ""),
		Title:       childText(el, "title"),
		Duration:    childText(el, "duration"),
		Permissions: parsePermissions(el.SelectElement("permissions")),
	}
	if format := el.SelectElement("format"); format != nil {
		for _, mp3 := range format.SelectElements("mp3") {
			a.Format.MP3 = append(a.Format.MP3, parseLink(mp3))
		}
		a.Format.MediaStream = childText(format, "mediastream")
		a.Format.HLSOnDemand = childText(format, "hlsOnDemand")
	}
	return a
}

func parseImage(el *etree.Element) domain.Image {
	img := domain.Image{
		ID:        el.SelectAttrValue("id", ""),
		Type:      el.SelectAttrValue("type", ""),
		Src:       el.SelectAttrValue("src", ""),
		Title:     childText(el, "title"),
		Caption:   childText(el, "caption"),
		Producer:  childText(el, "producer"),
		Provider:  childText(el, "provider"),
		Copyright: childText(el, "copyright"),
	}
	if enl := el.SelectElement("enlargement"); enl != nil {
		img.Enlargement = enl.SelectAttrValue("src", "")
	}
	for _, c := range el.SelectElements("crop") {
		img.Crops = append(img.Crops, domain.Crop{
			Type:    c.SelectAttrValue("type", ""),
			Src:     c.SelectAttrValue("src", ""),
			Width:   atoi(c.SelectAttrValue("width", "")),
			Height:  atoi(c.SelectAttrValue("height", "")),
			Primary: isTrue(c.SelectAttrValue("primary", "")),
		})
	}
	return img
}

func parseContainer(el *etree.Element) domain.Container {
	c := domain.Container{
		ID:        el.SelectAttrValue("id", ""),
		Title:     childText(el, "title"),
		IntroText: childText(el, "introText"),
		ColSpan:   atoi(childText(el, "colSpan")),
	}
	if l := el.SelectElement("link"); l != nil {
		c.LinkRef = l.SelectAttrValue("refId", "")
	}
	if lt := el.SelectElement("listText"); lt != nil {
		c.ListTextRef = lt.SelectAttrValue("refId", "")
	}
	return c
}

func parseCollection(el *etree.Element) domain.Collection {
	c := domain.Collection{
		ID:          el.SelectAttrValue("id", ""),
		DisplayType: firstNonEmpty(el.SelectAttrValue("displayType", ""), childText(el, "displayType")),
		Title:       childText(el, "title"),
		Intro:       firstNonEmpty(childText(el, "intro"), childText(el, "introText")),
	}
	for _, m := range el.SelectElements("member") {
		if ref := m.SelectAttrValue("refId", ""); ref != "" {
			c.MemberRefs = append(c.MemberRefs, ref)
		}
	}
	return c
}

func parseMember(el *etree.Element) domain.Member {
	m := domain.Member{
		ID:        el.SelectAttrValue("id", ""),
		Title:     childText(el, "title"),
		IntroText: childText(el, "introText"),
		Link:      childText(el, "link"),
	}
	if img := el.SelectElement("image"); img != nil {
		m.ImageRef = img.SelectAttrValue("refId", "")
		m.ImageCrop = img.SelectAttrValue("crop", "")
	}
	return m
}

// ParseTranscript returns the paragraphs of a transcript document.
func ParseTranscript(r io.Reader) ([]string, error) {
	root, err := readDocument(r)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, p := range root.SelectElements("paragraph") {
		out = append(out, innerXML(p))
	}
	return out, nil
}

func text(el *etree.Element) string {
	return strings.TrimSpace(el.Text())
}

func childText(el *etree.Element, tag string) string {
	if c := el.SelectElement(tag); c != nil {
		return text(c)
	}
	return ""
}

// innerXML returns the content of el. Paragraph bodies normally arrive as
// escaped text or CDATA; inline markup is serialized back.
func innerXML(el *etree.Element) string {
	if len(el.ChildElements()) == 0 {
		return strings.TrimSpace(el.Text())
	}
	var sb strings.Builder
	for _, tok := range el.Child {
		switch t := tok.(type) {
		case *etree.CharData:
			sb.WriteString(t.Data)
		case *etree.Element:
			d := etree.NewDocument()
			d.SetRoot(t.Copy())
			if s, err := d.WriteToString(); err == nil {
				sb.WriteString(s)
			}
		}
	}
	return strings.TrimSpace(sb.String())
}

func atoi(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

func isTrue(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), "true")
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
