package nprml

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/beevik/etree"

	"nprstory/internal/layout"
)

// PushResponse is the envelope returned by the push endpoint: either a
// story id on success or an error message.
type PushResponse struct {
	StoryID string
	Message string
}

// ParsePushResponse understands both <list><story id="..."> and
// <message><text>...</text></message> shapes.
func ParsePushResponse(r io.Reader) (PushResponse, error) {
	root, err := readDocument(r)
	if err != nil {
		return PushResponse{}, err
	}

	var resp PushResponse
	if list := root.SelectElement("list"); list != nil {
		if story := list.SelectElement("story"); story != nil {
			resp.StoryID = story.SelectAttrValue("id", "")
		}
	}
	if msg := root.SelectElement("message"); msg != nil {
		resp.Message = childText(msg, "text")
	}
	if resp.StoryID == "" && resp.Message == "" {
		return resp, ErrNoStory
	}
	return resp, nil
}

// OutgoingStory is a local post prepared for the push endpoint.
type OutgoingStory struct {
	PartnerID string
	Title     string
	Teaser    string
	Date      time.Time
	HTMLLink  string
	Bylines   []string
	Body      string
}

var paragraphSplit = regexp.MustCompile(`\n\s*\n|</p>\s*`)

// BuildDocument serializes a story into an NPRML push document.
func BuildDocument(s OutgoingStory) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("nprml")
	root.CreateAttr("version", "0.93")
	story := root.CreateElement("list").CreateElement("story")

	if s.PartnerID != "" {
		story.CreateElement("partnerId").SetText(s.PartnerID)
	}
	if s.HTMLLink != "" {
		l := story.CreateElement("link")
		l.CreateAttr("type", "html")
		l.SetText(s.HTMLLink)
	}
	story.CreateElement("title").SetText(s.Title)
	story.CreateElement("teaser").SetText(s.Teaser)
	if !s.Date.IsZero() {
		date := s.Date.Format(time.RFC1123Z)
		story.CreateElement("storyDate").SetText(date)
		story.CreateElement("pubDate").SetText(date)
		story.CreateElement("lastModifiedDate").SetText(date)
	}
	for _, name := range s.Bylines {
		if name = strings.TrimSpace(name); name != "" {
			story.CreateElement("byline").CreateElement("name").SetText(name)
		}
	}

	textEl := story.CreateElement("text")
	htmlEl := story.CreateElement("textWithHtml")
	num := 1
	for _, p := range paragraphSplit.Split(s.Body, -1) {
		p = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(p), "<p>"))
		if p == "" {
			continue
		}
		plain := textEl.CreateElement("paragraph")
		plain.CreateAttr("num", strconv.Itoa(num))
		plain.SetText(layout.StripTags(p))

		rich := htmlEl.CreateElement("paragraph")
		rich.CreateAttr("num", strconv.Itoa(num))
		writeCData(rich, p)
		num++
	}

	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("write nprml: %w", err)
	}
	return out, nil
}

// writeCData adds s as CDATA, splitting any "]]>" across two sections so
// the terminator never appears inside one.
func writeCData(el *etree.Element, s string) {
	parts := strings.Split(s, "]]>")
	for i, part := range parts {
		if i > 0 {
			part = ">" + part
		}
		if i < len(parts)-1 {
			part += "]]"
		}
		if part != "" {
			el.CreateCData(part)
		}
	}
}
