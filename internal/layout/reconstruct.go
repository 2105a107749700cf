// Package layout rebuilds an HTML body from an NPRML story, following the
// story's layout when it has one and falling back to its paragraphs when it
// does not.
package layout

import (
	"context"
	"html"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"nprstory/internal/domain"
	"nprstory/internal/transport"
)

const (
	jwPlayerHost      = "jwplayer.com"
	embeddedVideoURL  = "https://www.npr.org/embedded-video"
	defaultDateLayout = "January 2, 2006"
)

// Getter fetches a URL. Non-2xx responses are returned, not errors.
type Getter interface {
	Get(ctx context.Context, url string) (*transport.Response, error)
}

type Options struct {
	// UseFeatured skips the primary image in the body; it is shown as the
	// post's featured image instead.
	UseFeatured bool
	// AssetsURL is the base URL the slideshow stylesheet and scripts are
	// served from.
	AssetsURL string
	// DateLayout formats correction dates.
	DateLayout string
}

type Result struct {
	Body         string
	HasLayout    bool
	HasVideo     bool
	HasExternal  bool
	HasSlideshow bool
}

type Reconstructor struct {
	http   Getter
	opts   Options
	logger *slog.Logger
}

func NewReconstructor(http Getter, opts Options, logger *slog.Logger) *Reconstructor {
	if opts.DateLayout == "" {
		opts.DateLayout = defaultDateLayout
	}
	if opts.AssetsURL != "" && !strings.HasSuffix(opts.AssetsURL, "/") {
		opts.AssetsURL += "/"
	}
	return &Reconstructor{
		http:   http,
		opts:   opts,
		logger: logger.With("component", "layout"),
	}
}

// position is one slot of the reading order.
type position struct {
	num int
	typ string
	ref string
}

// render carries the state of one reconstruction.
type render struct {
	story      *domain.Story
	idx        Indexes
	paragraphs map[int]string
	// pending holds inline images not yet placed; each is rendered once.
	pending  map[string]ResolvedImage
	resolved map[string]ResolvedImage
	body     strings.Builder
	result   Result
}

// Reconstruct renders the story body. Every element either renders or is
// skipped; nothing here fails the story.
func (r *Reconstructor) Reconstruct(ctx context.Context, s *domain.Story, useLayout bool) Result {
	st := &render{story: s}

	if useLayout && s.Layout != nil && len(s.Layout.Entries) > 0 {
		st.result.HasLayout = true
		st.idx = BuildIndexes(s)
		st.paragraphs = make(map[int]string, len(s.Paragraphs))
		for i, p := range s.Paragraphs {
			st.paragraphs[i+1] = p.Value
		}
		st.resolved = make(map[string]ResolvedImage, len(st.idx.Images))
		st.pending = make(map[string]ResolvedImage, len(st.idx.Images))
		for id, img := range st.idx.Images {
			st.resolved[id] = ResolveImage(img)
			st.pending[id] = st.resolved[id]
		}

		for _, pos := range positionMap(s.Layout) {
			r.renderPosition(st, pos)
		}
	} else {
		for _, p := range s.Paragraphs {
			st.body.WriteString(FormatParagraph(p.Value))
			st.body.WriteString("\n")
		}
	}

	body := st.body.String()

	if c := s.Correction; c != nil && (c.Title != "" || c.Text != "") {
		body += r.correction(c)
	}

	if file := r.primaryAudio(ctx, s); file != "" {
		body = `[audio mp3="` + file + `"][/audio]` + "\n" + body
	}

	if st.result.HasSlideshow {
		body = `<link rel="stylesheet" href="` + r.opts.AssetsURL + `assets/css/splide.min.css" />` +
			body +
			`<script src="` + r.opts.AssetsURL + `assets/js/splide.min.js"></script>` +
			`<script src="` + r.opts.AssetsURL + `assets/js/splide-settings.js"></script>`
	}

	st.result.Body = decodeEntities(body)
	return st.result
}

// positionMap flattens the layout into reading order. Entries are grouped
// by type in order of first appearance and merged into one map keyed by
// position, so the last entry written to a position wins.
func positionMap(l *domain.Layout) []position {
	var order []string
	groups := make(map[string][]domain.LayoutEntry)
	for _, e := range l.Entries {
		if _, ok := groups[e.Type]; !ok {
			order = append(order, e.Type)
		}
		groups[e.Type] = append(groups[e.Type], e)
	}

	byNum := make(map[int]position)
	for _, typ := range order {
		for _, e := range groups[typ] {
			ref := e.RefID
			if typ == domain.LayoutText {
				ref = strconv.Itoa(e.ParagraphNum)
			}
			byNum[e.Num] = position{num: e.Num, typ: typ, ref: ref}
		}
	}

	out := make([]position, 0, len(byNum))
	for _, p := range byNum {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].num < out[j].num })
	return out
}

func (r *Reconstructor) renderPosition(st *render, pos position) {
	var fragment string
	switch pos.typ {
	case domain.LayoutText:
		fragment = r.text(st, pos.ref)
	case domain.LayoutStaticHTML:
		fragment = r.staticHTML(st, pos.ref)
	case domain.LayoutExternalAsset:
		fragment = r.externalAsset(st, pos.ref)
	case domain.LayoutMultimedia:
		fragment = r.multimedia(st, pos.ref)
	case domain.LayoutContainer:
		fragment = r.container(st, pos.ref)
	case domain.LayoutList:
		fragment = r.list(st, pos.ref)
	default:
		fragment = r.image(st, pos.ref)
	}
	if fragment == "" {
		r.logger.Debug("layout element skipped", "story_id", st.story.ID, "type", pos.typ, "ref", pos.ref)
		return
	}
	st.body.WriteString(fragment)
}

func (r *Reconstructor) text(st *render, ref string) string {
	n, err := strconv.Atoi(ref)
	if err != nil {
		return ""
	}
	p, ok := st.paragraphs[n]
	if !ok {
		return ""
	}
	return FormatParagraph(p) + "\n"
}

func (r *Reconstructor) staticHTML(st *render, ref string) string {
	asset, ok := st.idx.HTMLAssets[ref]
	if !ok || asset.Value == "" {
		return ""
	}
	st.result.HasExternal = true
	if strings.Contains(asset.Value, jwPlayerHost) {
		st.result.HasVideo = true
	}
	return asset.Value + "\n\n"
}

func (r *Reconstructor) externalAsset(st *render, ref string) string {
	asset, ok := st.idx.ExternalAssets[ref]
	if !ok {
		return ""
	}
	figClass := "wp-block-embed"
	if strings.EqualFold(asset.Type, "youtube") {
		st.result.HasVideo = true
		figClass += " is-type-video"
	}
	return `<figure class="` + figClass + `"><div class="wp-block-embed__wrapper">` + "\n" +
		asset.URL + "\n" +
		"</div>" + figcaption(asset.Credit, asset.Caption) + "</figure>\n"
}

func (r *Reconstructor) multimedia(st *render, ref string) string {
	mm, ok := st.idx.Multimedia[ref]
	if !ok || !mm.Permissions.EmbedAllowed() {
		return ""
	}
	st.result.HasVideo = true
	storyID, _ := strconv.Atoi(st.story.ID)
	src := embeddedVideoURL + "?storyId=" + strconv.Itoa(storyID) + "&mediaId=" + ref + "&jwMediaType=music"
	return `<figure class="wp-block-embed is-type-video"><div class="wp-block-embed__wrapper">` +
		`<div style="padding-bottom: 56.25%; position:relative; height:0;">` +
		`<iframe src="` + src + `" frameborder="0" scrolling="no" ` +
		`style="position:absolute; top:0; left:0; width:100%; height:100%;" marginwidth="0" marginheight="0"></iframe>` +
		`</div></div>` + figcaption(mm.Credit, mm.Caption) + "</figure>\n"
}

func (r *Reconstructor) container(st *render, ref string) string {
	c, ok := st.idx.Containers[ref]
	if !ok {
		return ""
	}
	figClass := "npr-container"
	if c.ColSpan > 0 && c.ColSpan < 4 {
		figClass += " npr-container-col-1"
	}
	var b strings.Builder
	b.WriteString(`<figure class="wp-block-embed ` + figClass + `"><div class="wp-block-embed__wrapper">`)
	if c.Title != "" {
		b.WriteString("<h2>" + c.Title + "</h2>")
	}
	if c.IntroText != "" {
		b.WriteString("<p>" + c.IntroText + "</p>")
	}
	if rel, ok := st.idx.RelatedLinks[c.LinkRef]; ok {
		b.WriteString(`<p><a href="` + domain.HTMLLink(rel.Links) + `">` + rel.Caption + "</a></p>")
	}
	if lt, ok := st.idx.ListTexts[c.ListTextRef]; ok {
		for _, p := range lt.Paragraphs {
			b.WriteString(p.Value)
		}
	}
	b.WriteString("</div></figure>\n")
	return b.String()
}

func (r *Reconstructor) list(st *render, ref string) string {
	col, ok := st.idx.Collections[ref]
	if !ok {
		return ""
	}
	switch strings.ToLower(col.DisplayType) {
	case "slideshow":
		st.result.HasSlideshow = true
		return r.slideshow(st, col)
	case "simple story":
		return r.simpleStory(st, col)
	}
	return ""
}

func (r *Reconstructor) slideshow(st *render, col domain.Collection) string {
	var b strings.Builder
	b.WriteString(`<figure class="wp-block-image"><div class="splide"><div class="splide__track"><ul class="splide__list">`)
	for _, ref := range col.MemberRefs {
		m, ok := st.idx.Members[ref]
		if !ok || m.ImageRef == "" {
			continue
		}
		img, ok := st.resolved[m.ImageRef]
		if !ok {
			continue
		}
		url := img.URL
		for _, crop := range img.Crops {
			if crop.Type == m.ImageCrop && crop.Src != "" {
				url = crop.Src
			}
		}
		text := img.Title
		if credits := Credits(img.Image); len(credits) > 0 {
			text += " (" + strings.Join(credits, " | ") + ")"
		}
		text = strings.ReplaceAll(text, `"`, "'")
		b.WriteString(`<li class="splide__slide"><a href="` + html.EscapeString(url) + `" target="_blank">` +
			`<img data-splide-lazy="` + html.EscapeString(url) + `" alt="` + html.EscapeString(text) + `"></a>` +
			"<div>" + text + "</div></li>")
	}
	b.WriteString("</ul></div></div>")

	var caption string
	if col.Title != "" {
		caption += "<h3>" + col.Title + "</h3>"
	}
	if col.Intro != "" {
		caption += "<p>" + col.Intro + "</p>"
	}
	if caption != "" {
		b.WriteString("<figcaption>" + caption + "</figcaption>")
	}
	b.WriteString("</figure>\n")
	return b.String()
}

func (r *Reconstructor) simpleStory(st *render, col domain.Collection) string {
	var b strings.Builder
	b.WriteString(`<figure class="wp-block-embed"><div class="wp-block-embed__wrapper"><h2>` + col.Title + "</h2><ul>")
	for _, ref := range col.MemberRefs {
		m, ok := st.idx.Members[ref]
		if !ok {
			continue
		}
		b.WriteString("<li><h3>")
		if m.Link != "" {
			b.WriteString(`<a href="` + m.Link + `" target="_blank">` + m.Title + "</a>")
		} else {
			b.WriteString(m.Title)
		}
		b.WriteString("</h3>")
		if img, ok := st.resolved[m.ImageRef]; ok && img.URL != "" {
			b.WriteString(`<img src="` + img.URL + `" alt="` + html.EscapeString(img.Title) + `" loading="lazy" />`)
		}
		b.WriteString(m.IntroText + "</li>")
	}
	b.WriteString("</ul></div></figure>\n")
	return b.String()
}

func (r *Reconstructor) image(st *render, ref string) string {
	img, ok := st.pending[ref]
	if !ok {
		return ""
	}
	if img.IsPrimary() && r.opts.UseFeatured {
		return ""
	}
	delete(st.pending, ref)
	if img.URL == "" {
		return ""
	}

	figClass := "wp-block-image size-large"
	tag := `<img src="` + img.URL + `"`
	if img.Portrait {
		figClass += " alignright"
		tag += " width=200"
	}
	caption := strings.TrimSpace(img.Caption)
	if caption != "" {
		tag += ` alt="` + strings.ReplaceAll(StripTags(caption), `"`, "'") + `"`
	}
	tag += ">"
	if credits := Credits(img.Image); len(credits) > 0 {
		caption += " <cite>" + strings.Join(credits, " | ") + "</cite>"
	}
	if caption != "" {
		tag += "<figcaption>" + caption + "</figcaption>"
	}
	return `<figure class="` + figClass + `">` + tag + "</figure>\n\n"
}

func (r *Reconstructor) correction(c *domain.Correction) string {
	date := c.Date
	if t, err := domain.ParseDate(c.Date); err == nil {
		date = t.Format(r.opts.DateLayout)
	}
	return `<p class="correction"><strong>` + c.Title + ": <em>" + date + "</em></strong><br />" +
		StripTags(c.Text) + "</p>"
}

func figcaption(credit, caption string) string {
	var out string
	if credit = strings.TrimSpace(credit); credit != "" {
		out += " <cite>" + credit + "</cite>"
	}
	if caption = strings.TrimSpace(caption); caption != "" {
		out += caption
	}
	if out == "" {
		return ""
	}
	return "<figcaption>" + out + "</figcaption>"
}
