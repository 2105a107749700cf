// Package transcript fetches story transcripts and renders them as a block
// appended to the story body.
package transcript

import (
	"bytes"
	"context"
	"log/slog"
	"strings"

	"nprstory/internal/domain"
	"nprstory/internal/layout"
	"nprstory/internal/nprml"
	"nprstory/internal/transport"
)

const header = `<div class="npr-transcript"><p><strong>Transcript :</strong></p>`

type Getter interface {
	Get(ctx context.Context, url string) (*transport.Response, error)
}

type Fetcher struct {
	http   Getter
	logger *slog.Logger
}

func NewFetcher(http Getter, logger *slog.Logger) *Fetcher {
	return &Fetcher{
		http:   http,
		logger: logger.With("component", "transcript"),
	}
}

// Fetch renders one transcript block per api link that yields paragraphs.
// A link that cannot be fetched or parsed is logged and skipped.
func (f *Fetcher) Fetch(ctx context.Context, transcripts domain.Many[domain.Transcript]) string {
	var b strings.Builder
	for _, t := range transcripts {
		for _, link := range t.Links {
			if link.Type != "api" || link.Value == "" {
				continue
			}
			b.WriteString(f.fetchLink(ctx, link.Value))
		}
	}
	return b.String()
}

func (f *Fetcher) fetchLink(ctx context.Context, url string) string {
	resp, err := f.http.Get(ctx, url)
	if err != nil {
		f.logger.Error("request transcript", "url", url, "error", err)
		return ""
	}
	if err := transport.Check(url, resp); err != nil {
		f.logger.Error("request transcript", "url", url, "error", err)
		return ""
	}

	paragraphs, err := nprml.ParseTranscript(bytes.NewReader(resp.Body))
	if err != nil {
		f.logger.Warn("parse transcript", "url", url, "error", err)
		return ""
	}
	if len(paragraphs) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(header)
	for _, p := range paragraphs {
		b.WriteString(layout.FormatParagraph(p))
		b.WriteString("\n")
	}
	b.WriteString("</div>")
	return b.String()
}
