// Package npr is the NPR Story API client: story queries on the pull host,
// story pushes and deletes on the push host.
package npr

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"nprstory/internal/nprml"
	"nprstory/internal/transport"
)

const (
	SourceID       = "npr"
	DefaultPullURL = "https://api.npr.org"

	nprmlContentType = "application/xml; charset=utf-8"
)

// Config holds the Story API endpoints and credentials.
type Config struct {
	PullURL string
	PushURL string
	APIKey  string
}

// Doer is the HTTP capability the client needs.
type Doer interface {
	Get(ctx context.Context, url string) (*transport.Response, error)
	Post(ctx context.Context, url, contentType string, body []byte) (*transport.Response, error)
	Delete(ctx context.Context, url string) (*transport.Response, error)
}

type Client struct {
	http    Doer
	pullURL string
	pushURL string
	apiKey  string
	logger  *slog.Logger
}

func New(cfg Config, http Doer, logger *slog.Logger) *Client {
	pull := strings.TrimRight(cfg.PullURL, "/")
	if pull == "" {
		pull = DefaultPullURL
	}
	push := strings.TrimRight(cfg.PushURL, "/")
	if push == "" {
		push = pull
	}
	return &Client{
		http:    http,
		pullURL: pull,
		pushURL: push,
		apiKey:  cfg.APIKey,
		logger:  logger.With("source", SourceID),
	}
}

// IsPullQuery reports whether q is a full query URL on the pull host.
func (c *Client) IsPullQuery(q string) bool {
	lq := strings.ToLower(q)
	return strings.Contains(lq, strings.ToLower(c.pullURL)) && strings.Contains(lq, "query")
}

// QueryByID fetches stories by id, topic or list id.
func (c *Client) QueryByID(ctx context.Context, id string) (*nprml.Result, error) {
	params := url.Values{}
	params.Set("id", id)
	params.Set("apiKey", c.apiKey)
	return c.query(ctx, c.pullURL+"/query?"+params.Encode())
}

// QueryByURL runs a saved query URL, adding the API key when the URL lacks one.
func (c *Client) QueryByURL(ctx context.Context, rawURL string) (*nprml.Result, error) {
	if !strings.Contains(strings.ToLower(rawURL), "apikey=") {
		sep := "&"
		if !strings.Contains(rawURL, "?") {
			sep = "?"
		}
		rawURL += sep + "apiKey=" + url.QueryEscape(c.apiKey)
	}
	return c.query(ctx, rawURL)
}

func (c *Client) query(ctx context.Context, rawURL string) (*nprml.Result, error) {
	c.logger.Debug("querying story api", "url", redact(rawURL))

	resp, err := c.http.Get(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("query stories: %w", err)
	}
	if err := transport.Check(redact(rawURL), resp); err != nil {
		return nil, fmt.Errorf("query stories: %w", err)
	}
	if len(resp.Body) == 0 {
		return &nprml.Result{}, nil
	}

	res, err := nprml.Parse(bytes.NewReader(resp.Body))
	if err != nil {
		return nil, fmt.Errorf("parse query response: %w", err)
	}
	return res, nil
}

// PushStory posts an NPRML document to {push}/story with the given query
// parameters. The response is returned whatever its status.
func (c *Client) PushStory(ctx context.Context, document []byte, params url.Values) (*transport.Response, string, error) {
	target := c.pushURL + "/story?" + params.Encode()
	c.logger.Debug("pushing story", "url", redact(target), "bytes", len(document))

	resp, err := c.http.Post(ctx, target, nprmlContentType, document)
	if err != nil {
		return nil, redact(target), fmt.Errorf("push story: %w", err)
	}
	return resp, redact(target), nil
}

// DeleteStory removes a story from {push}/story.
func (c *Client) DeleteStory(ctx context.Context, params url.Values) (*transport.Response, error) {
	target := c.pushURL + "/story?" + params.Encode()
	c.logger.Debug("deleting story", "url", redact(target))

	resp, err := c.http.Delete(ctx, target)
	if err != nil {
		return nil, fmt.Errorf("delete story: %w", err)
	}
	return resp, nil
}

// redact hides the API key in logged URLs.
func redact(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	q := u.Query()
	if q.Has("apiKey") {
		q.Set("apiKey", "REDACTED")
		u.RawQuery = q.Encode()
	}
	return u.String()
}
