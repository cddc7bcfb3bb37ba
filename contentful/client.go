package contentful

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
)

const maxResponseSize = 16 << 20 // 16MB

// Client reads entries from one Contentful API host.
type Client struct {
	baseURL string
	space   string
	env     string
	token   string
	preview bool
	http    *http.Client
	cache   Cache
}

// Preview reports whether the client reads draft content.
func (c *Client) Preview() bool { return c.preview }

func (c *Client) entriesURL(q Query) string {
	return fmt.Sprintf("%s/spaces/%s/environments/%s/entries?%s",
		strings.TrimRight(c.baseURL, "/"),
		url.PathEscape(c.space),
		url.PathEscape(c.env),
		q.Values().Encode())
}

// Entries fetches one page of entries matching q with links resolved to
// the query's include depth.
func (c *Client) Entries(ctx context.Context, q Query) (*EntryCollection, error) {
	body, err := c.get(ctx, c.entriesURL(q))
	if err != nil {
		return nil, err
	}
	var resp entriesResponse
	dec := json.NewDecoder(bytes.NewReader(body))
	if err := dec.Decode(&resp); err != nil {
		return nil, fmt.Errorf("contentful: decode entries: %w", err)
	}

	l := newLinker(&resp)
	out := &EntryCollection{
		Total: resp.Total,
		Skip:  resp.Skip,
		Limit: resp.Limit,
		Items: make([]*Entry, 0, len(resp.Items)),
	}
	for _, it := range resp.Items {
		out.Items = append(out.Items, l.entry(it, q.include()))
	}
	return out, nil
}

func (c *Client) get(ctx context.Context, u string) ([]byte, error) {
	if c.cache != nil {
		if b, ok := c.cache.Get(ctx, u); ok {
			return b, nil
		}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("contentful: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("contentful: get %s: %w", req.URL.Path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("contentful: read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newAPIError(u, resp, body)
	}
	if c.cache != nil {
		c.cache.Set(ctx, u, body)
	}
	return body, nil
}

// Clients holds the delivery client and, when a preview token is
// configured, the preview client. Build it once with New and pass it to
// consumers; call Close on shutdown.
type Clients struct {
	delivery *Client
	preview  *Client
	http     *http.Client
	cache    Cache

	closeOnce sync.Once
	closeErr  error
}

// New validates cfg and constructs the clients. Missing credentials are a
// configuration error.
func New(cfg Config) (*Clients, error) {
	cfg.setDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	hc := cfg.HTTPClient
	if hc == nil {
		hc = NewHTTPClient(cfg.RetryMax, cfg.Timeout)
	}

	cs := &Clients{http: hc, cache: cfg.Cache}
	cs.delivery = &Client{
		baseURL: cfg.DeliveryURL,
		space:   cfg.SpaceID,
		env:     cfg.Environment,
		token:   cfg.AccessToken,
		http:    hc,
		cache:   cfg.Cache,
	}
	if cfg.PreviewToken != "" {
		// Draft content is never cached.
		cs.preview = &Client{
			baseURL: cfg.PreviewURL,
			space:   cfg.SpaceID,
			env:     cfg.Environment,
			token:   cfg.PreviewToken,
			preview: true,
			http:    hc,
		}
	}
	return cs, nil
}

// Client returns the preview client when preview is true, otherwise the
// delivery client.
func (cs *Clients) Client(preview bool) (*Client, error) {
	if !preview {
		return cs.delivery, nil
	}
	if cs.preview == nil {
		return nil, ErrPreviewUnavailable
	}
	return cs.preview, nil
}

// PreviewEnabled reports whether a preview token was configured.
func (cs *Clients) PreviewEnabled() bool { return cs.preview != nil }

// Entries fetches entries from the delivery or preview API.
func (cs *Clients) Entries(ctx context.Context, preview bool, q Query) (*EntryCollection, error) {
	c, err := cs.Client(preview)
	if err != nil {
		return nil, err
	}
	return c.Entries(ctx, q)
}

// Close releases idle connections and the response cache. It is safe to
// call more than once.
func (cs *Clients) Close() error {
	cs.closeOnce.Do(func() {
		cs.http.CloseIdleConnections()
		if cs.cache != nil {
			cs.closeErr = cs.cache.Close()
		}
	})
	return cs.closeErr
}
