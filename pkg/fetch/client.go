// Package fetch retrieves option metadata from REST endpoints and normalizes
// the payload into an options.List.
package fetch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/estatedesk/optionkit/pkg/options"
)

// Endpoint describes where option records live.
type Endpoint struct {
	URL    string
	Method string
	// ResultsPath is a dotted path to the records array inside the payload.
	// Empty means the payload itself.
	ResultsPath string
	// ValueField and LabelField are dotted paths inside each record. When
	// ValueField is empty the records go through the normalizer's fallback
	// keys unchanged.
	ValueField string
	LabelField string
	Params     map[string]string
}

// Client fetches option lists over HTTP.
type Client struct {
	http       *http.Client
	normalizer *options.Normalizer
	logger     *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides http.DefaultClient.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.http = client
		}
	}
}

// WithNormalizer normalizes payloads with n.
func WithNormalizer(n *options.Normalizer) Option {
	return func(c *Client) {
		if n != nil {
			c.normalizer = n
		}
	}
}

// WithLogger logs requests at debug level.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New constructs a Client.
func New(opts ...Option) *Client {
	c := &Client{
		http:   http.DefaultClient,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(c)
	}
	if c.normalizer == nil {
		c.normalizer = options.NewNormalizer(options.WithLogger(c.logger))
	}
	return c
}

// Fetch requests the endpoint and normalizes the value found at ResultsPath.
// A missing path yields an empty list; transport, status and decode
// problems are returned as errors.
func (c *Client) Fetch(ctx context.Context, ep Endpoint) (options.List, error) {
	if ctx == nil {
		return nil, errors.New("fetch: context is required")
	}
	rawURL := strings.TrimSpace(ep.URL)
	if rawURL == "" {
		return nil, errors.New("fetch: endpoint url is required")
	}
	reqURL, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("fetch: parse url: %w", err)
	}
	q := reqURL.Query()
	for k, v := range ep.Params {
		q.Set(k, v)
	}
	reqURL.RawQuery = q.Encode()

	method := strings.ToUpper(strings.TrimSpace(ep.Method))
	if method == "" {
		method = http.MethodGet
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("fetch: request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("fetch: requesting options",
		zap.String("method", method),
		zap.String("url", reqURL.String()))

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: do request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{Code: resp.StatusCode, URL: reqURL.String()}
	}

	var payload any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("fetch: decode: %w", err)
	}

	node := resolvePath(payload, ep.ResultsPath)
	if strings.TrimSpace(ep.ValueField) != "" {
		items, _ := node.([]any)
		node = project(items, ep.ValueField, ep.LabelField)
	}
	return c.normalizer.Normalize(node), nil
}

// StatusError reports a non-2xx response.
type StatusError struct {
	Code int
	URL  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("fetch: unexpected status %d from %s", e.Code, e.URL)
}

// StatusCode returns the HTTP status of the failed response.
func (e *StatusError) StatusCode() int { return e.Code }

// CacheKey identifies an endpoint for callers that memoize results.
func CacheKey(ep Endpoint) string {
	var b strings.Builder
	method := strings.ToUpper(strings.TrimSpace(ep.Method))
	if method == "" {
		method = http.MethodGet
	}
	b.WriteString(method)
	b.WriteString(" ")
	b.WriteString(ep.URL)
	if len(ep.Params) > 0 {
		keys := make([]string, 0, len(ep.Params))
		for k := range ep.Params {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			b.WriteString(";")
			b.WriteString(k)
			b.WriteString("=")
			b.WriteString(ep.Params[k])
		}
	}
	return b.String()
}

// resolvePath walks a dotted path through decoded JSON objects. Whatever sits
// at the end goes to the normalizer, so records, scalars arrays and
// "code:label" strings are all accepted.
func resolvePath(payload any, path string) any {
	cur := payload
	if path = strings.TrimSpace(path); path == "" {
		return cur
	}
	for _, segment := range strings.Split(path, ".") {
		node, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		cur = node[segment]
	}
	return cur
}

// project maps records onto {value,label} using explicit field paths and
// drops records without a value.
func project(items []any, valueField, labelField string) []any {
	out := make([]any, 0, len(items))
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		val := pickValue(obj, valueField)
		if val == "" {
			continue
		}
		lbl := pickValue(obj, labelField)
		if lbl == "" {
			lbl = val
		}
		out = append(out, map[string]any{"value": val, "label": lbl})
	}
	return out
}

func pickValue(m map[string]any, path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return ""
	}
	cur := any(m)
	for _, segment := range strings.Split(path, ".") {
		node, ok := cur.(map[string]any)
		if !ok {
			return ""
		}
		cur = node[segment]
	}
	return options.String(cur)
}
