// Package upstream provides the authenticated client for the aggregate admin API
package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"time"

	perr "retroboard/internal/platform/errors"
	"retroboard/internal/platform/logger"

	"github.com/google/uuid"
)

const (
	defaultTimeout = 10 * time.Second
	defaultUA      = "retroboard-api"
	maxBodyBytes   = 1 << 20
)

// TokenSource supplies the admin credential attached to every call
// Injected explicitly so the client never reads ambient global state
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// StaticToken is a TokenSource holding a fixed credential from config
type StaticToken string

// Token implements TokenSource
func (s StaticToken) Token(context.Context) (string, error) {
	if s == "" {
		return "", perr.Unauthorizedf("admin token not configured")
	}
	return string(s), nil
}

// Options configures the Client
type Options struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
}

// Client is a thin GET-JSON client for the aggregate API
// No retries on purpose: a failed fetch is a widget-local error and the
// widget renders its empty state, it never blocks the rest of the board
type Client struct {
	http  *http.Client
	opts  Options
	token TokenSource
	log   logger.Logger
	newID func() string
}

// NewClient creates a new Client with sane defaults
func NewClient(o Options, token TokenSource) *Client {
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	return &Client{
		http:  &http.Client{Timeout: o.Timeout},
		opts:  o,
		token: token,
		log:   *logger.Named("upstream"),
		newID: uuid.NewString,
	}
}

// getJSON issues an authenticated GET and decodes the JSON body into out
// Transport failures map to Unavailable, non-2xx to Upstream, bad JSON to JSON
func (c *Client) getJSON(ctx context.Context, path string, params map[string]string, out any) error {
	u := c.opts.BaseURL + path
	if len(params) > 0 {
		q := url.Values{}
		for k, v := range params {
			q.Set(k, v)
		}
		u += "?" + q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnknown, "upstream new request failed")
	}

	tok, err := c.token.Token(ctx)
	if err != nil {
		return err
	}

	reqID := c.newID()
	req.Header.Set("User-Agent", c.opts.UserAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-ADMIN-TOKEN", tok)
	req.Header.Set("X-Request-ID", reqID)

	start := time.Now()
	resp, err := c.http.Do(req)
	lat := time.Since(start)

	if err != nil {
		if errors.Is(err, context.Canceled) {
			return err
		}
		return perr.Wrapf(err, perr.ErrorCodeUnavailable, "upstream unreachable")
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.log.Error().Err(cerr).Str("path", path).Msg("upstream close body failed")
		}
	}()

	c.log.Debug().
		Str("path", path).
		Str("request_id", reqID).
		Int("status", resp.StatusCode).
		Dur("latency", lat).
		Msg("upstream response")

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return perr.Unauthorizedf("upstream rejected admin token (status %d)", resp.StatusCode)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		// read a small tail for diagnostics then return
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return perr.Upstreamf("upstream status %d on %s body %s", resp.StatusCode, path, string(body))
	}

	b, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnavailable, "upstream read body failed")
	}
	if err := json.Unmarshal(b, out); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeJSON, "upstream malformed response on %s", path)
	}
	return nil
}
