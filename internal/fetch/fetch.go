// Package fetch retrieves a single signature file over HTTP(S).
//
// A Fetcher performs exactly one GET per call and returns the whole body.
// There is no retry and no partial result: either every byte arrives or an
// error of class Error is returned.
package fetch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/zeebo/errs"
)

const (
	// DefaultUserAgent is the User-Agent header sent with requests
	DefaultUserAgent = "minisig64/1.0"
	// MaxRedirects bounds how many redirects a request may follow
	MaxRedirects = 10
)

// Error classifies every failure to obtain the remote bytes.
var Error = errs.Class("fetch")

// Fetcher downloads a URL into memory.
type Fetcher struct {
	client    *http.Client
	userAgent string
	logger    *slog.Logger
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout bounds the whole request. Zero means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.client.Timeout = d
	}
}

// WithUserAgent overrides DefaultUserAgent.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		if ua != "" {
			f.userAgent = ua
		}
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(f *Fetcher) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// WithTransport replaces the HTTP transport (used by tests).
func WithTransport(rt http.RoundTripper) Option {
	return func(f *Fetcher) {
		f.client.Transport = rt
	}
}

// New creates a Fetcher
func New(opts ...Option) *Fetcher {
	f := &Fetcher{
		client: &http.Client{
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= MaxRedirects {
					return fmt.Errorf("stopped after %d redirects", MaxRedirects)
				}
				return nil
			},
		},
		userAgent: DefaultUserAgent,
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch performs a single GET of url and returns the full response body.
// Any 2xx status is success.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, Error.Wrap(fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("User-Agent", f.userAgent)

	start := time.Now()
	f.logger.Debug("fetching", "url", url)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, Error.Wrap(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return nil, Error.New("%s: unexpected status %s", url, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, Error.Wrap(fmt.Errorf("read body: %w", err))
	}

	f.logger.Debug("fetched",
		"url", url,
		"status", resp.StatusCode,
		"size", humanize.Bytes(uint64(len(data))),
		"elapsed", time.Since(start).Round(time.Millisecond),
	)
	return data, nil
}
