package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Kind categorizes fetch failures for the orchestrator's error mapping.
type Kind int

const (
	KindUnknown Kind = iota
	KindInvalidURL
	KindUnreachable
	KindTimeout
	KindTooLarge
	KindTooManyRedirects
)

// Error is a typed fetch-stage failure.
type Error struct {
	Kind  Kind
	Cause error
}

func (e *Error) Error() string {
	msg := "fetch failed"
	switch e.Kind {
	case KindInvalidURL:
		msg = "invalid url"
	case KindUnreachable:
		msg = "target unreachable"
	case KindTimeout:
		msg = "fetch timed out"
	case KindTooLarge:
		msg = "response too large"
	case KindTooManyRedirects:
		msg = "too many redirects"
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Cause }

// Result is a successful fetch. Non-2xx statuses are still results: the
// status code itself is a signal consumed downstream.
type Result struct {
	Body        []byte
	FinalURL    string
	StatusCode  int
	ContentType string
}

// Fetcher retrieves the raw HTML of a target URL.
type Fetcher interface {
	Fetch(ctx context.Context, rawURL string) (*Result, error)
}

const (
	maxRedirects   = 5
	maxBodyBytes   = 2 << 20 // 2 MiB
	defaultTimeout = 10 * time.Second
	userAgent      = "SEODiagnosticBot/1.0"
)

// Client is the production Fetcher. It enforces the timeout, the redirect
// cap, and the response size cap.
type Client struct {
	client  *http.Client
	maxBody int64
}

// NewClient returns a Client with the given timeout; zero means the default.
func NewClient(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
				TLSHandshakeTimeout: 10 * time.Second,
			},
			CheckRedirect: redirectPolicy,
		},
		maxBody: maxBodyBytes,
	}
}

func redirectPolicy(req *http.Request, via []*http.Request) error {
	if len(via) >= maxRedirects {
		return &Error{Kind: KindTooManyRedirects}
	}
	if req.URL.Scheme != "http" && req.URL.Scheme != "https" {
		return &Error{Kind: KindInvalidURL, Cause: fmt.Errorf("redirect to %s scheme", req.URL.Scheme)}
	}
	return nil
}

// Fetch retrieves the page. The scheme is validated before any network call.
func (c *Client) Fetch(ctx context.Context, rawURL string) (*Result, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil || !parsed.IsAbs() || parsed.Host == "" {
		return nil, &Error{Kind: KindInvalidURL, Cause: err}
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, &Error{Kind: KindInvalidURL, Cause: fmt.Errorf("unsupported scheme %q", parsed.Scheme)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, parsed.String(), nil)
	if err != nil {
		return nil, &Error{Kind: KindInvalidURL, Cause: err}
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, classify(err)
	}
	defer resp.Body.Close()

	// Read one byte past the cap to tell "exactly at the limit" from "over".
	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody+1))
	if err != nil {
		return nil, classify(err)
	}
	if int64(len(body)) > c.maxBody {
		return nil, &Error{Kind: KindTooLarge}
	}

	return &Result{
		Body:        body,
		FinalURL:    resp.Request.URL.String(),
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
	}, nil
}

// classify maps transport-level failures onto error kinds. Redirect policy
// errors come back wrapped in *url.Error, so unwrap first.
func classify(err error) error {
	var fe *Error
	if errors.As(err, &fe) {
		return fe
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &Error{Kind: KindTimeout, Cause: err}
	}
	var ne interface{ Timeout() bool }
	if errors.As(err, &ne) && ne.Timeout() {
		return &Error{Kind: KindTimeout, Cause: err}
	}
	return &Error{Kind: KindUnreachable, Cause: err}
}
