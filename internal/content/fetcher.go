package content

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"tldr/internal/domain"

	"golang.org/x/net/html/charset"
)

const (
	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
		"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/127.0.0.0 Safari/537.36"

	DefaultFetchTimeout      = 15 * time.Second
	DefaultFetchMaxBodyBytes = 10 << 20
)

// ErrFetch is returned for every failure to retrieve a document. Callers
// must not branch on the wrapped cause.
var ErrFetch = errors.New("fetch failed")

type Fetcher struct {
	client       *http.Client
	maxBodyBytes int64
	log          *slog.Logger
}

func NewFetcher(timeout time.Duration, maxBodyBytes int64, log *slog.Logger) *Fetcher {
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	if maxBodyBytes <= 0 {
		maxBodyBytes = DefaultFetchMaxBodyBytes
	}

	return &Fetcher{
		client:       &http.Client{Timeout: timeout},
		maxBodyBytes: maxBodyBytes,
		log:          log,
	}
}

// Fetch retrieves the HTML body of pageURL in a single attempt.
func (f *Fetcher) Fetch(ctx context.Context, pageURL string) (domain.FetchedDocument, error) {
	body, err := f.fetch(ctx, pageURL)
	if err != nil {
		return domain.FetchedDocument{}, fmt.Errorf("%w: %w", ErrFetch, err)
	}

	return domain.FetchedDocument{URL: pageURL, HTML: body}, nil
}

func (f *Fetcher) fetch(ctx context.Context, pageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req) //nolint:gosec // URL is supplied by the caller on purpose
	if err != nil {
		return "", fmt.Errorf("do request: %w", err)
	}
	defer func() {
		if err = resp.Body.Close(); err != nil {
			f.log.ErrorContext(ctx, "Failed to close response body",
				"error", err,
				"pageURL", pageURL)
		}
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", fmt.Errorf("do request: unexpected status: %d", resp.StatusCode)
	}

	limited := io.LimitReader(resp.Body, f.maxBodyBytes)

	reader, err := charset.NewReader(limited, resp.Header.Get("Content-Type"))
	if err != nil {
		return "", fmt.Errorf("create charset reader: %w", err)
	}

	body, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}

	return string(body), nil
}
