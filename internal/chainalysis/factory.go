package chainalysis

import (
	"net/http"
	"strings"
	"time"
)

// NewProvider constructs the HTTP risk API client and wraps it with a rate
// limiter. Validation is centralized in NewHTTPProvider (after trimming
// whitespace) to keep behavior in one place. timeout bounds each request;
// there is no retry layer, since a failed call is skipped by the screening
// loop rather than repeated.
func NewProvider(baseURL, token string, rateLimit int, timeout time.Duration) (Provider, error) {
	client := &http.Client{Timeout: timeout}
	if timeout <= 0 {
		client.Timeout = defaultTimeout
	}
	base, err := NewHTTPProvider(strings.TrimSpace(baseURL), token, client)
	if err != nil {
		return nil, err
	}
	return WrapWithLimiter(base, NewLimiter(rateLimit)), nil
}
