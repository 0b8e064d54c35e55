package chainalysis

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tbw875/batch-address-screen/internal/logging"
)

const (
	entitiesPath   = "/api/risk/v2/entities"
	defaultTimeout = 60 * time.Second
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// httpProvider is a minimal client for the entity risk API. Requests carry
// a fixed per-call timeout via the injected http.Client and are never
// retried: a failed call means the caller skips that address.
type httpProvider struct {
	baseURL     string
	token       string
	providerLbl string
	hc          httpDoer
}

// NewHTTPProvider constructs a risk API client using the given http.Client
// (or a default one with the standard timeout if nil).
func NewHTTPProvider(baseURL, token string, client *http.Client) (Provider, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("empty base URL")
	}
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}
	return &httpProvider{
		baseURL:     strings.TrimRight(baseURL, "/"),
		token:       token,
		providerLbl: deriveProviderLabel(baseURL),
		hc:          client,
	}, nil
}

// StatusError is returned for non-2xx API responses, carrying the HTTP code
// so callers can log it the way the service reports it.
type StatusError struct {
	Op   string
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("chainalysis %s http %d: %s", e.Op, e.Code, e.Body)
}

func (p *httpProvider) Register(ctx context.Context, address string) error {
	payload, _ := json.Marshal(map[string]string{"address": address})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+entitiesPath, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	p.setHeaders(req)
	resp, err := p.hc.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode/100 != 2 {
		b, _ := io.ReadAll(resp.Body)
		return &StatusError{Op: "register", Code: resp.StatusCode, Body: string(b)}
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

func (p *httpProvider) Entity(ctx context.Context, address string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+entitiesPath+"/"+url.PathEscape(address), nil)
	if err != nil {
		return nil, err
	}
	p.setHeaders(req)
	resp, err := p.hc.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("entity %s: %w", address, err)
	}
	if resp.StatusCode/100 != 2 {
		return nil, &StatusError{Op: "entity", Code: resp.StatusCode, Body: string(body)}
	}
	logging.Logger().Info("entity_fetched",
		"component", "chainalysis.http_provider",
		"provider", p.providerLbl,
		"address", address,
		"status", resp.StatusCode,
	)
	return json.RawMessage(body), nil
}

func (p *httpProvider) setHeaders(req *http.Request) {
	req.Header.Set("token", p.token)
	req.Header.Set("Content-Type", "application/json")
}

// deriveProviderLabel produces a log-safe endpoint label, stripping any
// userinfo the URL may carry.
func deriveProviderLabel(endpoint string) string {
	if endpoint == "" {
		return ""
	}
	if u, err := url.Parse(endpoint); err == nil {
		u.User = nil
		if u.Host != "" {
			return u.Host
		}
		if u.Scheme == "" {
			return endpoint
		}
		return u.String()
	}
	return endpoint
}
