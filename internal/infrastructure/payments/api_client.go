package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"
)

const maxResponseBodyBytes = 1 << 20

// apiError is a non-2xx provider response. Body is truncated to maxResponseBodyBytes.
type apiError struct {
	StatusCode int
	Body       string
}

func (e *apiError) Error() string {
	return fmt.Sprintf("status=%d body=%s", e.StatusCode, e.Body)
}

func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &http.Client{Timeout: timeout}
}

type apiClient struct {
	httpClient *http.Client
}

func newAPIClient(httpClient *http.Client) apiClient {
	if httpClient == nil {
		httpClient = NewHTTPClient(0)
	}
	return apiClient{httpClient: httpClient}
}

func (c apiClient) doJSON(ctx context.Context, method, url string, headers map[string]string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return c.do(req, out)
}

func (c apiClient) doForm(ctx context.Context, url, username, password string, form string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(form))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.SetBasicAuth(username, password)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	return c.do(req, out)
}

func (c apiClient) do(req *http.Request, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodyBytes))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &apiError{StatusCode: resp.StatusCode, Body: string(raw)}
	}
	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s response: %w", req.URL.Path, err)
	}
	return nil
}

// tokenCache keeps one OAuth access token and refreshes it a minute before expiry.
type tokenCache struct {
	mu        sync.Mutex
	token     string
	expiresAt time.Time
}

type tokenFetcher func(ctx context.Context) (token string, ttl time.Duration, err error)

func (t *tokenCache) get(ctx context.Context, now time.Time, fetch tokenFetcher) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.token != "" && now.Before(t.expiresAt) {
		return t.token, nil
	}
	token, ttl, err := fetch(ctx)
	if err != nil {
		return "", err
	}
	const margin = time.Minute
	if ttl > 2*margin {
		ttl -= margin
	}
	t.token = token
	t.expiresAt = now.Add(ttl)
	return token, nil
}

func (t *tokenCache) reset() {
	t.mu.Lock()
	t.token = ""
	t.expiresAt = time.Time{}
	t.mu.Unlock()
}

// dropIfUnauthorized forgets the cached token when the provider answered 401,
// so the next call fetches a fresh one.
func (t *tokenCache) dropIfUnauthorized(err error) {
	var apiErr *apiError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized {
		t.reset()
	}
}

// flexString accepts a JSON string or number. ePayco and Nequi send response
// codes and amounts as either depending on the endpoint.
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*f = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}

func (f flexString) String() string { return strings.TrimSpace(string(f)) }
