package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// HTTPClient talks to the identity API over HTTP with ambient bearer
// credentials.
type HTTPClient struct {
	baseURL string
	token   string
	httpc   *http.Client
}

// NewHTTPClient builds a client for the API at baseURL.
func NewHTTPClient(baseURL, token string) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		token:   strings.TrimSpace(token),
		httpc:   &http.Client{},
	}
}

// CurrentUser fetches the authenticated identity. Timeout: 8s. A 401/403
// resolves to ErrUnauthenticated; everything else unexpected is an error
// for the caller's soft-fail boundary to absorb.
func (c *HTTPClient) CurrentUser(ctx context.Context) (User, error) {
	ctx, cancel := context.WithTimeout(ctx, 8*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/v1/me", nil)
	if err != nil {
		return User{}, fmt.Errorf("identity: build request: %w", err)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return User{}, fmt.Errorf("identity: lookup: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return User{}, ErrUnauthenticated
	case resp.StatusCode != http.StatusOK:
		return User{}, fmt.Errorf("identity: lookup status %d", resp.StatusCode)
	}

	var u User
	if err := json.NewDecoder(resp.Body).Decode(&u); err != nil {
		return User{}, fmt.Errorf("identity: parse response: %w", err)
	}
	if strings.TrimSpace(u.Email) == "" {
		return User{}, fmt.Errorf("identity: response missing email")
	}
	return u, nil
}
