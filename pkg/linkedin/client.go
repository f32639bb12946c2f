package linkedin

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

const (
	apiBaseURL     = "https://api.linkedin.com/v2"
	restliProtocol = "2.0.0"
)

// APIError is a non-success response from the LinkedIn API. Op names the
// call that failed; the body is kept for the logs.
type APIError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("linkedin %s failed: status %d: %s", e.Op, e.StatusCode, e.Body)
}

type Client struct {
	accessToken string
	baseURL     string
	httpClient  *http.Client
}

func NewClient(accessToken string) *Client {
	return &Client{
		accessToken: accessToken,
		baseURL:     apiBaseURL,
		httpClient:  &http.Client{Timeout: 30 * time.Second},
	}
}

type UserInfo struct {
	Sub   string `json:"sub"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UserInfo fetches the authenticated member's profile via the OpenID
// userinfo endpoint.
func (c *Client) UserInfo(ctx context.Context) (*UserInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/userinfo", nil)
	if err != nil {
		return nil, fmt.Errorf("building userinfo request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("userinfo request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, &APIError{Op: "userinfo", StatusCode: resp.StatusCode, Body: string(body)}
	}

	var info UserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("decoding userinfo response: %w", err)
	}

	return &info, nil
}

// ResolvePersonURN resolves the posting identity from the access token.
// Resolved fresh every run; nothing is cached.
func (c *Client) ResolvePersonURN(ctx context.Context) (string, error) {
	info, err := c.UserInfo(ctx)
	if err != nil {
		return "", err
	}

	name := info.Name
	if name == "" {
		name = "Unknown"
	}
	slog.Info("authenticated with LinkedIn", "name", name)

	return fmt.Sprintf("urn:li:person:%s", info.Sub), nil
}
