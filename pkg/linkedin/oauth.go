package linkedin

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// oauthBaseURL hosts the authorization-code endpoints, which live on
// www.linkedin.com rather than the API host. Overridden in tests.
var oauthBaseURL = "https://www.linkedin.com"

// Scope needed to post to a personal profile.
var oauthScopes = []string{"w_member_social"}

// AuthorizationURL builds the browser URL that starts the
// authorization-code flow.
func AuthorizationURL(clientID, redirectURI, state string) string {
	params := url.Values{}
	params.Set("response_type", "code")
	params.Set("client_id", clientID)
	params.Set("redirect_uri", redirectURI)
	params.Set("scope", strings.Join(oauthScopes, " "))
	params.Set("state", state)

	return oauthBaseURL + "/oauth/v2/authorization?" + params.Encode()
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
	Scope       string `json:"scope"`
}

// ExchangeCode trades an authorization code for an access token.
func ExchangeCode(ctx context.Context, code, clientID, clientSecret, redirectURI string) (*TokenResponse, error) {
	form := url.Values{}
	form.Set("grant_type", "authorization_code")
	form.Set("code", code)
	form.Set("redirect_uri", redirectURI)
	form.Set("client_id", clientID)
	form.Set("client_secret", clientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, oauthBaseURL+"/oauth/v2/accessToken", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("building token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	httpClient := &http.Client{Timeout: 30 * time.Second}
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("token request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, &APIError{Op: "token exchange", StatusCode: resp.StatusCode, Body: string(body)}
	}

	var token TokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return nil, fmt.Errorf("decoding token response: %w", err)
	}

	return &token, nil
}

type OrganizationACL struct {
	Organization string `json:"organization"`
	Role         string `json:"role"`
	State        string `json:"state"`
}

// OrganizationACLs lists organizations the member can act for. Used by
// the token helper to hint at org posting setup; a failure here is not
// fatal to the flow.
func (c *Client) OrganizationACLs(ctx context.Context) ([]OrganizationACL, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/organizationAcls?q=roleAssignee", nil)
	if err != nil {
		return nil, fmt.Errorf("building organization ACL request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("X-Restli-Protocol-Version", restliProtocol)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("organization ACL request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, &APIError{Op: "organization ACLs", StatusCode: resp.StatusCode, Body: string(body)}
	}

	var parsed struct {
		Elements []OrganizationACL `json:"elements"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decoding organization ACL response: %w", err)
	}

	return parsed.Elements, nil
}
