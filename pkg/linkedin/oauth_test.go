package linkedin

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestAuthorizationURL(t *testing.T) {
	raw := AuthorizationURL("client-123", "http://localhost:8000/callback", "bioscope_linkedin_auth")

	parsed, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("authorization URL does not parse: %v", err)
	}

	assert.Equal(t, "/oauth/v2/authorization", parsed.Path)

	q := parsed.Query()
	assert.Equal(t, "code", q.Get("response_type"))
	assert.Equal(t, "client-123", q.Get("client_id"))
	assert.Equal(t, "http://localhost:8000/callback", q.Get("redirect_uri"))
	assert.Equal(t, "w_member_social", q.Get("scope"))
	assert.Equal(t, "bioscope_linkedin_auth", q.Get("state"))
}

func TestExchangeCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/oauth/v2/accessToken", r.URL.Path)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))

		r.ParseForm()
		assert.Equal(t, "authorization_code", r.PostForm.Get("grant_type"))
		assert.Equal(t, "the-code", r.PostForm.Get("code"))
		assert.Equal(t, "client-123", r.PostForm.Get("client_id"))
		assert.Equal(t, "secret-456", r.PostForm.Get("client_secret"))
		assert.Equal(t, "http://localhost:8000/callback", r.PostForm.Get("redirect_uri"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token": "tok-789", "expires_in": 5183999, "scope": "w_member_social"}`))
	}))
	defer srv.Close()

	orig := oauthBaseURL
	oauthBaseURL = srv.URL
	defer func() { oauthBaseURL = orig }()

	token, err := ExchangeCode(context.Background(), "the-code", "client-123", "secret-456", "http://localhost:8000/callback")
	assert.Equal(t, nil, err)
	assert.Equal(t, "tok-789", token.AccessToken)
	assert.Equal(t, 5183999, token.ExpiresIn)
}

func TestExchangeCodeFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": "invalid_grant"}`))
	}))
	defer srv.Close()

	orig := oauthBaseURL
	oauthBaseURL = srv.URL
	defer func() { oauthBaseURL = orig }()

	_, err := ExchangeCode(context.Background(), "stale-code", "client-123", "secret-456", "http://localhost:8000/callback")
	if err == nil {
		t.Fatal("expected error for rejected code exchange")
	}
}

func TestOrganizationACLs(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/organizationAcls", r.URL.Path)
		assert.Equal(t, "roleAssignee", r.URL.Query().Get("q"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"elements": [
			{"organization": "urn:li:organization:12345", "role": "ADMINISTRATOR", "state": "APPROVED"}
		]}`))
	}))
	defer srv.Close()

	client := newTestClient(srv)

	orgs, err := client.OrganizationACLs(context.Background())
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(orgs))
	assert.Equal(t, "urn:li:organization:12345", orgs[0].Organization)
	assert.Equal(t, "ADMINISTRATOR", orgs[0].Role)
}
