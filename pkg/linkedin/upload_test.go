package linkedin

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestRegisterUpload(t *testing.T) {
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/assets", r.URL.Path)
		assert.Equal(t, "registerUpload", r.URL.Query().Get("action"))
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "2.0.0", r.Header.Get("X-Restli-Protocol-Version"))

		json.NewDecoder(r.Body).Decode(&gotBody)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"value": {
				"uploadMechanism": {
					"com.linkedin.digitalmedia.uploading.MediaUploadHttpRequest": {
						"uploadUrl": "https://upload.example.com/u/abc"
					}
				},
				"asset": "urn:li:digitalmediaAsset:C5522AQ"
			}
		}`))
	}))
	defer srv.Close()

	client := newTestClient(srv)

	uploadURL, assetURN, err := client.RegisterUpload(context.Background(), "urn:li:person:xyz")
	assert.Equal(t, nil, err)
	assert.Equal(t, "https://upload.example.com/u/abc", uploadURL)
	assert.Equal(t, "urn:li:digitalmediaAsset:C5522AQ", assetURN)

	// Registration document is the platform's fixed wire format.
	reg, ok := gotBody["registerUploadRequest"].(map[string]any)
	if !ok {
		t.Fatalf("missing registerUploadRequest in body: %v", gotBody)
	}
	assert.Equal(t, "urn:li:person:xyz", reg["owner"])

	recipes, _ := reg["recipes"].([]any)
	assert.Equal(t, 1, len(recipes))
	assert.Equal(t, "urn:li:digitalmediaRecipe:feedshare-image", recipes[0])

	rels, _ := reg["serviceRelationships"].([]any)
	assert.Equal(t, 1, len(rels))
	rel, _ := rels[0].(map[string]any)
	assert.Equal(t, "OWNER", rel["relationshipType"])
	assert.Equal(t, "urn:li:userGeneratedContent", rel["identifier"])
}

func TestRegisterUploadFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte("insufficient permissions"))
	}))
	defer srv.Close()

	client := newTestClient(srv)

	_, _, err := client.RegisterUpload(context.Background(), "urn:li:person:xyz")

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T: %v", err, err)
	}
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
	assert.Equal(t, "register upload", apiErr.Op)
}

func TestUploadImage(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr bool
	}{
		{"accepts 200", http.StatusOK, false},
		{"accepts 201", http.StatusCreated, false},
		{"rejects 500", http.StatusInternalServerError, true},
		{"rejects 400", http.StatusBadRequest, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPut, r.Method)
				assert.Equal(t, "image/jpeg", r.Header.Get("Content-Type"))

				body, _ := io.ReadAll(r.Body)
				assert.Equal(t, "jpeg-bytes", string(body))

				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			client := newTestClient(srv)

			err := client.UploadImage(context.Background(), srv.URL, []byte("jpeg-bytes"))
			if (err != nil) != tt.wantErr {
				t.Errorf("UploadImage() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
