package linkedin

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Image upload is a two-step protocol on LinkedIn's side: the asset must
// be registered first, which yields a short-lived upload URL and the
// durable asset URN referenced by the eventual post. Field names and
// nesting below are the platform's wire format and must not change.

type registerUploadRequest struct {
	RegisterUploadRequest registerUploadBody `json:"registerUploadRequest"`
}

type registerUploadBody struct {
	Recipes              []string              `json:"recipes"`
	Owner                string                `json:"owner"`
	ServiceRelationships []serviceRelationship `json:"serviceRelationships"`
}

type serviceRelationship struct {
	RelationshipType string `json:"relationshipType"`
	Identifier       string `json:"identifier"`
}

type registerUploadResponse struct {
	Value struct {
		UploadMechanism struct {
			MediaUploadHTTPRequest struct {
				UploadURL string `json:"uploadUrl"`
			} `json:"com.linkedin.digitalmedia.uploading.MediaUploadHttpRequest"`
		} `json:"uploadMechanism"`
		Asset string `json:"asset"`
	} `json:"value"`
}

// RegisterUpload declares a feedshare image owned by personURN and
// returns the upload URL and asset URN.
func (c *Client) RegisterUpload(ctx context.Context, personURN string) (uploadURL, assetURN string, err error) {
	payload := registerUploadRequest{
		RegisterUploadRequest: registerUploadBody{
			Recipes: []string{"urn:li:digitalmediaRecipe:feedshare-image"},
			Owner:   personURN,
			ServiceRelationships: []serviceRelationship{
				{RelationshipType: "OWNER", Identifier: "urn:li:userGeneratedContent"},
			},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", "", fmt.Errorf("encoding register upload request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/assets?action=registerUpload", bytes.NewReader(body))
	if err != nil {
		return "", "", fmt.Errorf("building register upload request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Restli-Protocol-Version", restliProtocol)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", "", fmt.Errorf("register upload request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return "", "", &APIError{Op: "register upload", StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	var parsed registerUploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", "", fmt.Errorf("decoding register upload response: %w", err)
	}

	return parsed.Value.UploadMechanism.MediaUploadHTTPRequest.UploadURL, parsed.Value.Asset, nil
}

// UploadImage PUTs the raw image bytes to the URL from RegisterUpload.
// The response body is not consulted; the asset URN from registration is
// what the publish call references.
func (c *Client) UploadImage(ctx context.Context, uploadURL string, imageData []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, uploadURL, bytes.NewReader(imageData))
	if err != nil {
		return fmt.Errorf("building image upload request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("Content-Type", "image/jpeg")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("image upload request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		respBody, _ := io.ReadAll(resp.Body)
		return &APIError{Op: "image upload", StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	return nil
}
