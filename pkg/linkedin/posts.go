package linkedin

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
)

type postRequest struct {
	Author                    string           `json:"author"`
	Commentary                string           `json:"commentary"`
	Visibility                string           `json:"visibility"`
	Distribution              postDistribution `json:"distribution"`
	Content                   postContent      `json:"content"`
	LifecycleState            string           `json:"lifecycleState"`
	IsReshareDisabledByAuthor bool             `json:"isReshareDisabledByAuthor"`
}

type postDistribution struct {
	FeedDistribution               string   `json:"feedDistribution"`
	TargetEntities                 []string `json:"targetEntities"`
	ThirdPartyDistributionChannels []string `json:"thirdPartyDistributionChannels"`
}

type postContent struct {
	Media postMedia `json:"media"`
}

type postMedia struct {
	Title string `json:"title"`
	ID    string `json:"id"`
}

// CreatePost publishes a public main-feed post with the uploaded image
// attached. Returns the platform's post ID, which is only logged — the
// calendar is never written back.
func (c *Client) CreatePost(ctx context.Context, text, assetURN, personURN string) (string, error) {
	payload := postRequest{
		Author:     personURN,
		Commentary: text,
		Visibility: "PUBLIC",
		Distribution: postDistribution{
			FeedDistribution:               "MAIN_FEED",
			TargetEntities:                 []string{},
			ThirdPartyDistributionChannels: []string{},
		},
		Content: postContent{
			Media: postMedia{Title: "Bioscope.AI", ID: assetURN},
		},
		LifecycleState:            "PUBLISHED",
		IsReshareDisabledByAuthor: false,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encoding post request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/posts", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("building post request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Restli-Protocol-Version", restliProtocol)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("post request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		respBody, _ := io.ReadAll(resp.Body)
		return "", &APIError{Op: "create post", StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	if id := resp.Header.Get("x-restli-id"); id != "" {
		return id, nil
	}

	var parsed struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		// The post was accepted; the ID is only logged, so an
		// unreadable response body is not worth failing the run.
		slog.Warn("could not read post ID from response", "error", err)
		return "", nil
	}

	return parsed.ID, nil
}
