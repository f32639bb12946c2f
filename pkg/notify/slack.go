package notify

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"
)

const senderName = "Bioscope LinkedIn Bot"

// SlackNotifier posts run status to a Slack incoming webhook. It is
// strictly best-effort: without a webhook URL it does nothing, and a
// failed delivery is logged and swallowed so notification can never
// change the outcome of a run.
type SlackNotifier struct {
	webhookURL string
	httpClient *http.Client
}

func NewSlackNotifier(webhookURL string) *SlackNotifier {
	return &SlackNotifier{
		webhookURL: webhookURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type slackPayload struct {
	Text     string `json:"text"`
	Username string `json:"username"`
}

func (n *SlackNotifier) Notify(message string, success bool) {
	if n.webhookURL == "" {
		return
	}

	emoji := "✅"
	if !success {
		emoji = "❌"
	}

	body, err := json.Marshal(slackPayload{
		Text:     emoji + " " + message,
		Username: senderName,
	})
	if err != nil {
		slog.Warn("failed to encode Slack notification", "error", err)
		return
	}

	resp, err := n.httpClient.Post(n.webhookURL, "application/json", bytes.NewReader(body))
	if err != nil {
		slog.Warn("failed to send Slack notification", "error", err)
		return
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.Warn("Slack webhook returned non-200", "status", resp.StatusCode)
	}
}
