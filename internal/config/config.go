package config

import (
	"errors"
	"os"
	"path/filepath"
	"time"
)

const (
	ProviderAnthropic = "anthropic"
	ProviderOpenAI    = "openai"
)

// PostingDays maps weekdays to the post type scheduled for that day.
// Days not present are not posting days.
var PostingDays = map[time.Weekday]string{
	time.Sunday:   "gene",
	time.Tuesday:  "intervention",
	time.Thursday: "topic",
}

// Config holds everything read from the environment, built once at
// startup and passed into components.
type Config struct {
	AnthropicAPIKey     string
	OpenAIAPIKey        string
	LLMProvider         string
	LinkedInAccessToken string
	LinkedInPersonID    string
	SlackWebhookURL     string

	ContentDir   string
	ImagesDir    string
	TemplatesDir string
	LogsDir      string
}

func Load() Config {
	baseDir := os.Getenv("POSTER_BASE_DIR")
	if baseDir == "" {
		baseDir = "."
	}

	contentDir := filepath.Join(baseDir, "content")

	cfg := Config{
		AnthropicAPIKey:     os.Getenv("ANTHROPIC_API_KEY"),
		OpenAIAPIKey:        os.Getenv("OPENAI_API_KEY"),
		LLMProvider:         os.Getenv("LLM_PROVIDER"),
		LinkedInAccessToken: os.Getenv("LINKEDIN_ACCESS_TOKEN"),
		LinkedInPersonID:    os.Getenv("LINKEDIN_PERSON_ID"),
		SlackWebhookURL:     os.Getenv("SLACK_WEBHOOK_URL"),
		ContentDir:          contentDir,
		ImagesDir:           filepath.Join(contentDir, "images"),
		TemplatesDir:        filepath.Join(baseDir, "templates"),
		LogsDir:             filepath.Join(baseDir, "logs"),
	}

	if cfg.LLMProvider == "" {
		cfg.LLMProvider = ProviderAnthropic
	}

	return cfg
}

// Validate checks required credentials before any network call is made.
// The LinkedIn token is only needed when the run will actually publish.
func (c Config) Validate(dryRun bool) error {
	switch c.LLMProvider {
	case ProviderAnthropic:
		if c.AnthropicAPIKey == "" {
			return errors.New("ANTHROPIC_API_KEY not set")
		}
	case ProviderOpenAI:
		if c.OpenAIAPIKey == "" {
			return errors.New("OPENAI_API_KEY not set")
		}
	default:
		return errors.New("LLM_PROVIDER must be \"anthropic\" or \"openai\"")
	}

	if !dryRun && c.LinkedInAccessToken == "" {
		return errors.New("LINKEDIN_ACCESS_TOKEN not set")
	}

	return nil
}
