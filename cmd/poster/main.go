package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/donbrown-bioscope/linkedin-auto-posts/internal/config"
	"github.com/donbrown-bioscope/linkedin-auto-posts/internal/poster"
	"github.com/donbrown-bioscope/linkedin-auto-posts/internal/repository"
	"github.com/donbrown-bioscope/linkedin-auto-posts/pkg/linkedin"
	"github.com/donbrown-bioscope/linkedin-auto-posts/pkg/llm"
	"github.com/donbrown-bioscope/linkedin-auto-posts/pkg/notify"
)

var (
	dryRun  bool
	dateStr string
	force   bool
)

func main() {
	godotenv.Load()

	rootCmd := &cobra.Command{
		Use:           "poster",
		Short:         "Generate and publish the scheduled Bioscope LinkedIn post",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context())
		},
	}

	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "generate content but don't post")
	rootCmd.Flags().StringVar(&dateStr, "date", "", "override date (YYYY-MM-DD)")
	rootCmd.Flags().BoolVar(&force, "force", false, "post even if not a scheduled day")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg := config.Load()

	closeLog := setupLogging(cfg.LogsDir)
	defer closeLog()

	calendar := repository.NewCalendarRepository(cfg.ContentDir, cfg.TemplatesDir)

	var generator llm.Generator
	switch cfg.LLMProvider {
	case config.ProviderOpenAI:
		generator = llm.NewOpenAIClient(cfg.OpenAIAPIKey)
	default:
		generator = llm.NewAnthropicClient(cfg.AnthropicAPIKey)
	}

	publisher := linkedin.NewClient(cfg.LinkedInAccessToken)
	notifier := notify.NewSlackNotifier(cfg.SlackWebhookURL)

	runner := poster.NewRunner(cfg, calendar, generator, publisher, notifier)

	if err := runner.Run(ctx, poster.RunOptions{Date: dateStr, DryRun: dryRun, Force: force}); err != nil {
		slog.Error("run failed", "error", err)
		return err
	}

	return nil
}

// setupLogging mirrors every log line to a per-day file under logs/,
// opened once for append. If the file cannot be opened the run still
// logs to stdout.
func setupLogging(logsDir string) func() {
	handlerFor := func(w io.Writer) *slog.Logger {
		return slog.New(slog.NewJSONHandler(w, nil))
	}

	if err := os.MkdirAll(logsDir, 0o755); err != nil {
		slog.SetDefault(handlerFor(os.Stdout))
		slog.Warn("could not create logs directory", "error", err)
		return func() {}
	}

	name := filepath.Join(logsDir, fmt.Sprintf("post_%s.log", time.Now().Format("2006-01-02")))
	f, err := os.OpenFile(name, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		slog.SetDefault(handlerFor(os.Stdout))
		slog.Warn("could not open log file", "path", name, "error", err)
		return func() {}
	}

	slog.SetDefault(handlerFor(io.MultiWriter(os.Stdout, f)))
	return func() { f.Close() }
}
