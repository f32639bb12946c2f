package poster

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/donbrown-bioscope/linkedin-auto-posts/internal/config"
	"github.com/donbrown-bioscope/linkedin-auto-posts/internal/model"
	"github.com/donbrown-bioscope/linkedin-auto-posts/pkg/llm"
)

type CalendarStore interface {
	Load() ([]model.CalendarEntry, error)
	FindByDate(entries []model.CalendarEntry, targetDate string) (model.CalendarEntry, bool)
	SystemPrompt() (string, error)
}

type Publisher interface {
	ResolvePersonURN(ctx context.Context) (string, error)
	RegisterUpload(ctx context.Context, personURN string) (uploadURL, assetURN string, err error)
	UploadImage(ctx context.Context, uploadURL string, imageData []byte) error
	CreatePost(ctx context.Context, text, assetURN, personURN string) (string, error)
}

type Notifier interface {
	Notify(message string, success bool)
}

// Runner drives one posting run end to end: schedule gate, calendar
// lookup, text generation, then the LinkedIn publish sequence.
type Runner struct {
	cfg       config.Config
	calendar  CalendarStore
	generator llm.Generator
	publisher Publisher
	notifier  Notifier
}

func NewRunner(cfg config.Config, calendar CalendarStore, generator llm.Generator, publisher Publisher, notifier Notifier) *Runner {
	return &Runner{
		cfg:       cfg,
		calendar:  calendar,
		generator: generator,
		publisher: publisher,
		notifier:  notifier,
	}
}

type RunOptions struct {
	// Date overrides today, YYYY-MM-DD. Empty means time.Now().
	Date   string
	DryRun bool
	// Force bypasses the weekday schedule gate.
	Force bool
}

// Run executes one posting run. A nil return is either a published post
// or a clean no-op (not a posting day, no calendar entry, dry run). A
// non-nil return means the run failed and the process should exit 1;
// failures past text generation are also reported to the notifier.
func (r *Runner) Run(ctx context.Context, opts RunOptions) error {
	targetDate := time.Now()
	if opts.Date != "" {
		var err error
		targetDate, err = time.Parse("2006-01-02", opts.Date)
		if err != nil {
			return fmt.Errorf("invalid date %q: %w", opts.Date, err)
		}
	}

	dateStr := targetDate.Format("2006-01-02")
	dayName := strings.ToLower(targetDate.Weekday().String())
	slog.Info("running for date", "date", dateStr, "day", dayName)

	scheduledType, isPostingDay := config.PostingDays[targetDate.Weekday()]
	if !isPostingDay && !opts.Force {
		slog.Info("not a scheduled posting day, exiting", "day", dayName)
		return nil
	}
	if isPostingDay {
		slog.Info("posting day", "day", dayName, "post_type", scheduledType)
	}

	// Credentials are only checked once the gate has decided the run
	// will do real work; an unscheduled day exits clean regardless.
	if err := r.cfg.Validate(opts.DryRun); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	entries, err := r.calendar.Load()
	if err != nil {
		return err
	}

	entry, found := r.calendar.FindByDate(entries, dateStr)
	if !found {
		slog.Warn("no post scheduled for date", "date", dateStr)
		return nil
	}

	slog.Info("found scheduled post",
		"week", entry.Week,
		"post_type", entry.PostType,
		"title", entry.TitleOrDefault(),
	)

	systemPrompt, err := r.calendar.SystemPrompt()
	if err != nil {
		return err
	}

	text, err := r.generator.GeneratePost(ctx, llm.PostInput{
		PostType:    entry.PostType,
		Week:        entry.Week,
		ContentData: entry.ContentData,
	}, systemPrompt)
	if err != nil {
		return fmt.Errorf("generating post text: %w", err)
	}

	slog.Info("generated post text", "chars", len(text), "text", text)

	if opts.DryRun {
		slog.Info("dry run, not posting to LinkedIn")
		return nil
	}

	if err := r.publish(ctx, entry, text); err != nil {
		slog.Error("failed to post", "error", err)
		r.notifier.Notify(fmt.Sprintf("FAILED to post Week %d: %v", entry.Week, err), false)
		return err
	}

	slog.Info("successfully posted", "week", entry.Week, "post_type", entry.PostType)
	r.notifier.Notify(fmt.Sprintf("Posted Week %d %s: %s", entry.Week, entry.PostType, entry.TitleOrDefault()), true)

	return nil
}

func (r *Runner) publish(ctx context.Context, entry model.CalendarEntry, text string) error {
	if entry.ImageFile == "" {
		return fmt.Errorf("no image_file specified in calendar entry for %s", entry.Date)
	}

	imagePath := filepath.Join(r.cfg.ImagesDir, entry.ImageFile)
	if _, err := os.Stat(imagePath); err != nil {
		return fmt.Errorf("image not found: %w", err)
	}

	personURN := ""
	if r.cfg.LinkedInPersonID != "" {
		personURN = fmt.Sprintf("urn:li:person:%s", r.cfg.LinkedInPersonID)
	} else {
		var err error
		personURN, err = r.publisher.ResolvePersonURN(ctx)
		if err != nil {
			return err
		}
	}

	slog.Info("registering image upload")
	uploadURL, assetURN, err := r.publisher.RegisterUpload(ctx, personURN)
	if err != nil {
		return err
	}

	imageData, err := os.ReadFile(imagePath)
	if err != nil {
		return fmt.Errorf("reading image: %w", err)
	}

	slog.Info("uploading image", "path", imagePath, "bytes", len(imageData))
	if err := r.publisher.UploadImage(ctx, uploadURL, imageData); err != nil {
		return err
	}
	slog.Info("image uploaded", "asset", assetURN)

	slog.Info("creating LinkedIn post")
	postID, err := r.publisher.CreatePost(ctx, text, assetURN, personURN)
	if err != nil {
		return err
	}
	slog.Info("post created", "post_id", postID)

	return nil
}
