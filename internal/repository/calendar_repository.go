package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/donbrown-bioscope/linkedin-auto-posts/internal/model"
)

// CalendarRepository reads the content calendar and the system prompt
// from disk. The calendar is read-only at runtime: nothing in the
// posting path writes back to it.
type CalendarRepository struct {
	contentDir   string
	templatesDir string
}

func NewCalendarRepository(contentDir, templatesDir string) *CalendarRepository {
	return &CalendarRepository{contentDir: contentDir, templatesDir: templatesDir}
}

// Load reads content/calendar.json. A missing file keeps fs.ErrNotExist
// in the error chain; a file that exists but does not parse surfaces the
// json error instead.
func (r *CalendarRepository) Load() ([]model.CalendarEntry, error) {
	path := filepath.Join(r.contentDir, "calendar.json")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading calendar: %w", err)
	}

	var entries []model.CalendarEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing calendar %s: %w", path, err)
	}

	return entries, nil
}

// FindByDate returns the first entry whose date equals targetDate
// (ISO YYYY-MM-DD, exact match). A date with no entry is an expected
// outcome, not an error.
func (r *CalendarRepository) FindByDate(entries []model.CalendarEntry, targetDate string) (model.CalendarEntry, bool) {
	for _, e := range entries {
		if e.Date == targetDate {
			return e, true
		}
	}
	return model.CalendarEntry{}, false
}

// SystemPrompt loads the LLM instruction context, passed verbatim to the
// text generator.
func (r *CalendarRepository) SystemPrompt() (string, error) {
	path := filepath.Join(r.templatesDir, "system_prompt.txt")

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading system prompt: %w", err)
	}

	return string(data), nil
}
