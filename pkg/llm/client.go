package llm

import "context"

// PostInput carries the calendar data the generator turns into post copy.
// ContentData is forwarded verbatim; its shape is up to the calendar.
type PostInput struct {
	PostType    string
	Week        int
	ContentData map[string]any
}

type Generator interface {
	GeneratePost(ctx context.Context, input PostInput, systemPrompt string) (string, error)
}
