package llm

import (
	"encoding/json"
	"fmt"

	"github.com/donbrown-bioscope/linkedin-auto-posts/internal/model"
)

// buildUserPrompt produces the single user turn sent to the model. The
// emoji, hashtags, and CTA lines come from the model package so the
// instructions cannot drift from the data of record. For a fixed input
// the output is byte-for-byte stable; only the model's reply varies
// between runs.
func buildUserPrompt(input PostInput) (string, error) {
	contentJSON, err := json.MarshalIndent(input.ContentData, "", "  ")
	if err != nil {
		return "", fmt.Errorf("serializing content data: %w", err)
	}

	return fmt.Sprintf(`Generate a LinkedIn post for the following content:

Post Type: %s
Week: %d

Content Data:
%s

Remember to:
1. Start with an engaging hook
2. Use the %s emoji appropriate for a %s post
3. Include key information in an accessible way
4. End with the dual CTA for physicians and patients:
%s
%s
5. Add these hashtags: %s
6. Keep under %d characters total
`,
		input.PostType,
		input.Week,
		contentJSON,
		model.EmojiForPostType(input.PostType),
		input.PostType,
		model.PhysicianCTA,
		model.PatientCTA,
		model.HashtagsForPostType(input.PostType),
		model.MaxPostLength,
	), nil
}
