package model

import "testing"

func TestPostTypeMappings(t *testing.T) {
	tests := []struct {
		postType string
		emoji    string
		hashtag  string
	}{
		{PostTypeGene, "🧬", "#GeneOfTheWeek"},
		{PostTypeIntervention, "💊", "#InterventionOfTheWeek"},
		{PostTypeTopic, "📊", "#HealthTopic"},
	}

	for _, tt := range tests {
		t.Run(tt.postType, func(t *testing.T) {
			if got := EmojiForPostType(tt.postType); got != tt.emoji {
				t.Errorf("emoji: got %q, want %q", got, tt.emoji)
			}
			tags := HashtagsForPostType(tt.postType)
			if len(tags) == 0 {
				t.Fatal("expected hashtags")
			}
			if got := tags[:len(tt.hashtag)]; got != tt.hashtag {
				t.Errorf("hashtags: got %q, want prefix %q", got, tt.hashtag)
			}
		})
	}

	if EmojiForPostType("unknown") != "" {
		t.Error("unknown post type should map to empty emoji")
	}
}
