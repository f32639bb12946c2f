package llm

import (
	"strings"
	"testing"

	"github.com/donbrown-bioscope/linkedin-auto-posts/internal/model"
)

func TestBuildUserPrompt(t *testing.T) {
	input := PostInput{
		PostType: "gene",
		Week:     3,
		ContentData: map[string]any{
			"gene":     "APOE",
			"key_fact": "e4 carriers have elevated Alzheimer's risk",
		},
	}

	prompt, err := buildUserPrompt(input)
	if err != nil {
		t.Fatalf("buildUserPrompt: %v", err)
	}

	for _, want := range []string{
		"Post Type: gene",
		"Week: 3",
		`"gene": "APOE"`,
		`"key_fact": "e4 carriers have elevated Alzheimer's risk"`,
		"engaging hook",
		"dual CTA",
		model.PhysicianCTA,
		model.PatientCTA,
		"3000 characters",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildUserPromptUsesPostTypeMappings(t *testing.T) {
	tests := []struct {
		postType string
		emoji    string
		hashtag  string
	}{
		{model.PostTypeGene, "🧬", "#GeneOfTheWeek"},
		{model.PostTypeIntervention, "💊", "#InterventionOfTheWeek"},
		{model.PostTypeTopic, "📊", "#HealthTopic"},
	}

	for _, tt := range tests {
		t.Run(tt.postType, func(t *testing.T) {
			prompt, err := buildUserPrompt(PostInput{PostType: tt.postType, Week: 1})
			if err != nil {
				t.Fatalf("buildUserPrompt: %v", err)
			}
			if !strings.Contains(prompt, tt.emoji) {
				t.Errorf("prompt for %s missing emoji %q", tt.postType, tt.emoji)
			}
			if !strings.Contains(prompt, tt.hashtag) {
				t.Errorf("prompt for %s missing hashtag %q", tt.postType, tt.hashtag)
			}
		})
	}
}

func TestBuildUserPromptDeterministic(t *testing.T) {
	input := PostInput{
		PostType: "topic",
		Week:     7,
		ContentData: map[string]any{
			"topic":    "reference ranges",
			"problem":  "population norms hide personal drift",
			"solution": "track your own baseline",
		},
	}

	first, err := buildUserPrompt(input)
	if err != nil {
		t.Fatalf("buildUserPrompt: %v", err)
	}

	// Map serialization must be stable or the request body would churn
	// between runs for identical calendar entries.
	for i := 0; i < 10; i++ {
		again, err := buildUserPrompt(input)
		if err != nil {
			t.Fatalf("buildUserPrompt: %v", err)
		}
		if again != first {
			t.Fatalf("prompt differs between runs:\n%s\n---\n%s", first, again)
		}
	}
}

func TestBuildUserPromptEmptyContentData(t *testing.T) {
	prompt, err := buildUserPrompt(PostInput{PostType: "intervention", Week: 1})
	if err != nil {
		t.Fatalf("buildUserPrompt: %v", err)
	}
	if !strings.Contains(prompt, "null") && !strings.Contains(prompt, "{}") {
		t.Errorf("expected serialized empty content data, got:\n%s", prompt)
	}
}
