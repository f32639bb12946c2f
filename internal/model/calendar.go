package model

const (
	PostTypeGene         = "gene"
	PostTypeIntervention = "intervention"
	PostTypeTopic        = "topic"
)

// MaxPostLength is LinkedIn's character limit for post commentary.
const MaxPostLength = 3000

// CalendarEntry is one scheduled post in content/calendar.json.
// ContentData is opaque to the poster and passed verbatim to the LLM.
type CalendarEntry struct {
	Date        string         `json:"date"`
	PostType    string         `json:"post_type"`
	Week        int            `json:"week"`
	Title       string         `json:"title,omitempty"`
	ContentData map[string]any `json:"content_data"`
	ImageFile   string         `json:"image_file"`
}

// TitleOrDefault is for log and notification text; Title is optional
// in the calendar file.
func (e CalendarEntry) TitleOrDefault() string {
	if e.Title == "" {
		return "Untitled"
	}
	return e.Title
}

var emojiByPostType = map[string]string{
	PostTypeGene:         "🧬",
	PostTypeIntervention: "💊",
	PostTypeTopic:        "📊",
}

var hashtagsByPostType = map[string]string{
	PostTypeGene:         "#GeneOfTheWeek #Genetics #PrecisionMedicine #PersonalizedHealth #Bioscope",
	PostTypeIntervention: "#InterventionOfTheWeek #Longevity #AntiAging #PrecisionMedicine #Bioscope",
	PostTypeTopic:        "#HealthTopic #Prevention #PrecisionHealth #Diagnostics #Bioscope",
}

func EmojiForPostType(postType string) string {
	return emojiByPostType[postType]
}

func HashtagsForPostType(postType string) string {
	return hashtagsByPostType[postType]
}

const (
	PhysicianCTA = "👨‍⚕️ Physicians: Why aren't you using Bioscope.AI to offer true AI-powered precision medicine?"
	PatientCTA   = "🧑 Patients: Why isn't your physician using Bioscope.AI to maximize your healthy longevity?"
)
