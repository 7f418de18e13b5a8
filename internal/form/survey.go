package form

import (
	"net/url"
	"path"
	"strings"

	"github.com/MKhiriev/go-visit-feedback/models"
)

// Survey form field names.
const (
	FieldStarRating      = "star_rating"
	FieldTextualFeedback = "textual_feedback"
)

const (
	MinRating = 1
	MaxRating = 5

	DefaultRating = MaxRating

	MinFeedbackLength = 10
	MaxFeedbackLength = 500
)

var surveyFields = []Field{
	{
		Name:    FieldStarRating,
		Label:   "Rating",
		Default: IntValue(DefaultRating),
		Rules:   []Rule{Range(MinRating, MaxRating, "Rating must be between 1 and 5")},
	},
	{
		Name:    FieldTextualFeedback,
		Label:   "Your feedback",
		Default: TextValue(""),
		Rules: []Rule{
			Required("Feedback is required"),
			Length(MinFeedbackLength, 0, "Feedback is too short (minimum 10 characters)"),
			Length(0, MaxFeedbackLength, "Feedback is too long (maximum 500 characters)"),
		},
	},
}

// SurveySchema returns the follow-up survey form schema. Its forms start by
// resolving the survey token.
func SurveySchema() *Schema {
	return MustSchema(surveyFields,
		WithContextResolution(),
		WithFallbackMessage("Could not submit feedback. Please try again."),
	)
}

// FeedbackFromDraft converts a submitted survey payload into the wire model.
func FeedbackFromDraft(d Draft) models.FeedbackSubmission {
	return models.FeedbackSubmission{
		StarRating:      d.Int(FieldStarRating),
		TextualFeedback: trimmed(d, FieldTextualFeedback),
	}
}

// TokenFromLink extracts the survey token from raw, which is either a bare
// token or a survey link such as https://host/feedback/<token>.
func TokenFromLink(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if u, err := url.Parse(raw); err == nil && (u.Scheme != "" || strings.Contains(u.Path, "/")) {
		raw = u.Path
	}
	raw = strings.TrimRight(raw, "/")
	if raw == "" {
		return ""
	}
	return path.Base(raw)
}

func trimmed(d Draft, name string) string {
	return strings.TrimSpace(d.Text(name))
}
