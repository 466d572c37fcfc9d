package llm

import (
	"fmt"

	"github.com/Rohithsilent/P-o-P/internal/model"
	"github.com/Rohithsilent/P-o-P/pkg/sentiment"
)

// BasicInsights derives templated insights from the tally alone, for use
// when no model is available. It returns nil for an empty tally.
func BasicInsights(tally sentiment.Tally) *model.Insights {
	if tally.Total == 0 {
		return nil
	}

	pos := tally.Percent(sentiment.Positive)
	neg := tally.Percent(sentiment.Negative)

	complaints := "- Minimal negative feedback\n- Audience is generally satisfied\n- Keep up the good work!"
	if neg > 20 {
		complaints = fmt.Sprintf("- %.1f%% of comments were negative\n- Some viewers expressed concerns\n- Review negative comments for specific issues", neg)
	}

	var verdict string
	switch {
	case pos > 70:
		verdict = "This is excellent! Viewers love your content."
	case pos < 50:
		verdict = "There is room for improvement based on audience feedback."
	default:
		verdict = "The reception is good with balanced feedback."
	}

	return &model.Insights{
		Loved:        fmt.Sprintf("- %.1f%% of comments were positive\n- Viewers engaged positively with the content\n- Strong audience appreciation detected", pos),
		Complaints:   complaints,
		Improvements: "- Analyze top negative comments manually\n- Respond to constructive criticism\n- Continue creating similar content",
		Summary:      fmt.Sprintf("Your video received %.1f%% positive sentiment. %s", pos, verdict),
	}
}
