package llm

import (
	"strings"
	"testing"

	"github.com/Rohithsilent/P-o-P/pkg/sentiment"

	"github.com/go-playground/assert/v2"
)

func TestBasicInsights_EmptyTally(t *testing.T) {
	assert.Equal(t, true, BasicInsights(sentiment.Tally{}) == nil)
}

func TestBasicInsights(t *testing.T) {
	tests := []struct {
		name       string
		tally      sentiment.Tally
		loved      string
		complaints string
		summary    string
	}{
		{
			name:       "glowing",
			tally:      sentiment.Tally{Positive: 8, Negative: 1, Neutral: 1, Total: 10},
			loved:      "- 80.0% of comments were positive",
			complaints: "- Minimal negative feedback",
			summary:    "Your video received 80.0% positive sentiment. This is excellent! Viewers love your content.",
		},
		{
			name:       "balanced",
			tally:      sentiment.Tally{Positive: 6, Negative: 2, Neutral: 2, Total: 10},
			loved:      "- 60.0% of comments were positive",
			complaints: "- Minimal negative feedback",
			summary:    "Your video received 60.0% positive sentiment. The reception is good with balanced feedback.",
		},
		{
			name:       "critical",
			tally:      sentiment.Tally{Positive: 3, Negative: 5, Neutral: 2, Total: 10},
			loved:      "- 30.0% of comments were positive",
			complaints: "- 50.0% of comments were negative",
			summary:    "Your video received 30.0% positive sentiment. There is room for improvement based on audience feedback.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ins := BasicInsights(tt.tally)
			assert.Equal(t, true, strings.HasPrefix(ins.Loved, tt.loved))
			assert.Equal(t, true, strings.HasPrefix(ins.Complaints, tt.complaints))
			assert.Equal(t, tt.summary, ins.Summary)
			assert.Equal(t, true, strings.Contains(ins.Improvements, "Continue creating similar content"))
		})
	}
}
