package model

import (
	"time"

	"github.com/Rohithsilent/P-o-P/pkg/sentiment"
)

const (
	InsightSourceAI    = "ai"
	InsightSourceBasic = "basic"
)

type Insights struct {
	Loved        string `json:"loved" jsonschema:"description=Two or three specific things viewers praised as markdown bullet points"`
	Complaints   string `json:"complaints" jsonschema:"description=Two or three concerns or criticisms as markdown bullet points"`
	Improvements string `json:"improvements" jsonschema:"description=Two or three actionable improvements for future videos as markdown bullet points"`
	Summary      string `json:"summary" jsonschema:"description=Two or three sentences summarizing overall sentiment and the key takeaway"`
}

type AnalysisReport struct {
	ID            int64
	VideoID       string
	VideoTitle    string
	Tally         sentiment.Tally
	Insights      *Insights
	InsightSource string
	ModelUsed     string
	Warnings      []string
	CreatedAt     time.Time
}

// InsightJob is queued by the fetcher once a video's comments are on disk.
type InsightJob struct {
	VideoID    string   `json:"video_id"`
	VideoTitle string   `json:"video_title"`
	Warnings   []string `json:"warnings,omitempty"`
}
