package handler

import (
	"time"

	"github.com/Rohithsilent/P-o-P/internal/analysis"
	"github.com/Rohithsilent/P-o-P/internal/model"
	"github.com/Rohithsilent/P-o-P/pkg/retrieval"
	"github.com/Rohithsilent/P-o-P/pkg/sentiment"
)

type AnalyzeRequest struct {
	URL string `json:"url" binding:"required"`
}

type AskRequest struct {
	Question string `json:"question" binding:"required"`
}

type VideoResponse struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	ChannelTitle string `json:"channel_title"`
	PublishedAt  string `json:"published_at"`
}

type StatsResponse struct {
	ViewCount      int64   `json:"view_count"`
	LikeCount      int64   `json:"like_count"`
	CommentCount   int64   `json:"comment_count"`
	EngagementRate float64 `json:"engagement_rate"`
}

type ChannelResponse struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	VideoCount      int64  `json:"video_count"`
	SubscriberCount int64  `json:"subscriber_count"`
	LogoURL         string `json:"logo_url"`
	CreatedAt       string `json:"created_at"`
	Description     string `json:"description"`
}

type TallyResponse struct {
	sentiment.Tally
	PositivePercent float64         `json:"positive_percent"`
	NegativePercent float64         `json:"negative_percent"`
	NeutralPercent  float64         `json:"neutral_percent"`
	Overall         sentiment.Label `json:"overall"`
}

type InsightsResponse struct {
	Loved        string `json:"loved"`
	Complaints   string `json:"complaints"`
	Improvements string `json:"improvements"`
	Summary      string `json:"summary"`
	Source       string `json:"source"`
	ModelUsed    string `json:"model_used,omitempty"`
}

type AnalysisResponse struct {
	SessionID    string           `json:"session_id"`
	VideoID      string           `json:"video_id"`
	URL          string           `json:"url"`
	Video        *VideoResponse   `json:"video"`
	Stats        *StatsResponse   `json:"stats"`
	Channel      *ChannelResponse `json:"channel"`
	Sentiment    TallyResponse    `json:"sentiment"`
	CommentCount int              `json:"comment_count"`
	Warnings     []string         `json:"warnings"`
	AnalyzedAt   string           `json:"analyzed_at"`
}

type CommentResponse struct {
	Username    string          `json:"username"`
	Text        string          `json:"text"`
	Likes       int64           `json:"likes"`
	PublishedAt string          `json:"published_at"`
	ReplyCount  int64           `json:"reply_count"`
	Sentiment   sentiment.Label `json:"sentiment"`
	Compound    float64         `json:"compound"`
}

type CommentsResponse struct {
	Comments  []CommentResponse `json:"comments"`
	Matched   int               `json:"matched"`
	Total     int               `json:"total"`
	Remaining int               `json:"remaining"`
}

type AskResponse struct {
	Question string            `json:"question"`
	Intent   string            `json:"intent"`
	Answer   string            `json:"answer"`
	Matches  []retrieval.Match `json:"matches"`
}

type ReportResponse struct {
	ID         int64             `json:"id"`
	VideoID    string            `json:"video_id"`
	VideoTitle string            `json:"video_title"`
	Sentiment  TallyResponse     `json:"sentiment"`
	Insights   *InsightsResponse `json:"insights"`
	Warnings   []string          `json:"warnings"`
	CreatedAt  string            `json:"created_at"`
}

type ReportsResponse struct {
	Reports []ReportResponse `json:"reports"`
	Total   int              `json:"total"`
	Limit   int              `json:"limit"`
	Offset  int              `json:"offset"`
}

func toTallyResponse(t sentiment.Tally) TallyResponse {
	return TallyResponse{
		Tally:           t,
		PositivePercent: t.Percent(sentiment.Positive),
		NegativePercent: t.Percent(sentiment.Negative),
		NeutralPercent:  t.Percent(sentiment.Neutral),
		Overall:         t.Overall(),
	}
}

func toInsightsResponse(ins *model.Insights, source, modelUsed string) *InsightsResponse {
	if ins == nil {
		return nil
	}
	return &InsightsResponse{
		Loved:        ins.Loved,
		Complaints:   ins.Complaints,
		Improvements: ins.Improvements,
		Summary:      ins.Summary,
		Source:       source,
		ModelUsed:    modelUsed,
	}
}

func toAnalysisResponse(s *analysis.Session) AnalysisResponse {
	res := AnalysisResponse{
		SessionID:    s.ID,
		VideoID:      s.VideoID,
		URL:          s.Link,
		Sentiment:    toTallyResponse(s.Tally),
		CommentCount: len(s.Comments),
		Warnings:     s.Warnings,
		AnalyzedAt:   s.CreatedAt.Format(time.RFC3339),
	}
	if res.Warnings == nil {
		res.Warnings = []string{}
	}

	if v := s.Video; v != nil {
		res.Video = &VideoResponse{ID: v.ID, Title: v.Title, ChannelTitle: v.ChannelTitle, PublishedAt: v.PublishedAt}
	}
	if st := s.Stats; st != nil {
		res.Stats = &StatsResponse{
			ViewCount:      st.ViewCount,
			LikeCount:      st.LikeCount,
			CommentCount:   st.CommentCount,
			EngagementRate: st.EngagementRate(),
		}
	}
	if ch := s.Channel; ch != nil {
		res.Channel = &ChannelResponse{
			ID:              ch.ID,
			Title:           ch.Title,
			VideoCount:      ch.VideoCount,
			SubscriberCount: ch.SubscriberCount,
			LogoURL:         ch.LogoURL,
			CreatedAt:       ch.CreatedAt,
			Description:     ch.Description,
		}
	}
	return res
}

func toReportResponse(r model.AnalysisReport) ReportResponse {
	warnings := r.Warnings
	if warnings == nil {
		warnings = []string{}
	}
	return ReportResponse{
		ID:         r.ID,
		VideoID:    r.VideoID,
		VideoTitle: r.VideoTitle,
		Sentiment:  toTallyResponse(r.Tally),
		Insights:   toInsightsResponse(r.Insights, r.InsightSource, r.ModelUsed),
		Warnings:   warnings,
		CreatedAt:  r.CreatedAt.Format(time.RFC3339),
	}
}
