package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/Rohithsilent/P-o-P/internal/analysis"
	"github.com/Rohithsilent/P-o-P/pkg/retrieval"
	"github.com/Rohithsilent/P-o-P/pkg/youtube"

	"github.com/gin-gonic/gin"
)

type Analyzer interface {
	Analyze(ctx context.Context, link string) (*analysis.Session, error)
	Ask(ctx context.Context, question string) (*analysis.Answer, error)
	Explore(s *analysis.Session, q analysis.ExploreQuery) (*analysis.ExploreResult, error)
	Current() (*analysis.Session, error)
}

type AnalysisHandler struct {
	analyzer Analyzer
}

func NewAnalysisHandler(analyzer Analyzer) *AnalysisHandler {
	return &AnalysisHandler{analyzer: analyzer}
}

func (h *AnalysisHandler) PostAnalyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Request body must contain a url"})
		return
	}

	session, err := h.analyzer.Analyze(c.Request.Context(), req.URL)
	switch {
	case errors.Is(err, youtube.ErrInvalidIdentifier):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid YouTube link"})
		return
	case errors.Is(err, youtube.ErrExternalAPI):
		slog.Error("error fetching comments", "url", req.URL, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Could not fetch comments from YouTube"})
		return
	case err != nil:
		slog.Error("error analyzing video", "url", req.URL, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Analysis failed"})
		return
	}

	c.JSON(http.StatusOK, toAnalysisResponse(session))
}

func (h *AnalysisHandler) GetAnalysis(c *gin.Context) {
	session, ok := h.current(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, toAnalysisResponse(session))
}

func (h *AnalysisHandler) GetInsights(c *gin.Context) {
	session, ok := h.current(c)
	if !ok {
		return
	}

	res := toInsightsResponse(session.Insights, session.InsightSource, session.ModelUsed)
	if res == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No insights available"})
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *AnalysisHandler) GetComments(c *gin.Context) {
	session, ok := h.current(c)
	if !ok {
		return
	}

	result, err := h.analyzer.Explore(session, analysis.ExploreQuery{
		Search:    c.Query("q"),
		Sentiment: c.Query("sentiment"),
		Sort:      c.Query("sort"),
		Limit:     getQueryInt("limit", analysis.ExplorePageSize, c),
	})
	if errors.Is(err, analysis.ErrInvalidQuery) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		slog.Error("error exploring comments", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Comment explorer failed"})
		return
	}

	res := CommentsResponse{
		Comments:  make([]CommentResponse, len(result.Rows)),
		Matched:   result.Matched,
		Total:     result.Total,
		Remaining: result.Remaining,
	}
	for i, r := range result.Rows {
		res.Comments[i] = CommentResponse{
			Username:    r.Username,
			Text:        r.Text,
			Likes:       r.Likes,
			PublishedAt: r.PublishedAt,
			ReplyCount:  r.ReplyCount,
			Sentiment:   r.Label,
			Compound:    r.Compound,
		}
	}
	c.JSON(http.StatusOK, res)
}

func (h *AnalysisHandler) PostAsk(c *gin.Context) {
	var req AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Request body must contain a question"})
		return
	}

	answer, err := h.analyzer.Ask(c.Request.Context(), req.Question)
	switch {
	case errors.Is(err, analysis.ErrEmptyQuestion):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Question is empty"})
		return
	case errors.Is(err, analysis.ErrNoSession):
		c.JSON(http.StatusNotFound, gin.H{"error": "Analyze a video first"})
		return
	case err != nil:
		slog.Error("error answering question", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not answer question"})
		return
	}

	matches := answer.Matches
	if matches == nil {
		matches = []retrieval.Match{}
	}
	c.JSON(http.StatusOK, AskResponse{
		Question: answer.Question,
		Intent:   string(answer.Intent),
		Answer:   answer.Text,
		Matches:  matches,
	})
}

func (h *AnalysisHandler) current(c *gin.Context) (*analysis.Session, bool) {
	session, err := h.analyzer.Current()
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No video has been analyzed yet"})
		return nil, false
	}
	return session, true
}
