package analysis

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Rohithsilent/P-o-P/internal/model"
	"github.com/Rohithsilent/P-o-P/pkg/intent"
	"github.com/Rohithsilent/P-o-P/pkg/llm"
	"github.com/Rohithsilent/P-o-P/pkg/sentiment"
	"github.com/Rohithsilent/P-o-P/pkg/youtube"

	"github.com/google/uuid"
)

type CommentStore interface {
	Save(videoID string, comments []model.Comment) (string, error)
	PruneExcept(videoID string) ([]string, error)
}

type ReportSaver interface {
	SaveReport(report *model.AnalysisReport) error
}

// Deps wires an Analyzer. Insights, Answerer and Reports are optional.
type Deps struct {
	Source     youtube.Source
	Files      CommentStore
	Classifier *sentiment.Classifier
	Insights   llm.InsightGenerator
	Answerer   llm.Answerer
	Reports    ReportSaver
	Store      *Store
	Router     *intent.Router
}

type Analyzer struct {
	source     youtube.Source
	files      CommentStore
	classifier *sentiment.Classifier
	insights   llm.InsightGenerator
	answerer   llm.Answerer
	reports    ReportSaver
	store      *Store
	router     *intent.Router
	now        func() time.Time
}

func New(d Deps) *Analyzer {
	a := &Analyzer{
		source:     d.Source,
		files:      d.Files,
		classifier: d.Classifier,
		insights:   d.Insights,
		answerer:   d.Answerer,
		reports:    d.Reports,
		store:      d.Store,
		router:     d.Router,
		now:        time.Now,
	}
	if a.classifier == nil {
		a.classifier = sentiment.NewClassifier()
	}
	if a.store == nil {
		a.store = NewStore()
	}
	if a.router == nil {
		a.router = intent.NewRouter(intent.DefaultRules)
	}
	return a
}

func (a *Analyzer) Store() *Store {
	return a.store
}

func (a *Analyzer) Current() (*Session, error) {
	return a.store.Current()
}

// Analyze runs the full pipeline for one video link and makes the result the
// current session. Only an invalid link or a failed comment fetch abort the
// run; every other failure is logged and recorded in Session.Warnings.
func (a *Analyzer) Analyze(ctx context.Context, link string) (*Session, error) {
	videoID, err := youtube.ExtractVideoID(link)
	if err != nil {
		return nil, err
	}

	s := &Session{
		ID:        uuid.NewString(),
		VideoID:   videoID,
		Link:      link,
		CreatedAt: a.now().UTC(),
	}
	warn := func(msg string, err error) {
		slog.Warn(msg, "video_id", videoID, "error", err)
		s.Warnings = append(s.Warnings, fmt.Sprintf("%s: %v", msg, err))
	}

	if s.Video, err = a.source.FetchVideo(ctx, videoID); err != nil {
		warn("video details unavailable", err)
	}
	if s.Stats, err = a.source.FetchVideoStats(ctx, videoID); err != nil {
		warn("video statistics unavailable", err)
	}
	if s.Video != nil && s.Video.ChannelID != "" {
		if s.Channel, err = a.source.FetchChannelInfo(ctx, s.Video.ChannelID); err != nil {
			warn("channel information unavailable", err)
		}
	}

	s.Comments, err = a.source.FetchComments(ctx, videoID)
	if err != nil {
		return nil, fmt.Errorf("fetch comments for %s: %w", videoID, err)
	}
	slog.Info("comments fetched", "video_id", videoID, "count", len(s.Comments))

	if a.files != nil {
		if s.CSVPath, err = a.files.Save(videoID, s.Comments); err != nil {
			warn("saving comments failed", err)
		} else if deleted, err := a.files.PruneExcept(videoID); err != nil {
			warn("removing old comment files failed", err)
		} else if len(deleted) > 0 {
			slog.Info("removed old comment files", "files", deleted)
		}
	}

	texts := model.CommentTexts(s.Comments)
	s.Tally = a.classifier.Tally(texts)

	a.generateInsights(ctx, s, texts, warn)

	if a.reports != nil {
		if err := a.reports.SaveReport(s.report()); err != nil {
			warn("archiving report failed", err)
		}
	}

	a.store.Replace(s)
	slog.Info("analysis complete",
		"video_id", videoID,
		"total", s.Tally.Total,
		"positive", s.Tally.Positive,
		"negative", s.Tally.Negative,
		"neutral", s.Tally.Neutral,
		"insight_source", s.InsightSource,
	)
	return s, nil
}

func (a *Analyzer) generateInsights(ctx context.Context, s *Session, texts []string, warn func(string, error)) {
	if a.insights != nil && s.Tally.Total > 0 {
		ins, err := a.insights.GenerateInsights(ctx, llm.InsightInput{
			VideoTitle: s.Title(),
			Tally:      s.Tally,
			Comments:   texts,
		})
		if err == nil {
			s.Insights = ins
			s.InsightSource = model.InsightSourceAI
			if named, ok := a.insights.(interface{ ModelName() string }); ok {
				s.ModelUsed = named.ModelName()
			}
			return
		}
		warn("AI insights unavailable, using basic insights", err)
	}

	s.Insights = llm.BasicInsights(s.Tally)
	if s.Insights != nil {
		s.InsightSource = model.InsightSourceBasic
	}
}

func (s *Session) report() *model.AnalysisReport {
	return &model.AnalysisReport{
		VideoID:       s.VideoID,
		VideoTitle:    s.Title(),
		Tally:         s.Tally,
		Insights:      s.Insights,
		InsightSource: s.InsightSource,
		ModelUsed:     s.ModelUsed,
		Warnings:      s.Warnings,
	}
}
