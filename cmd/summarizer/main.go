package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/Rohithsilent/P-o-P/db"
	"github.com/Rohithsilent/P-o-P/internal/config"
	"github.com/Rohithsilent/P-o-P/internal/model"
	"github.com/Rohithsilent/P-o-P/internal/repository"
	"github.com/Rohithsilent/P-o-P/pkg/llm"
	"github.com/Rohithsilent/P-o-P/pkg/sentiment"

	"github.com/redis/go-redis/v9"
)

const popTimeout = 5 * time.Second

type summarizer struct {
	files      *repository.CommentFiles
	classifier *sentiment.Classifier
	insights   llm.Provider
	reports    *repository.ReportRepository
}

// summarizer turns stored comment files into insight reports. With -video it
// handles one video; otherwise it drains the queue filled by the fetcher.
func main() {
	videoID := flag.String("video", "", "summarize this video's stored comments and exit")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	s := &summarizer{
		files:      repository.NewCommentFiles(cfg.DataDir),
		classifier: sentiment.NewClassifier(),
	}

	s.insights, err = llm.New(cfg.LLM)
	if err != nil {
		slog.Warn("no LLM provider configured, using basic insights", "error", err)
	}

	if cfg.DatabaseURL != "" {
		if err := db.Connect(cfg.DatabaseURL); err != nil {
			log.Fatalf("error connecting to DB: %v", err)
		}
		defer db.Close()

		s.reports = repository.NewReportRepository(db.DB)
		if err := s.reports.Migrate(); err != nil {
			log.Fatalf("error migrating DB: %v", err)
		}
	}

	ctx := context.Background()

	if *videoID != "" {
		if err := s.process(ctx, model.InsightJob{VideoID: *videoID}); err != nil {
			log.Fatalf("error summarizing %s: %v", *videoID, err)
		}
		return
	}

	if err := db.ConnectRedis(ctx, cfg.RedisURL); err != nil {
		log.Fatalf("error connecting to Redis: %v", err)
	}
	defer db.CloseRedis()

	var done, failed int
	for {
		data, err := db.PopFromQueue(ctx, db.InsightQueueKey, popTimeout)
		if errors.Is(err, redis.Nil) {
			break
		}
		if err != nil {
			log.Fatalf("error reading queue: %v", err)
		}

		var job model.InsightJob
		if err := json.Unmarshal([]byte(data), &job); err != nil || job.VideoID == "" {
			slog.Error("malformed job", "data", data, "error", err)
			s.deadLetter(ctx, data)
			failed++
			continue
		}

		if err := s.process(ctx, job); err != nil {
			slog.Error("error summarizing video", "video_id", job.VideoID, "error", err)
			s.deadLetter(ctx, data)
			failed++
			continue
		}
		done++
	}

	slog.Info("queue drained", "summarized", done, "failed", failed)
}

func (s *summarizer) process(ctx context.Context, job model.InsightJob) error {
	comments, err := s.files.LoadVideo(job.VideoID)
	if err != nil {
		return err
	}

	texts := model.CommentTexts(comments)
	tally := s.classifier.Tally(texts)

	report := &model.AnalysisReport{
		VideoID:    job.VideoID,
		VideoTitle: job.VideoTitle,
		Tally:      tally,
		Warnings:   job.Warnings,
	}

	if s.insights != nil && tally.Total > 0 {
		report.Insights, err = s.insights.GenerateInsights(ctx, llm.InsightInput{
			VideoTitle: job.VideoTitle,
			Tally:      tally,
			Comments:   texts,
		})
		if err != nil {
			slog.Warn("AI insights unavailable, using basic insights", "video_id", job.VideoID, "error", err)
			report.Warnings = append(report.Warnings, "AI insights unavailable: "+err.Error())
		} else {
			report.InsightSource = model.InsightSourceAI
			report.ModelUsed = s.insights.ModelName()
		}
	}
	if report.Insights == nil {
		report.Insights = llm.BasicInsights(tally)
		if report.Insights != nil {
			report.InsightSource = model.InsightSourceBasic
		}
	}

	if s.reports == nil {
		slog.Info("insights ready", "video_id", job.VideoID, "source", report.InsightSource, "summary", summaryOf(report))
		return nil
	}
	if err := s.reports.SaveReport(report); err != nil {
		return err
	}

	slog.Info("report saved successfully", "report_id", report.ID, "video_id", job.VideoID, "source", report.InsightSource)
	return nil
}

func (s *summarizer) deadLetter(ctx context.Context, data string) {
	if err := db.PushToQueue(ctx, db.DeadLetterKey, data); err != nil {
		slog.Error("error pushing to dead letter queue", "error", err)
	}
}

func summaryOf(r *model.AnalysisReport) string {
	if r.Insights == nil {
		return ""
	}
	return r.Insights.Summary
}
