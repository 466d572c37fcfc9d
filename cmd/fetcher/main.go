package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/Rohithsilent/P-o-P/db"
	"github.com/Rohithsilent/P-o-P/internal/config"
	"github.com/Rohithsilent/P-o-P/internal/model"
	"github.com/Rohithsilent/P-o-P/internal/repository"
	"github.com/Rohithsilent/P-o-P/pkg/sentiment"
	"github.com/Rohithsilent/P-o-P/pkg/youtube"
)

// fetcher downloads the comments of one video, stores them as CSV, prints
// the sentiment tally and queues the video for the summarizer.
func main() {
	videoURL := flag.String("url", "", "YouTube video link or ID")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	if *videoURL == "" {
		log.Fatal("usage: fetcher -url <youtube link>")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}
	if err := cfg.RequireYouTube(); err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	videoID, err := youtube.ExtractVideoID(*videoURL)
	if err != nil {
		log.Fatalf("error parsing link: %v", err)
	}

	ctx := context.Background()
	client := youtube.NewClient(cfg.YouTubeAPIKey, cfg.MaxComments, cfg.HTTPTimeout)

	job := model.InsightJob{VideoID: videoID}
	if video, err := client.FetchVideo(ctx, videoID); err != nil {
		slog.Warn("video details unavailable", "video_id", videoID, "error", err)
		job.Warnings = append(job.Warnings, fmt.Sprintf("video details unavailable: %v", err))
	} else {
		job.VideoTitle = video.Title
	}

	comments, err := client.FetchComments(ctx, videoID)
	if err != nil {
		log.Fatalf("error fetching comments: %v", err)
	}

	files := repository.NewCommentFiles(cfg.DataDir)
	path, err := files.Save(videoID, comments)
	if err != nil {
		log.Fatalf("error saving comments: %v", err)
	}
	deleted, err := files.PruneExcept(videoID)
	if err != nil {
		slog.Error("error removing old comment files", "error", err)
	}

	tally := sentiment.NewClassifier().Tally(model.CommentTexts(comments))

	slog.Info("fetch complete",
		"video_id", videoID,
		"file", path,
		"removed", len(deleted),
		"total", tally.Total,
		"positive", tally.Positive,
		"negative", tally.Negative,
		"neutral", tally.Neutral,
		"overall", tally.Overall(),
	)

	if cfg.RedisURL == "" {
		slog.Info("REDIS_URL not set, skipping insight queue")
		return
	}

	if err := db.ConnectRedis(ctx, cfg.RedisURL); err != nil {
		log.Fatalf("error connecting to Redis: %v", err)
	}
	defer db.CloseRedis()

	payload, err := json.Marshal(job)
	if err != nil {
		log.Fatalf("error encoding job: %v", err)
	}
	if err := db.PushToQueue(ctx, db.InsightQueueKey, string(payload)); err != nil {
		slog.Error("error pushing to Redis queue", "error", err, "video_id", videoID)
		return
	}
	slog.Info("queued for insights", "video_id", videoID)
}
