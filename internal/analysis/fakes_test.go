package analysis

import (
	"context"
	"errors"

	"github.com/Rohithsilent/P-o-P/internal/model"
	"github.com/Rohithsilent/P-o-P/pkg/llm"
	"github.com/Rohithsilent/P-o-P/pkg/youtube"
)

type fakeSource struct {
	video       *model.VideoMeta
	stats       *model.VideoStats
	channel     *model.ChannelInfo
	comments    []model.Comment
	videoErr    error
	statsErr    error
	channelErr  error
	commentsErr error
}

func (f *fakeSource) FetchComments(context.Context, string) ([]model.Comment, error) {
	return f.comments, f.commentsErr
}

func (f *fakeSource) FetchVideo(context.Context, string) (*model.VideoMeta, error) {
	if f.videoErr != nil {
		return nil, f.videoErr
	}
	return f.video, nil
}

func (f *fakeSource) FetchVideoStats(context.Context, string) (*model.VideoStats, error) {
	if f.statsErr != nil {
		return nil, f.statsErr
	}
	return f.stats, nil
}

func (f *fakeSource) FetchChannelInfo(context.Context, string) (*model.ChannelInfo, error) {
	if f.channelErr != nil {
		return nil, f.channelErr
	}
	return f.channel, nil
}

type fakeFiles struct {
	saved  map[string][]model.Comment
	pruned []string
	err    error
}

func (f *fakeFiles) Save(videoID string, comments []model.Comment) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	if f.saved == nil {
		f.saved = map[string][]model.Comment{}
	}
	f.saved[videoID] = comments
	return videoID + ".csv", nil
}

func (f *fakeFiles) PruneExcept(videoID string) ([]string, error) {
	f.pruned = append(f.pruned, videoID)
	return nil, nil
}

type fakeInsights struct {
	ins   *model.Insights
	err   error
	input llm.InsightInput
}

func (f *fakeInsights) GenerateInsights(_ context.Context, input llm.InsightInput) (*model.Insights, error) {
	f.input = input
	return f.ins, f.err
}

func (f *fakeInsights) ModelName() string { return "fake-model" }

type fakeAnswerer struct {
	text string
	err  error
}

func (f *fakeAnswerer) Answer(context.Context, string, string) (string, error) {
	return f.text, f.err
}

type fakeReports struct {
	saved []*model.AnalysisReport
	err   error
}

func (f *fakeReports) SaveReport(r *model.AnalysisReport) error {
	f.saved = append(f.saved, r)
	return f.err
}

var errUpstream = &youtube.APIError{Op: "videos", StatusCode: 500, Message: "backend error"}

var errBoom = errors.New("boom")

const testLink = "https://www.youtube.com/watch?v=dQw4w9WgXcQ"

func sampleSource() *fakeSource {
	return &fakeSource{
		video: &model.VideoMeta{ID: "dQw4w9WgXcQ", Title: "Never Gonna Give You Up", ChannelID: "UC1", ChannelTitle: "Rick Astley"},
		stats: &model.VideoStats{ViewCount: 1500000, LikeCount: 30000, CommentCount: 4},
		channel: &model.ChannelInfo{
			ID: "UC1", Title: "Rick Astley", VideoCount: 321, SubscriberCount: 4200000,
			CreatedAt: "2006-03-13T00:00:00Z", Description: "Official channel",
		},
		comments: []model.Comment{
			{Username: "@dana", Text: "I hate the ending, it was terrible", Likes: 3, PublishedAt: "2024-05-04T00:00:00Z"},
			{Username: "@ana", Text: "I love the ending so much", Likes: 40, PublishedAt: "2024-05-03T00:00:00Z"},
			{Username: "@carl", Text: "The ending was awful and boring", Likes: 1, PublishedAt: "2024-05-02T00:00:00Z"},
			{Username: "@bo", Text: "Great music throughout", Likes: 40, PublishedAt: "2024-05-01T00:00:00Z"},
		},
	}
}
