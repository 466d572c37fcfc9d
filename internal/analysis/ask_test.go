package analysis

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Rohithsilent/P-o-P/internal/model"
	"github.com/Rohithsilent/P-o-P/pkg/intent"

	"github.com/go-playground/assert/v2"
)

func analyzed(t *testing.T, d Deps) *Analyzer {
	t.Helper()
	if d.Source == nil {
		d.Source = sampleSource()
	}
	a := New(d)
	_, err := a.Analyze(context.Background(), testLink)
	assert.Equal(t, nil, err)
	return a
}

func TestAsk_EmptyQuestion(t *testing.T) {
	_, err := New(Deps{}).Ask(context.Background(), "   ")
	assert.Equal(t, ErrEmptyQuestion, err)
}

func TestAsk_NeedsSessionForVideoQuestions(t *testing.T) {
	_, err := New(Deps{}).Ask(context.Background(), "how many views?")
	assert.Equal(t, ErrNoSession, err)
}

func TestAsk_CommentOpinion(t *testing.T) {
	a := analyzed(t, Deps{})

	ans, err := a.Ask(context.Background(), "any feedback about the music?")

	assert.Equal(t, nil, err)
	assert.Equal(t, intent.CommentOpinion, ans.Intent)
	assert.Equal(t, 4, len(ans.Matches))
	assert.Equal(t, 3, ans.Matches[0].Index)
	assert.Equal(t, "Here are the most relevant comments:\n1. Great music throughout", ans.Text)
}

func TestAsk_CommentOpinionWithoutOverlap(t *testing.T) {
	a := analyzed(t, Deps{})

	ans, err := a.Ask(context.Background(), "what do people say in the comments")

	assert.Equal(t, nil, err)
	assert.Equal(t, intent.CommentOpinion, ans.Intent)
	assert.Equal(t, "No comments closely match your question.", ans.Text)
}

func TestAsk_NegativeCommentsAreClassified(t *testing.T) {
	a := analyzed(t, Deps{})

	ans, err := a.Ask(context.Background(), "why do people hate the ending")

	assert.Equal(t, nil, err)
	assert.Equal(t, intent.NegativeComments, ans.Intent)
	assert.Equal(t, 2, len(ans.Matches))
	assert.Equal(t, 0, ans.Matches[0].Index)
	assert.Equal(t, 2, ans.Matches[1].Index)
	assert.Equal(t, true, strings.HasPrefix(ans.Text, "Here are the most relevant negative comments:"))
	assert.Equal(t, false, strings.Contains(ans.Text, "I love the ending"))
}

func TestAsk_EmptyCorpusIsReportedInText(t *testing.T) {
	src := sampleSource()
	src.comments = nil
	a := analyzed(t, Deps{Source: src})

	ans, err := a.Ask(context.Background(), "what is the general opinion")

	assert.Equal(t, nil, err)
	assert.Equal(t, 0, len(ans.Matches))
	assert.Equal(t, true, strings.HasPrefix(ans.Text, "No comments available to search"))
}

func TestAsk_ChannelInfo(t *testing.T) {
	a := analyzed(t, Deps{})

	ans, err := a.Ask(context.Background(), "When was the channel created?")

	assert.Equal(t, nil, err)
	assert.Equal(t, intent.ChannelInfo, ans.Intent)
	assert.Equal(t, "Channel: Rick Astley\nSubscribers: 4,200,000\nVideos: 321\nCreated: March 13, 2006\nDescription: Official channel", ans.Text)
}

func TestAsk_VideoInfo(t *testing.T) {
	a := analyzed(t, Deps{})

	ans, err := a.Ask(context.Background(), "how many views and likes?")

	assert.Equal(t, nil, err)
	assert.Equal(t, intent.VideoInfo, ans.Intent)
	assert.Equal(t, "Title: Never Gonna Give You Up\nViews: 1,500,000\nLikes: 30,000\nComments: 4\nEngagement rate: 2.00%", ans.Text)
}

func TestAsk_MissingMetadata(t *testing.T) {
	src := sampleSource()
	src.videoErr = errUpstream
	src.statsErr = errUpstream
	a := analyzed(t, Deps{Source: src})

	ans, _ := a.Ask(context.Background(), "show the stats")
	assert.Equal(t, "Video statistics are unavailable for this video.", ans.Text)

	ans, _ = a.Ask(context.Background(), "subscriber count?")
	assert.Equal(t, "Channel information is unavailable for this video.", ans.Text)
}

func TestAsk_Unknown(t *testing.T) {
	tests := []struct {
		name     string
		answerer *fakeAnswerer
		want     string
	}{
		{"no answerer", nil, InsightsUnavailable},
		{"answer", &fakeAnswerer{text: "Canberra."}, "Canberra."},
		{"blank answer", &fakeAnswerer{text: "  "}, InsightsUnavailable},
		{"failure", &fakeAnswerer{err: errors.New("quota exceeded")}, "Error: quota exceeded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Deps{}
			if tt.answerer != nil {
				d.Answerer = tt.answerer
			}
			ans, err := New(d).Ask(context.Background(), "What is the capital of Australia?")

			assert.Equal(t, nil, err)
			assert.Equal(t, intent.Unknown, ans.Intent)
			assert.Equal(t, tt.want, ans.Text)
		})
	}
}

func TestFormatChannel_OmitsUnknownFields(t *testing.T) {
	s := &Session{Channel: &model.ChannelInfo{Title: "x", CreatedAt: "garbage"}}
	assert.Equal(t, "Channel: x\nSubscribers: 0\nVideos: 0", formatChannel(s))
}
