package model

import (
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

func TestCommentPublishedTime(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{"2024-03-01T10:00:00Z", time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)},
		{"2024-03-01 10:00:00", time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)},
		{"", time.Time{}},
		{"not a date", time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := Comment{PublishedAt: tt.in}.PublishedTime()
			assert.Equal(t, true, tt.want.Equal(got))
		})
	}
}

func TestVideoStatsEngagementRate(t *testing.T) {
	assert.Equal(t, 0.0, VideoStats{LikeCount: 5}.EngagementRate())
	assert.Equal(t, 2.5, VideoStats{ViewCount: 200, LikeCount: 5}.EngagementRate())
}

func TestCommentTexts(t *testing.T) {
	got := CommentTexts([]Comment{{Text: "a"}, {Text: ""}, {Text: "c"}})
	assert.Equal(t, []string{"a", "", "c"}, got)
}
