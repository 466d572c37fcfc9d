package model

import (
	"time"

	"github.com/araddon/dateparse"
)

type Comment struct {
	Username    string
	Text        string
	Likes       int64
	PublishedAt string
	ReplyCount  int64
}

// PublishedTime parses PublishedAt, which is RFC 3339 from the API but may be
// any common layout in hand-edited CSV files. Unparsable values give the zero time.
func (c Comment) PublishedTime() time.Time {
	t, err := dateparse.ParseIn(c.PublishedAt, time.UTC)
	if err != nil {
		return time.Time{}
	}
	return t
}

func CommentTexts(comments []Comment) []string {
	texts := make([]string, len(comments))
	for i, c := range comments {
		texts[i] = c.Text
	}
	return texts
}

type VideoMeta struct {
	ID           string
	Title        string
	ChannelID    string
	ChannelTitle string
	PublishedAt  string
}

type VideoStats struct {
	ViewCount    int64
	LikeCount    int64
	CommentCount int64
}

// EngagementRate is likes per view in percent, 0 when there are no views.
func (s VideoStats) EngagementRate() float64 {
	if s.ViewCount <= 0 {
		return 0
	}
	return float64(s.LikeCount) / float64(s.ViewCount) * 100
}

type ChannelInfo struct {
	ID              string
	Title           string
	VideoCount      int64
	LogoURL         string
	CreatedAt       string
	SubscriberCount int64
	Description     string
}
