package analysis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Rohithsilent/P-o-P/pkg/intent"
	"github.com/Rohithsilent/P-o-P/pkg/retrieval"
	"github.com/Rohithsilent/P-o-P/pkg/sentiment"

	"github.com/araddon/dateparse"
	"github.com/dustin/go-humanize"
)

const InsightsUnavailable = "AI insights unavailable. Please check API key configuration."

var ErrEmptyQuestion = errors.New("question is empty")

type Answer struct {
	Question string
	Intent   intent.Intent
	Text     string
	Matches  []retrieval.Match
}

// Ask routes a question by intent. Questions about the comments or the
// video need an analyzed session; anything else goes to the general
// answerer. Collaborator failures end up in the answer text, never as errors.
func (a *Analyzer) Ask(ctx context.Context, question string) (*Answer, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, ErrEmptyQuestion
	}

	ans := &Answer{Question: question, Intent: a.router.Classify(question)}
	if ans.Intent == intent.Unknown {
		ans.Text = a.generalAnswer(ctx, question)
		return ans, nil
	}

	s, err := a.store.Current()
	if err != nil {
		return nil, err
	}

	switch ans.Intent {
	case intent.CommentOpinion:
		a.searchComments(s, ans, nil, "Here are the most relevant comments:")
	case intent.NegativeComments:
		negative := func(text string) bool {
			return a.classifier.Classify(text) == sentiment.Negative
		}
		a.searchComments(s, ans, negative, "Here are the most relevant negative comments:")
	case intent.ChannelInfo:
		ans.Text = formatChannel(s)
	case intent.VideoInfo:
		ans.Text = formatVideo(s)
	}
	return ans, nil
}

func (a *Analyzer) searchComments(s *Session, ans *Answer, filter retrieval.Filter, heading string) {
	idx, err := s.Index()
	if err != nil {
		ans.Text = fmt.Sprintf("No comments available to search: %v", err)
		return
	}

	ans.Matches = idx.Search(ans.Question, retrieval.DefaultTopN, filter)

	var relevant []retrieval.Match
	for _, m := range ans.Matches {
		if m.Score > 0 {
			relevant = append(relevant, m)
		}
	}
	if len(relevant) == 0 {
		if filter != nil && len(ans.Matches) == 0 {
			ans.Text = "None of the most relevant comments are negative."
		} else {
			ans.Text = "No comments closely match your question."
		}
		return
	}

	var sb strings.Builder
	sb.WriteString(heading)
	for i, m := range relevant {
		fmt.Fprintf(&sb, "\n%d. %s", i+1, m.Comment)
	}
	ans.Text = sb.String()
}

func (a *Analyzer) generalAnswer(ctx context.Context, question string) string {
	if a.answerer == nil {
		return InsightsUnavailable
	}

	text, err := a.answerer.Answer(ctx, question, "")
	if err != nil {
		slog.Error("general answer failed", "error", err)
		return "Error: " + err.Error()
	}
	if strings.TrimSpace(text) == "" {
		return InsightsUnavailable
	}
	return text
}

func formatChannel(s *Session) string {
	c := s.Channel
	if c == nil {
		return "Channel information is unavailable for this video."
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Channel: %s\n", c.Title)
	fmt.Fprintf(&sb, "Subscribers: %s\n", humanize.Comma(c.SubscriberCount))
	fmt.Fprintf(&sb, "Videos: %s\n", humanize.Comma(c.VideoCount))
	if t := parseDate(c.CreatedAt); !t.IsZero() {
		fmt.Fprintf(&sb, "Created: %s\n", t.Format("January 2, 2006"))
	}
	if c.Description != "" {
		fmt.Fprintf(&sb, "Description: %s", c.Description)
	}
	return strings.TrimRight(sb.String(), "\n")
}

func formatVideo(s *Session) string {
	st := s.Stats
	if st == nil {
		return "Video statistics are unavailable for this video."
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Title: %s\n", s.Title())
	fmt.Fprintf(&sb, "Views: %s\n", humanize.Comma(st.ViewCount))
	fmt.Fprintf(&sb, "Likes: %s\n", humanize.Comma(st.LikeCount))
	fmt.Fprintf(&sb, "Comments: %s\n", humanize.Comma(st.CommentCount))
	fmt.Fprintf(&sb, "Engagement rate: %.2f%%", st.EngagementRate())
	return sb.String()
}

func parseDate(s string) time.Time {
	t, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return time.Time{}
	}
	return t
}
