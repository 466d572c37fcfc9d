package analysis

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/Rohithsilent/P-o-P/internal/model"
	"github.com/Rohithsilent/P-o-P/pkg/sentiment"
)

const ExplorePageSize = 50

const (
	SortRecent   = "recent"
	SortLikes    = "likes"
	SortUsername = "username"
)

var ErrInvalidQuery = errors.New("invalid explore query")

type ExploreQuery struct {
	Search    string
	Sentiment string // "", "all", or a label name
	Sort      string
	Limit     int
}

type CommentRow struct {
	model.Comment
	Label    sentiment.Label
	Compound float64
}

type ExploreResult struct {
	Rows      []CommentRow
	Matched   int
	Total     int
	Remaining int
}

// Explore filters and sorts the session's comments for browsing. Labels use
// the display policy, so near-zero scores show as Neutral. SortRecent keeps
// the order the API returned, which is newest first.
func (a *Analyzer) Explore(s *Session, q ExploreQuery) (*ExploreResult, error) {
	var want *sentiment.Label
	if q.Sentiment != "" && !strings.EqualFold(q.Sentiment, "all") {
		l, err := sentiment.ParseLabel(q.Sentiment)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidQuery, err)
		}
		want = &l
	}

	sortBy := strings.ToLower(q.Sort)
	switch sortBy {
	case "", SortRecent, SortLikes, SortUsername:
	default:
		return nil, fmt.Errorf("%w: unknown sort %q", ErrInvalidQuery, q.Sort)
	}

	limit := q.Limit
	if limit <= 0 || limit > ExplorePageSize {
		limit = ExplorePageSize
	}

	search := strings.ToLower(q.Search)
	rows := make([]CommentRow, 0, len(s.Comments))
	for _, c := range s.Comments {
		if search != "" && !strings.Contains(strings.ToLower(c.Text), search) {
			continue
		}
		compound := a.classifier.Compound(c.Text)
		label := sentiment.DisplayPolicy(compound)
		if want != nil && label != *want {
			continue
		}
		rows = append(rows, CommentRow{Comment: c, Label: label, Compound: compound})
	}

	switch sortBy {
	case SortLikes:
		slices.SortStableFunc(rows, func(x, y CommentRow) int {
			switch {
			case x.Likes > y.Likes:
				return -1
			case x.Likes < y.Likes:
				return 1
			}
			return 0
		})
	case SortUsername:
		slices.SortStableFunc(rows, func(x, y CommentRow) int {
			return strings.Compare(x.Username, y.Username)
		})
	}

	res := &ExploreResult{Matched: len(rows), Total: len(s.Comments)}
	if len(rows) > limit {
		res.Remaining = len(rows) - limit
		rows = rows[:limit]
	}
	res.Rows = rows
	return res, nil
}
