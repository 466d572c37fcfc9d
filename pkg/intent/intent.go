// Package intent routes free-text questions about an analyzed video to one
// of a fixed set of intents using an ordered keyword table.
package intent

import (
	"slices"
	"strings"
)

type Intent string

const (
	CommentOpinion   Intent = "comment_opinion"
	ChannelInfo      Intent = "channel_info"
	VideoInfo        Intent = "video_info"
	NegativeComments Intent = "negative_comments"
	Unknown          Intent = "unknown"
)

// Rule binds an intent to keywords. Lower ranks are tested first and the
// first rule with a matching keyword wins, so overlapping keywords resolve
// by rank.
type Rule struct {
	Intent   Intent
	Rank     int
	Keywords []string
}

// DefaultRules is the routing table used by Classify. "comment" in the
// CommentOpinion rule also matches "comments", which leaves that VideoInfo
// keyword unreachable.
var DefaultRules = []Rule{
	{Intent: CommentOpinion, Rank: 1, Keywords: []string{"comment", "opinion", "thoughts", "say", "feedback"}},
	{Intent: ChannelInfo, Rank: 2, Keywords: []string{"channel", "subscriber", "videos", "date", "created", "description"}},
	{Intent: VideoInfo, Rank: 3, Keywords: []string{"views", "likes", "comments", "stats", "video"}},
	{Intent: NegativeComments, Rank: 4, Keywords: []string{"negative", "hate", "bad", "poor"}},
}

type Router struct {
	rules []Rule
}

func NewRouter(rules []Rule) *Router {
	sorted := slices.Clone(rules)
	slices.SortStableFunc(sorted, func(a, b Rule) int { return a.Rank - b.Rank })
	return &Router{rules: sorted}
}

// Classify lower-cases the query and returns the intent of the first rule
// with a keyword occurring anywhere in it, or Unknown.
func (r *Router) Classify(query string) Intent {
	q := strings.ToLower(query)
	for _, rule := range r.rules {
		if containsAny(q, rule.Keywords...) {
			return rule.Intent
		}
	}
	return Unknown
}

func (r *Router) Rules() []Rule {
	return slices.Clone(r.rules)
}

var defaultRouter = NewRouter(DefaultRules)

func Classify(query string) Intent {
	return defaultRouter.Classify(query)
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
