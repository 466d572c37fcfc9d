package intent

import (
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		query string
		want  Intent
	}{
		{"What is the general opinion?", CommentOpinion},
		{"Any feedback on the editing?", CommentOpinion},
		{"When was the channel created?", ChannelInfo},
		{"How many subscribers?", ChannelInfo},
		{"How many views does it have?", VideoInfo},
		{"Show me the stats", VideoInfo},
		{"Why do people hate it?", NegativeComments},
		{"Anything negative?", NegativeComments},
		{"Who won the world cup in 2018?", Unknown},
		{"", Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.query))
		})
	}
}

func TestClassify_CaseInsensitive(t *testing.T) {
	assert.Equal(t, VideoInfo, Classify("HOW MANY LIKES"))
}

// "comments" contains "comment", so the CommentOpinion rule fires before
// VideoInfo is ever consulted.
func TestClassify_CommentsMatchesCommentOpinionFirst(t *testing.T) {
	assert.Equal(t, CommentOpinion, Classify("what do people say in the comments"))
	assert.Equal(t, CommentOpinion, Classify("how many comments"))
}

func TestClassify_EarlierRankWinsOverlap(t *testing.T) {
	// "videos" is a ChannelInfo keyword and also contains VideoInfo's "video".
	assert.Equal(t, ChannelInfo, Classify("how many videos are there"))
	// "bad" would be NegativeComments, but "say" ranks first.
	assert.Equal(t, CommentOpinion, Classify("what bad things do they say"))
}

func TestNewRouter_SortsByRank(t *testing.T) {
	r := NewRouter([]Rule{
		{Intent: NegativeComments, Rank: 2, Keywords: []string{"bad"}},
		{Intent: VideoInfo, Rank: 1, Keywords: []string{"bad"}},
	})

	assert.Equal(t, VideoInfo, r.Classify("bad video"))
	assert.Equal(t, VideoInfo, r.Rules()[0].Intent)
}

func TestNewRouter_DoesNotAliasInput(t *testing.T) {
	rules := []Rule{{Intent: VideoInfo, Rank: 1, Keywords: []string{"views"}}}
	r := NewRouter(rules)
	rules[0].Intent = Unknown

	assert.Equal(t, VideoInfo, r.Classify("views"))
}
