package analysis

import (
	"errors"
	"sync"
	"time"

	"github.com/Rohithsilent/P-o-P/internal/model"
	"github.com/Rohithsilent/P-o-P/pkg/retrieval"
	"github.com/Rohithsilent/P-o-P/pkg/sentiment"
)

var ErrNoSession = errors.New("no video has been analyzed yet")

// Session is the result of one analysis run. It is never mutated after
// Analyze returns, which is what makes the lazily built index safe to reuse.
type Session struct {
	ID       string
	VideoID  string
	Link     string
	Video    *model.VideoMeta
	Stats    *model.VideoStats
	Channel  *model.ChannelInfo
	Comments []model.Comment
	Tally    sentiment.Tally

	Insights      *model.Insights
	InsightSource string
	ModelUsed     string

	CSVPath   string
	Warnings  []string
	CreatedAt time.Time

	indexOnce sync.Once
	index     *retrieval.Index
	indexErr  error
}

func (s *Session) Title() string {
	if s.Video != nil && s.Video.Title != "" {
		return s.Video.Title
	}
	return s.VideoID
}

// Index returns the retrieval index over the session's comments, building it
// on first use.
func (s *Session) Index() (*retrieval.Index, error) {
	s.indexOnce.Do(func() {
		s.index, s.indexErr = retrieval.NewIndex(model.CommentTexts(s.Comments))
	})
	return s.index, s.indexErr
}

// Store holds the session currently being explored.
type Store struct {
	mu      sync.RWMutex
	current *Session
}

func NewStore() *Store {
	return &Store{}
}

// Replace installs s as the current session and returns the one it replaced.
func (st *Store) Replace(s *Session) *Session {
	st.mu.Lock()
	defer st.mu.Unlock()
	prev := st.current
	st.current = s
	return prev
}

func (st *Store) Current() (*Session, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	if st.current == nil {
		return nil, ErrNoSession
	}
	return st.current, nil
}
