// Package retrieval finds the comments most similar to a free-text query.
//
// An Index fits a TF-IDF vocabulary over a comment corpus:
//
//   - tokens are runs of two or more letters, digits or underscores, lower-cased;
//   - English stop-words are dropped;
//   - IDF is smoothed as ln((1+n)/(1+df)) + 1;
//   - every row is L2-normalised, so the dot product is the cosine similarity.
//
// Search ranks by similarity descending and breaks ties by corpus position,
// earliest first. An Index is immutable and safe for concurrent use.
package retrieval

import (
	"errors"
	"math"
	"regexp"
	"slices"
	"strings"
)

// DefaultTopN is used when Search is called with topN <= 0.
const DefaultTopN = 5

var (
	// ErrEmptyCorpus is returned when an index is requested over zero comments.
	ErrEmptyCorpus = errors.New("retrieval: empty corpus")
	// ErrEmptyVocabulary is returned when no comment contributes a single term.
	ErrEmptyVocabulary = errors.New("retrieval: empty vocabulary")
)

var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}_]{2,}`)

// Filter keeps a comment when it returns true.
type Filter func(comment string) bool

// Match is one ranked comment.
type Match struct {
	Index   int     `json:"index"`
	Comment string  `json:"comment"`
	Score   float64 `json:"score"`
}

type vector map[int]float64

// Index is a fitted TF-IDF representation of a comment corpus.
type Index struct {
	corpus []string
	vocab  map[string]int
	idf    []float64
	rows   []vector
}

// NewIndex fits the vocabulary and weights over corpus.
func NewIndex(corpus []string) (*Index, error) {
	if len(corpus) == 0 {
		return nil, ErrEmptyCorpus
	}

	docs := make([][]string, len(corpus))
	vocab := make(map[string]int)
	var df []int
	for i, text := range corpus {
		docs[i] = terms(text)
		seen := make(map[int]struct{}, len(docs[i]))
		for _, term := range docs[i] {
			id, ok := vocab[term]
			if !ok {
				id = len(vocab)
				vocab[term] = id
				df = append(df, 0)
			}
			if _, dup := seen[id]; !dup {
				seen[id] = struct{}{}
				df[id]++
			}
		}
	}
	if len(vocab) == 0 {
		return nil, ErrEmptyVocabulary
	}

	n := float64(len(corpus))
	idf := make([]float64, len(df))
	for id, d := range df {
		idf[id] = math.Log((1+n)/(1+float64(d))) + 1
	}

	idx := &Index{
		corpus: slices.Clone(corpus),
		vocab:  vocab,
		idf:    idf,
		rows:   make([]vector, len(corpus)),
	}
	for i, doc := range docs {
		idx.rows[i] = idx.weigh(doc)
	}
	return idx, nil
}

// Len returns the number of indexed comments.
func (idx *Index) Len() int {
	return len(idx.corpus)
}

// Vocabulary returns the fitted terms in sorted order.
func (idx *Index) Vocabulary() []string {
	out := make([]string, 0, len(idx.vocab))
	for term := range idx.vocab {
		out = append(out, term)
	}
	slices.Sort(out)
	return out
}

// Search returns the topN comments most similar to query. The filter, when
// non-nil, is applied to the selected topN only; filtered-out comments are
// not replaced, so fewer than topN matches may come back. Query terms outside
// the vocabulary are ignored; a query with no known terms scores 0 everywhere.
func (idx *Index) Search(query string, topN int, filter Filter) []Match {
	if topN <= 0 {
		topN = DefaultTopN
	}

	q := idx.weigh(terms(query))
	matches := make([]Match, len(idx.rows))
	for i, row := range idx.rows {
		matches[i] = Match{Index: i, Comment: idx.corpus[i], Score: dot(q, row)}
	}
	slices.SortStableFunc(matches, cmpMatch)

	if len(matches) > topN {
		matches = matches[:topN]
	}
	if filter == nil {
		return matches
	}

	kept := matches[:0]
	for _, m := range matches {
		if filter(m.Comment) {
			kept = append(kept, m)
		}
	}
	return kept
}

// FindRelevant builds an index over comments and searches it once.
func FindRelevant(query string, comments []string, topN int, filter Filter) ([]Match, error) {
	idx, err := NewIndex(comments)
	if err != nil {
		return nil, err
	}
	return idx.Search(query, topN, filter), nil
}

// Comments strips scores from matches.
func Comments(matches []Match) []string {
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.Comment
	}
	return out
}

func (idx *Index) weigh(doc []string) vector {
	v := make(vector, len(doc))
	for _, term := range doc {
		if id, ok := idx.vocab[term]; ok {
			v[id]++
		}
	}
	var norm float64
	for id, tf := range v {
		w := tf * idx.idf[id]
		v[id] = w
		norm += w * w
	}
	if norm == 0 {
		return v
	}
	norm = math.Sqrt(norm)
	for id := range v {
		v[id] /= norm
	}
	return v
}

func terms(text string) []string {
	tokens := tokenPattern.FindAllString(strings.ToLower(text), -1)
	out := tokens[:0]
	for _, tok := range tokens {
		if !isStopword(tok) {
			out = append(out, tok)
		}
	}
	return out
}

func dot(a, b vector) float64 {
	if len(a) > len(b) {
		a, b = b, a
	}
	var sum float64
	for id, w := range a {
		sum += w * b[id]
	}
	return sum
}

func cmpMatch(a, b Match) int {
	if a.Score != b.Score {
		if a.Score > b.Score {
			return -1
		}
		return 1
	}
	return a.Index - b.Index
}
