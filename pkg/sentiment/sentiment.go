// Package sentiment classifies comment polarity with the VADER lexicon and
// aggregates labels into tallies.
//
// Two threshold policies exist over the same compound score:
//
//   - TallyPolicy splits at exactly zero and is used for corpus-level counts.
//   - DisplayPolicy keeps a ±0.05 dead zone and is used when labelling
//     individual comments in the explorer.
//
// A Classifier is safe for concurrent use by multiple goroutines.
package sentiment

import (
	"encoding/json"
	"fmt"
	"html"
	"math"
	"strings"

	"github.com/jonreiter/govader"
)

const (
	// displayDeadZone is the absolute compound score below which DisplayPolicy reports Neutral.
	displayDeadZone = 0.05

	scorePrecision = 1e4
)

// Label is the ternary sentiment polarity of a comment.
type Label int

const (
	Negative Label = -1
	Neutral  Label = 0
	Positive Label = 1
)

var labelNames = map[Label]string{
	Negative: "Negative",
	Neutral:  "Neutral",
	Positive: "Positive",
}

var labelFromName = map[string]Label{
	"negative": Negative,
	"neutral":  Neutral,
	"positive": Positive,
}

// String returns the name of the label.
func (l Label) String() string {
	if name, ok := labelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("Label(%d)", int(l))
}

// MarshalJSON encodes the label as a JSON string.
func (l Label) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

// UnmarshalJSON decodes a JSON string into a Label.
func (l *Label) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, err := ParseLabel(s)
	if err != nil {
		return err
	}
	*l = v
	return nil
}

// ParseLabel parses a label name case-insensitively.
func ParseLabel(s string) (Label, error) {
	v, ok := labelFromName[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return Neutral, fmt.Errorf("sentiment: unknown label: %q", s)
	}
	return v, nil
}

// Policy maps a compound score to a label.
type Policy func(compound float64) Label

// TallyPolicy labels a score of exactly 0 as Neutral and splits on its sign otherwise.
func TallyPolicy(compound float64) Label {
	switch {
	case compound == 0:
		return Neutral
	case compound > 0:
		return Positive
	default:
		return Negative
	}
}

// DisplayPolicy labels scores inside [-0.05, 0.05] as Neutral.
func DisplayPolicy(compound float64) Label {
	switch {
	case compound > displayDeadZone:
		return Positive
	case compound < -displayDeadZone:
		return Negative
	default:
		return Neutral
	}
}

// Classifier scores text with the VADER lexicon and rule set.
type Classifier struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

// NewClassifier loads the embedded lexicon. Loading takes a few milliseconds,
// so callers should build one Classifier and share it.
func NewClassifier() *Classifier {
	return &Classifier{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

// Compound returns the normalized compound score of text in [-1, 1], rounded
// to four decimals. HTML entities are decoded before scoring; blank text scores 0.
func (c *Classifier) Compound(text string) float64 {
	text = strings.TrimSpace(html.UnescapeString(text))
	if text == "" {
		return 0
	}
	return roundScore(c.analyzer.PolarityScores(text).Compound)
}

func roundScore(v float64) float64 {
	return math.Round(v*scorePrecision) / scorePrecision
}

// ClassifyWith labels text using the given policy.
func (c *Classifier) ClassifyWith(text string, policy Policy) Label {
	return policy(c.Compound(text))
}

// Classify labels text with TallyPolicy.
func (c *Classifier) Classify(text string) Label {
	return c.ClassifyWith(text, TallyPolicy)
}

// ClassifyDisplay labels text with DisplayPolicy.
func (c *Classifier) ClassifyDisplay(text string) Label {
	return c.ClassifyWith(text, DisplayPolicy)
}
