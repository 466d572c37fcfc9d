package sentiment

// Tally counts comments per label. Positive+Negative+Neutral always equals Total.
type Tally struct {
	Positive int `json:"num_positive"`
	Negative int `json:"num_negative"`
	Neutral  int `json:"num_neutral"`
	Total    int `json:"total"`
}

// Add records one label.
func (t *Tally) Add(l Label) {
	switch l {
	case Positive:
		t.Positive++
	case Negative:
		t.Negative++
	default:
		t.Neutral++
	}
	t.Total++
}

// Count returns the number of comments carrying label l.
func (t Tally) Count(l Label) int {
	switch l {
	case Positive:
		return t.Positive
	case Negative:
		return t.Negative
	default:
		return t.Neutral
	}
}

// Percent returns the share of label l in percent, or 0 for an empty tally.
func (t Tally) Percent(l Label) float64 {
	if t.Total == 0 {
		return 0
	}
	return float64(t.Count(l)) / float64(t.Total) * 100
}

// Overall compares positive and negative counts; neutral comments never tip the balance.
func (t Tally) Overall() Label {
	switch {
	case t.Positive > t.Negative:
		return Positive
	case t.Negative > t.Positive:
		return Negative
	default:
		return Neutral
	}
}

// Tally classifies every comment with TallyPolicy and counts the labels.
// An empty slice yields a zero Tally.
func (c *Classifier) Tally(comments []string) Tally {
	var t Tally
	for _, text := range comments {
		t.Add(c.Classify(text))
	}
	return t
}

// Labels returns the TallyPolicy label of each comment, by position.
func (c *Classifier) Labels(comments []string) []Label {
	labels := make([]Label, len(comments))
	for i, text := range comments {
		labels[i] = c.Classify(text)
	}
	return labels
}
