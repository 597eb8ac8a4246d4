// Package sentiment scores raw text and maps the scores to the ternary
// sentiment labels stored alongside news records.
package sentiment

import "github.com/jonreiter/govader"

// Scores holds the polarity scores of one piece of text. Negative, Neutral
// and Positive are in [0,1]; Compound is in [-1,1].
type Scores struct {
	Negative float64
	Neutral  float64
	Positive float64
	Compound float64
}

// Analyzer scores raw text. Implementations are expected to be stateless
// between calls.
type Analyzer interface {
	Score(text string) Scores
}

// Ternary sentiment labels.
const (
	Negative = -1
	Neutral  = 0
	Positive = 1
)

// Compound score thresholds separating the three labels.
const (
	positiveThreshold = 0.05
	negativeThreshold = -0.05
)

// Classify maps polarity scores to a label and a confidence, taken from the
// score matching the label.
func Classify(s Scores) (label int, confidence float64) {
	switch {
	case s.Compound >= positiveThreshold:
		return Positive, s.Positive
	case s.Compound <= negativeThreshold:
		return Negative, s.Negative
	default:
		return Neutral, s.Neutral
	}
}

// vader is the VADER rule-based analyzer.
type vader struct {
	sia *govader.SentimentIntensityAnalyzer
}

// NewVader returns a VADER analyzer.
func NewVader() Analyzer {
	return vader{sia: govader.NewSentimentIntensityAnalyzer()}
}

func (v vader) Score(text string) Scores {
	s := v.sia.PolarityScores(text)
	return Scores{
		Negative: s.Negative,
		Neutral:  s.Neutral,
		Positive: s.Positive,
		Compound: s.Compound,
	}
}
