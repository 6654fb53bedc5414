// Package sentiment scores text units with the VADER lexical model.
package sentiment

import (
	"regexp"
	"strings"

	"github.com/jonreiter/govader"
	"github.com/russross/blackfriday/v2"
)

// Label classifies a compound polarity score.
type Label string

const (
	Positive Label = "Positive"
	Negative Label = "Negative"
	Neutral  Label = "Neutral"
)

// Labels in tie-break precedence order.
var Labels = []Label{Positive, Negative, Neutral}

// Compound scores strictly above/below these bounds are Positive/Negative.
const (
	positiveThreshold = 0.05
	negativeThreshold = -0.05
)

// Score is the outcome of scoring a single text unit.
type Score struct {
	Label     Label              `json:"sentiment"`
	Compound  float64            `json:"score"`
	Breakdown map[string]float64 `json:"detailed_scores"`
}

// Analyzer wraps the VADER intensity analyzer. The lexicon is read-only
// after construction, so one Analyzer is shared process-wide.
type Analyzer struct {
	vader *govader.SentimentIntensityAnalyzer
}

func NewAnalyzer() *Analyzer {
	return &Analyzer{vader: govader.NewSentimentIntensityAnalyzer()}
}

var (
	markdownLinkPattern = regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	urlPattern          = regexp.MustCompile(`https?://\S+|www\.\S+`)
)

// RemoveLinks strips markdown links (keeping the anchor text) and bare URLs.
func RemoveLinks(input string) string {
	input = markdownLinkPattern.ReplaceAllString(input, "$1")
	return urlPattern.ReplaceAllString(input, "")
}

// NormalizeText renders any markdown to plain text and drops links so
// formatting noise does not reach the lexicon.
func NormalizeText(input string) string {
	output := blackfriday.Run([]byte(input), blackfriday.WithNoExtensions())
	plainText := strings.Join(strings.Fields(string(output)), " ")

	return RemoveLinks(plainText)
}

// LabelFor maps a compound score onto a label. The comparisons are
// strict: a compound of exactly +-0.05 is Neutral.
func LabelFor(compound float64) Label {
	switch {
	case compound > positiveThreshold:
		return Positive
	case compound < negativeThreshold:
		return Negative
	default:
		return Neutral
	}
}

// Score runs the lexical model over one text unit. Empty and
// whitespace-only input is valid and scores as Neutral.
func (a *Analyzer) Score(text string) Score {
	s := a.vader.PolarityScores(NormalizeText(text))

	return Score{
		Label:    LabelFor(s.Compound),
		Compound: s.Compound,
		Breakdown: map[string]float64{
			"pos":      s.Positive,
			"neg":      s.Negative,
			"neu":      s.Neutral,
			"compound": s.Compound,
		},
	}
}
