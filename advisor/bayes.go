package advisor

import (
	"context"
	"math"
	"regexp"
	"strings"

	"github.com/gudangkita/coa_service/coa_core"
	"github.com/jbrukh/bayesian"
)

// Bayes is an offline fallback advisor. It trains a naive bayes classifier
// from the category rule keyword tables and normalizes log scores with a
// softmax to get a confidence in [0,1].
type Bayes struct {
	classes    []bayesian.Class
	classifier *bayesian.Classifier
}

func NewBayes(rules []*coa_core.CategoryRule) *Bayes {
	classes := make([]bayesian.Class, 0, len(rules))
	for _, rule := range rules {
		classes = append(classes, bayesian.Class(rule.Name))
	}

	cl := bayesian.NewClassifier(classes...)
	for _, rule := range rules {
		var terms []string
		for _, kw := range rule.Keywords {
			terms = append(terms, tokenize(kw)...)
		}
		terms = append(terms, tokenize(rule.Name)...)
		cl.Learn(terms, bayesian.Class(rule.Name))
	}

	return &Bayes{
		classes:    classes,
		classifier: cl,
	}
}

var nonLetter = regexp.MustCompile(`[^a-z]+`)

func tokenize(text string) []string {
	text = strings.ToLower(text)
	var terms []string
	for _, term := range nonLetter.Split(text, -1) {
		if len(term) < 3 {
			continue
		}
		terms = append(terms, term)
	}
	return terms
}

// Advise implements coa_core.Advisor.
func (b *Bayes) Advise(_ context.Context, description string, _ []string) (*coa_core.Advice, error) {
	terms := tokenize(description)
	if len(terms) == 0 {
		return &coa_core.Advice{Reasoning: "no classifiable terms"}, nil
	}

	scores, best, _ := b.classifier.LogScores(terms)
	if len(scores) == 0 {
		return &coa_core.Advice{Reasoning: "no classifiable terms"}, nil
	}

	category := string(b.classes[best])

	return &coa_core.Advice{
		Category:     category,
		ProposedName: strings.TrimSpace(description),
		IntentCode:   intentCode(category),
		Reasoning:    "bayesian keyword classification",
		Confidence:   softmaxTop(scores),
	}, nil
}

// softmaxTop converts log scores into the winning class probability.
func softmaxTop(scores []float64) float64 {
	maxScore := scores[0]
	for _, score := range scores {
		if score > maxScore {
			maxScore = score
		}
	}

	var sumExp float64
	expScores := make([]float64, len(scores))
	for i, score := range scores {
		expScores[i] = math.Exp(score - maxScore)
		sumExp += expScores[i]
	}

	top := 0.0
	for _, exp := range expScores {
		conf := exp / sumExp
		if conf > top {
			top = conf
		}
	}
	return top
}

func intentCode(category string) string {
	code := strings.ToLower(strings.TrimSpace(category))
	code = strings.ReplaceAll(code, " ", "_")
	return "classify_" + code
}
