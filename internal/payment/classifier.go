// Package payment turns the free-text observation segment of a sale into a
// canonical payment-method description, and computes method frequencies
// across a batch of sales.
package payment

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/cloudflare/ahocorasick"

	"github.com/MatheusGuedes02/Fechamento-Ecomadeiras/pkg/money"
)

// Canonical payment-method labels, matching the wording the store's
// spreadsheets have always used.
const (
	LabelCash        = "Dinheiro"
	LabelCredit      = "Cartão de Crédito"
	LabelDebit       = "Cartão de Débito"
	LabelPIX         = "PIX"
	LabelTransfer    = "Transferência/PIX"
	LabelUnspecified = "Não Especificado"
)

// tenderRe captures "R$ <amount> … <keyword>" pairs: a restated sub-amount
// followed by its tender keyword. A sale split across tenders lists one such
// pair per tender. `.` does not cross newlines, so each pair must sit on a
// single line of the observations.
var tenderRe = regexp.MustCompile(`(?i)R\$\s*([\d.,]+)\s*.*?(dinheiro|master|elo|pix)`)

// tenderLabels maps the keyword families the POS staff actually write to
// their canonical labels. "master" and "elo" are the card brands the store's
// terminals take for credit and debit respectively.
var tenderLabels = map[string]string{
	"dinheiro": LabelCash,
	"master":   LabelCredit,
	"elo":      LabelDebit,
	"pix":      LabelPIX,
}

type keywordRule struct {
	keyword  string
	label    string
	priority int
}

// fallbackRules apply when no amount-annotated tender is present: the note
// names a payment channel and the amount is simply the sale total. Higher
// priority wins: "link de pagamento" implies credit even when "pix" also
// appears in the same note.
var fallbackRules = []keywordRule{
	{"link de pagamento", LabelCredit, 4},
	{"elo", LabelDebit, 3},
	{"a receber", LabelTransfer, 2},
	{"pix", LabelTransfer, 2},
	{"dinheiro", LabelCash, 1},
}

// Classifier maps observation text to a payment description. The fallback
// keyword table is matched with an Aho-Corasick automaton, so every keyword
// is found in a single pass over the text regardless of table size. A
// Classifier is safe for concurrent use.
type Classifier struct {
	matcher *ahocorasick.Matcher
	rules   []keywordRule
}

// NewClassifier builds a classifier over the store's keyword table.
func NewClassifier() *Classifier {
	patterns := make([][]byte, len(fallbackRules))
	for i, rule := range fallbackRules {
		patterns[i] = []byte(rule.keyword)
	}
	return &Classifier{
		matcher: ahocorasick.NewMatcher(patterns),
		rules:   fallbackRules,
	}
}

// Classify returns the canonical payment description for a sale's
// observation text. When one or more amount-annotated tenders are present
// the result is their comma-joined list in order of appearance; otherwise a
// single fallback category, or LabelUnspecified when nothing matches.
func (c *Classifier) Classify(observations string) (string, error) {
	entries, err := c.tenders(observations)
	if err != nil {
		return "", err
	}
	if len(entries) > 0 {
		return strings.Join(entries, ", "), nil
	}
	return c.fallback(observations), nil
}

// tenders extracts the amount-annotated tender entries, e.g.
// "Cartão de Crédito (R$ 1000.00)".
func (c *Classifier) tenders(observations string) ([]string, error) {
	matches := tenderRe.FindAllStringSubmatch(observations, -1)
	if len(matches) == 0 {
		return nil, nil
	}

	entries := make([]string, 0, len(matches))
	for _, m := range matches {
		amount, err := money.ParseBRL(m[1])
		if err != nil {
			return nil, fmt.Errorf("tender amount: %w", err)
		}
		label := tenderLabels[strings.ToLower(m[2])]
		entries = append(entries, fmt.Sprintf("%s (R$ %s)", label, amount.StringFixed(2)))
	}
	return entries, nil
}

func (c *Classifier) fallback(observations string) string {
	// Match mutates the automaton's dedup counters; MatchThreadSafe keeps
	// one Classifier usable from concurrent extraction workers.
	hits := c.matcher.MatchThreadSafe([]byte(strings.ToLower(observations)))

	best := -1
	for _, idx := range hits {
		if idx < 0 || idx >= len(c.rules) {
			continue
		}
		if best == -1 || c.rules[idx].priority > c.rules[best].priority {
			best = idx
		}
	}
	if best == -1 {
		return LabelUnspecified
	}
	return c.rules[best].label
}
