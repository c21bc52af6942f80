// Package extract reads POS closing reports and parses their text into
// structured sale transactions.
package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MatheusGuedes02/Fechamento-Ecomadeiras/pkg/money"
)

// Transaction is one recognized sale. Records are built once by the parser
// and only ever read afterwards.
type Transaction struct {
	OrderNumber int
	Date        time.Time
	Customer    string
	Total       decimal.Decimal
	Payment     string
}

// Classifier produces the payment description for a sale's observation text.
type Classifier interface {
	Classify(observations string) (string, error)
}

// Stats counts what the parser saw in one document. Blocks that do not fit
// the structural pattern are expected noise from PDF extraction (headers,
// footers, page breaks) and are skipped without error; the counters exist
// for diagnostics only.
type Stats struct {
	Blocks   int // blocks produced by the split
	Matched  int // blocks turned into sale records
	Skipped  int // blocks that did not fit the structural pattern
	Excluded int // register open/close events, not sales
}

// Add merges the counters of another document into s.
func (s *Stats) Add(other Stats) {
	s.Blocks += other.Blocks
	s.Matched += other.Matched
	s.Skipped += other.Skipped
	s.Excluded += other.Excluded
}

var (
	// blockStartRe marks the first line of a transaction block: a 4-digit
	// order token followed by whitespace.
	blockStartRe = regexp.MustCompile(`^\d{4}\s`)

	// txRe is the structural grammar of one block: order token, dd/mm/yyyy
	// date, time of sale (discarded), customer name (non-greedy), unit price
	// (discarded), sale total, then everything else as the observation
	// segment. (?s) lets the observations span lines.
	txRe = regexp.MustCompile(`(?s)(\d{4})\s+(\d{2}/\d{2}/\d{4})\s+[\d:]+\s+(.*?)\s+R\$\s[\d.,]+\s+R\$\s([\d.,]+)(.*)`)
)

const dateLayout = "02/01/2006"

// Register open/close events carry this marker in the customer field.
const drawerOpeningMarker = "abertura de caixa"

// Parser turns report text into sale transactions. The structural pattern is
// the single place that knows the POS vendor's layout, so a layout change
// only ever touches this package.
type Parser struct {
	classifier Classifier
}

// NewParser creates a parser that classifies payments with the given
// classifier.
func NewParser(classifier Classifier) *Parser {
	return &Parser{classifier: classifier}
}

// Parse splits the document text into transaction blocks and extracts one
// record per block that fits the structural pattern. A conversion failure
// after a structural match aborts the document: at that point the block is
// known to be a sale, so bad numbers mean a corrupted report, not noise.
// Records extracted before the failure are returned alongside the error.
func (p *Parser) Parse(text string) ([]Transaction, Stats, error) {
	blocks := splitBlocks(text)

	var stats Stats
	records := make([]Transaction, 0, len(blocks))

	for _, block := range blocks {
		stats.Blocks++

		m := txRe.FindStringSubmatch(block)
		if m == nil {
			stats.Skipped++
			continue
		}

		customer := strings.TrimSpace(m[3])
		if strings.Contains(strings.ToLower(customer), drawerOpeningMarker) {
			stats.Excluded++
			continue
		}

		order, err := strconv.Atoi(m[1])
		if err != nil {
			return records, stats, fmt.Errorf("order token %q: %w", m[1], err)
		}

		date, err := time.Parse(dateLayout, m[2])
		if err != nil {
			return records, stats, fmt.Errorf("order %d: sale date %q: %w", order, m[2], err)
		}

		total, err := money.ParseBRL(m[4])
		if err != nil {
			return records, stats, fmt.Errorf("order %d: total value: %w", order, err)
		}

		payment, err := p.classifier.Classify(strings.TrimSpace(m[5]))
		if err != nil {
			return records, stats, fmt.Errorf("order %d: payment: %w", order, err)
		}

		stats.Matched++
		records = append(records, Transaction{
			OrderNumber: order,
			Date:        date,
			Customer:    customer,
			Total:       total,
			Payment:     payment,
		})
	}

	return records, stats, nil
}

// splitBlocks divides the document at every line that opens a new transaction
// header. The header line stays with the block it opens, so any text before
// the first header forms its own non-matching block. Empty text yields no
// blocks.
func splitBlocks(text string) []string {
	if text == "" {
		return nil
	}

	var blocks []string
	var current []string

	for _, line := range strings.Split(text, "\n") {
		if blockStartRe.MatchString(line) && len(current) > 0 {
			blocks = append(blocks, strings.Join(current, "\n"))
			current = nil
		}
		current = append(current, line)
	}
	return append(blocks, strings.Join(current, "\n"))
}
