// Package money handles Brazilian-locale monetary text: parsing the
// "1.234,56" format the POS reports use and rendering BRL values for display.
package money

import (
	"fmt"
	"strings"

	gomoney "github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// ParseBRL converts a Brazilian-formatted amount ("1.234,56") into a decimal
// value. A leading "R$" and surrounding whitespace are tolerated. The
// conversion is lossless: the returned decimal carries exactly the digits of
// the source text.
func ParseBRL(s string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(s)
	cleaned = strings.ReplaceAll(cleaned, "R$", "")
	cleaned = strings.TrimSpace(cleaned)
	// 1.234,56 -> 1234.56
	cleaned = strings.ReplaceAll(cleaned, ".", "")
	cleaned = strings.ReplaceAll(cleaned, ",", ".")

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return d, nil
}

// FormatBRL renders a decimal value the way a Brazilian reader expects,
// e.g. "R$1.234,56". Values are rounded to cents.
func FormatBRL(d decimal.Decimal) string {
	cents := d.Shift(2).Round(0).IntPart()
	return gomoney.New(cents, gomoney.BRL).Display()
}
