package payment

import (
	"regexp"
	"strings"
)

// LabelNone is reported when the batch holds no sales at all.
const LabelNone = "Nenhum"

var (
	// annotationRe strips the "(R$ 1234.56)" sub-amounts that Classify
	// attaches to composite descriptions, so only category names remain.
	annotationRe = regexp.MustCompile(`\(R\$[^)]*\)`)

	// categoryRe finds the elementary category runs: letters (accented
	// included), spaces and the "/" of "Transferência/PIX".
	categoryRe = regexp.MustCompile(`[\p{L}\s/]+`)
)

// MostFrequent returns the single most common elementary payment category
// across the given descriptions. Composite descriptions contribute each of
// their tenders once. Ties go to the category encountered first; an empty
// batch yields LabelNone.
func MostFrequent(descriptions []string) string {
	counts := make(map[string]int)
	var order []string

	for _, desc := range descriptions {
		for _, category := range splitCategories(desc) {
			if counts[category] == 0 {
				order = append(order, category)
			}
			counts[category]++
		}
	}

	if len(order) == 0 {
		return LabelNone
	}

	best := order[0]
	for _, category := range order[1:] {
		if counts[category] > counts[best] {
			best = category
		}
	}
	return best
}

// splitCategories undoes the composite formatting of a payment description,
// returning its elementary category names.
func splitCategories(desc string) []string {
	cleaned := annotationRe.ReplaceAllString(desc, "")

	var categories []string
	for _, run := range categoryRe.FindAllString(cleaned, -1) {
		if category := strings.TrimSpace(run); category != "" {
			categories = append(categories, category)
		}
	}
	return categories
}
