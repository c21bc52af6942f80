// Command fechamento consolidates a folder of monthly POS closing reports
// (PDF) into a single spreadsheet: one row per sale, the month's total and
// the most frequent payment method.
package main

func main() {
	Execute()
}
