package report

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/MatheusGuedes02/Fechamento-Ecomadeiras/pkg/money"
)

type csvRow struct {
	OrderNumber int    `csv:"Numero do Pedido"`
	Date        string `csv:"Data"`
	Customer    string `csv:"Nome do Cliente"`
	Total       string `csv:"Valor Total"`
	Payment     string `csv:"Meio de Pagamento"`
}

// WriteCSV mirrors the spreadsheet as plain CSV for pipelines that consume
// text instead of xlsx: the same columns and rows, then the two summary
// lines after a blank record.
func WriteCSV(path string, res *Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	defer f.Close()

	rows := make([]csvRow, 0, len(res.Records))
	for _, rec := range res.Records {
		rows = append(rows, csvRow{
			OrderNumber: rec.OrderNumber,
			Date:        rec.Date.Format(recordDateLayout),
			Customer:    rec.Customer,
			Total:       rec.Total.StringFixed(2),
			Payment:     rec.Payment,
		})
	}
	if err := gocsv.MarshalFile(&rows, f); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write([]string{""}); err != nil {
		return err
	}
	if err := w.Write([]string{totalLabel, money.FormatBRL(res.Total)}); err != nil {
		return err
	}
	if err := w.Write([]string{methodLabel, res.MostFrequent}); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}
