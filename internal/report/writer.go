package report

import (
	"fmt"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
)

// Spreadsheet layout constants. The column order and summary labels are the
// ones the store's bookkeeper has always worked with.
const (
	sheetName   = "Relatorio_Mensal"
	totalLabel  = "Total de Vendas no Mês:"
	methodLabel = "Meio de Pagamento Mais Frequente:"

	currencyNumFmt = `"R$" #,##0.00`
)

var columns = []string{"Numero do Pedido", "Data", "Nome do Cliente", "Valor Total", "Meio de Pagamento"}

const recordDateLayout = "02/01/2006"

// WriteXLSX writes the sorted records as a single-sheet spreadsheet: a header
// row, one row per sale, and two summary rows two rows below the data.
// Column widths are sized to their longest content.
func WriteXLSX(path string, res *Result) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	widths := make([]int, len(columns))
	var setErr error

	set := func(col, row int, value interface{}) {
		cell, err := excelize.CoordinatesToCellName(col, row)
		if err == nil {
			err = f.SetCellValue(sheetName, cell, value)
		}
		if err != nil && setErr == nil {
			setErr = err
		}
		if n := utf8.RuneCountInString(fmt.Sprint(value)); col <= len(widths) && n > widths[col-1] {
			widths[col-1] = n
		}
	}

	for i, header := range columns {
		set(i+1, 1, header)
	}

	for i, rec := range res.Records {
		row := i + 2
		set(1, row, rec.OrderNumber)
		set(2, row, rec.Date.Format(recordDateLayout))
		set(3, row, rec.Customer)
		set(4, row, rec.Total.InexactFloat64())
		set(5, row, rec.Payment)
	}

	// Two summary rows, one blank row below the last data row.
	summaryRow := len(res.Records) + 3
	set(1, summaryRow, totalLabel)
	set(2, summaryRow, res.Total.InexactFloat64())
	set(1, summaryRow+1, methodLabel)
	set(2, summaryRow+1, res.MostFrequent)
	if setErr != nil {
		return fmt.Errorf("fill sheet: %w", setErr)
	}

	numFmt := currencyNumFmt
	style, err := f.NewStyle(&excelize.Style{CustomNumFmt: &numFmt})
	if err != nil {
		return fmt.Errorf("currency style: %w", err)
	}
	totalCell, _ := excelize.CoordinatesToCellName(2, summaryRow)
	if err := f.SetCellStyle(sheetName, totalCell, totalCell, style); err != nil {
		return fmt.Errorf("currency style: %w", err)
	}

	for i, width := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheetName, col, col, float64(width+2)); err != nil {
			return fmt.Errorf("column width: %w", err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save spreadsheet: %w", err)
	}
	return nil
}
