package extract

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MatheusGuedes02/Fechamento-Ecomadeiras/internal/payment"
)

const sampleReport = `Ecomadeiras - Relatório de Fechamento
Período: 01/01/2024 a 31/01/2024
Pedido Data Hora Cliente Valor Unit. Valor Total Observações

1001 15/01/2024 10:32:05 João da Silva R$ 125,00 R$ 125,00
pago no pix
1002 15/01/2024 11:00:00 Abertura de Caixa R$ 0,01 R$ 0,01
1003 17/01/2024 14:21:33 Maria Souza R$ 625,00 R$ 1.250,00
R$ 1.000,00 no master
R$ 250,00 em dinheiro
Página 1 de 1
1004 20/01/2024 09:05:12 Pedro Alves R$ 50,00 R$ 50,00
`

func newTestParser() *Parser {
	return NewParser(payment.NewClassifier())
}

func TestParser_Parse(t *testing.T) {
	t.Run("extracts one record per structural match", func(t *testing.T) {
		records, _, err := newTestParser().Parse(sampleReport)
		require.NoError(t, err)
		require.Len(t, records, 3)

		assert.Equal(t, 1001, records[0].OrderNumber)
		assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), records[0].Date)
		assert.Equal(t, "João da Silva", records[0].Customer)
		assert.True(t, records[0].Total.Equal(decimal.RequireFromString("125")))
		assert.Equal(t, "Transferência/PIX", records[0].Payment)

		// Multi-line observations with two tenders.
		assert.Equal(t, 1003, records[1].OrderNumber)
		assert.True(t, records[1].Total.Equal(decimal.RequireFromString("1250")))
		assert.Equal(t, "Cartão de Crédito (R$ 1000.00), Dinheiro (R$ 250.00)", records[1].Payment)

		// No payment signal at all.
		assert.Equal(t, 1004, records[2].OrderNumber)
		assert.Equal(t, "Não Especificado", records[2].Payment)
	})

	t.Run("counts blocks seen, matched, skipped and excluded", func(t *testing.T) {
		_, stats, err := newTestParser().Parse(sampleReport)
		require.NoError(t, err)

		// Preamble block + four transaction blocks.
		assert.Equal(t, 5, stats.Blocks)
		assert.Equal(t, 3, stats.Matched)
		assert.Equal(t, 1, stats.Skipped)
		assert.Equal(t, 1, stats.Excluded)
	})

	t.Run("cash drawer opening is excluded in any case", func(t *testing.T) {
		text := "1002 15/01/2024 11:00:00 ABERTURA DE CAIXA R$ 0,01 R$ 0,01\n"
		records, stats, err := newTestParser().Parse(text)
		require.NoError(t, err)
		assert.Empty(t, records)
		assert.Equal(t, 1, stats.Excluded)
	})

	t.Run("empty text yields zero blocks and zero records", func(t *testing.T) {
		records, stats, err := newTestParser().Parse("")
		require.NoError(t, err)
		assert.Empty(t, records)
		assert.Zero(t, stats.Blocks)
	})

	t.Run("noise-only text is skipped silently", func(t *testing.T) {
		records, stats, err := newTestParser().Parse("cabeçalho\nrodapé\n")
		require.NoError(t, err)
		assert.Empty(t, records)
		assert.Equal(t, 1, stats.Blocks)
		assert.Equal(t, 1, stats.Skipped)
	})

	t.Run("bad total after a structural match is a hard error", func(t *testing.T) {
		text := "1001 15/01/2024 10:32:05 João R$ 1,00 R$ ,.,\n"
		_, _, err := newTestParser().Parse(text)
		assert.Error(t, err)
	})

	t.Run("records before a corrupt block survive the error", func(t *testing.T) {
		text := "1001 15/01/2024 10:32:05 João R$ 1,00 R$ 125,00\npago no pix\n" +
			"1002 16/01/2024 11:00:00 Maria R$ 1,00 R$ ,.,\n"
		records, stats, err := newTestParser().Parse(text)
		assert.Error(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, 1001, records[0].OrderNumber)
		assert.Equal(t, 1, stats.Matched)
	})

	t.Run("bad date after a structural match is a hard error", func(t *testing.T) {
		text := "1001 45/91/2024 10:32:05 João R$ 1,00 R$ 10,00\n"
		_, _, err := newTestParser().Parse(text)
		assert.Error(t, err)
	})
}

func TestSplitBlocks(t *testing.T) {
	t.Run("header line stays with its block", func(t *testing.T) {
		blocks := splitBlocks("preamble\n1001 a\nnotes\n1002 b\n")
		require.Len(t, blocks, 3)
		assert.Equal(t, "preamble", blocks[0])
		assert.Equal(t, "1001 a\nnotes", blocks[1])
		assert.Equal(t, "1002 b\n", blocks[2])
	})

	t.Run("consecutive headers split cleanly", func(t *testing.T) {
		blocks := splitBlocks("1001 a\n1002 b")
		require.Len(t, blocks, 2)
	})

	t.Run("five-digit tokens do not open blocks", func(t *testing.T) {
		blocks := splitBlocks("1001 a\n12345 not a header")
		require.Len(t, blocks, 1)
	})
}
