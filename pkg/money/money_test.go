package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBRL(t *testing.T) {
	t.Run("parses thousands and decimal separators", func(t *testing.T) {
		d, err := ParseBRL("1.234,56")
		require.NoError(t, err)
		assert.True(t, d.Equal(decimal.RequireFromString("1234.56")), "got %s", d)
	})

	t.Run("parses plain cents", func(t *testing.T) {
		d, err := ParseBRL("50,00")
		require.NoError(t, err)
		assert.True(t, d.Equal(decimal.RequireFromString("50")))
		assert.Equal(t, "50.00", d.StringFixed(2))
	})

	t.Run("tolerates currency symbol and whitespace", func(t *testing.T) {
		d, err := ParseBRL("  R$ 125,00 ")
		require.NoError(t, err)
		assert.True(t, d.Equal(decimal.RequireFromString("125")))
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := ParseBRL("abc")
		assert.Error(t, err)

		_, err = ParseBRL("")
		assert.Error(t, err)

		_, err = ParseBRL("12,34,56")
		assert.Error(t, err)
	})
}

func TestFormatBRL(t *testing.T) {
	assert.Equal(t, "R$1.234,56", FormatBRL(decimal.RequireFromString("1234.56")))
	assert.Equal(t, "R$0,00", FormatBRL(decimal.Zero))
	assert.Equal(t, "R$50,00", FormatBRL(decimal.RequireFromString("50")))
}
