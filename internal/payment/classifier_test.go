package payment

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifier_Classify(t *testing.T) {
	c := NewClassifier()

	t.Run("formats a single annotated tender", func(t *testing.T) {
		got, err := c.Classify("Pago R$ 1.250,00 no pix")
		require.NoError(t, err)
		assert.Equal(t, "PIX (R$ 1250.00)", got)
	})

	t.Run("joins multiple tenders in source order", func(t *testing.T) {
		obs := "R$ 1.000,00 no master\nR$ 250,00 em dinheiro"
		got, err := c.Classify(obs)
		require.NoError(t, err)
		assert.Equal(t, "Cartão de Crédito (R$ 1000.00), Dinheiro (R$ 250.00)", got)
	})

	t.Run("annotated tender skips the fallback entirely", func(t *testing.T) {
		// "elo" alone would say debit, but the annotated pix entry wins.
		got, err := c.Classify("maquininha elo quebrada, R$ 80,00 no pix")
		require.NoError(t, err)
		assert.Equal(t, "PIX (R$ 80.00)", got)
	})

	t.Run("amounts always carry two decimal places", func(t *testing.T) {
		got, err := c.Classify("R$ 50 em dinheiro")
		require.NoError(t, err)
		assert.Equal(t, "Dinheiro (R$ 50.00)", got)
	})

	t.Run("bare keyword falls back to a single category", func(t *testing.T) {
		got, err := c.Classify("recebido em dinheiro")
		require.NoError(t, err)
		assert.Equal(t, "Dinheiro", got)
	})

	t.Run("payment link beats pix in the fallback", func(t *testing.T) {
		got, err := c.Classify("enviado link de pagamento, cliente sem pix")
		require.NoError(t, err)
		assert.Equal(t, "Cartão de Crédito", got)
	})

	t.Run("elo fallback means debit", func(t *testing.T) {
		got, err := c.Classify("passou no ELO")
		require.NoError(t, err)
		assert.Equal(t, "Cartão de Débito", got)
	})

	t.Run("a receber means transfer", func(t *testing.T) {
		got, err := c.Classify("valor a receber na entrega")
		require.NoError(t, err)
		assert.Equal(t, "Transferência/PIX", got)
	})

	t.Run("no recognized keyword yields the sentinel", func(t *testing.T) {
		got, err := c.Classify("entregar na obra amanhã")
		require.NoError(t, err)
		assert.Equal(t, "Não Especificado", got)
	})

	t.Run("empty observations yield the sentinel", func(t *testing.T) {
		got, err := c.Classify("")
		require.NoError(t, err)
		assert.Equal(t, "Não Especificado", got)
	})

	t.Run("case-insensitive matching", func(t *testing.T) {
		got, err := c.Classify("R$ 30,00 NO PIX")
		require.NoError(t, err)
		assert.Equal(t, "PIX (R$ 30.00)", got)
	})
}

// One classifier is shared by all extraction workers, so fallback matching
// must stay correct under concurrency.
func TestClassifier_ClassifyConcurrent(t *testing.T) {
	c := NewClassifier()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				got, err := c.Classify("recebido em dinheiro")
				assert.NoError(t, err)
				assert.Equal(t, "Dinheiro", got)
			}
		}()
	}
	wg.Wait()
}
