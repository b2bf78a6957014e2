package product

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestProduct_DiscountPercentage(t *testing.T) {
	t.Run("Truncates fractional percentage", func(t *testing.T) {
		p := Product{Price: dec("2.99"), OriginalPrice: decPtr("3.99")}

		pct, ok := p.DiscountPercentage()

		// 1.00 / 3.99 * 100 = 25.06..., truncated
		assert.True(t, ok)
		assert.Equal(t, 25, pct)
	})

	t.Run("Half off", func(t *testing.T) {
		p := Product{Price: dec("5.00"), OriginalPrice: decPtr("10.00")}

		pct, ok := p.DiscountPercentage()

		assert.True(t, ok)
		assert.Equal(t, 50, pct)
	})

	t.Run("No original price", func(t *testing.T) {
		p := Product{Price: dec("4.99")}

		_, ok := p.DiscountPercentage()

		assert.False(t, ok)
	})

	t.Run("Original price equal to current", func(t *testing.T) {
		p := Product{Price: dec("4.99"), OriginalPrice: decPtr("4.99")}

		_, ok := p.DiscountPercentage()

		assert.False(t, ok)
	})

	t.Run("Original price below current", func(t *testing.T) {
		p := Product{Price: dec("4.99"), OriginalPrice: decPtr("3.99")}

		_, ok := p.DiscountPercentage()

		assert.False(t, ok)
	})
}

func TestCategory_Valid(t *testing.T) {
	for _, c := range Categories() {
		assert.True(t, c.Valid(), "category %q should be valid", c)
	}
	assert.False(t, Category("Carpet").Valid())
}
