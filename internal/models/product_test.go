package models

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProduct_Validate(t *testing.T) {
	valid := Product{
		Name:       "Laptop Pro",
		CategoryID: uuid.New(),
		Price:      decimal.NewFromFloat(1299.00),
		Stock:      10,
	}

	t.Run("valid product", func(t *testing.T) {
		p := valid
		assert.NoError(t, p.Validate())
	})

	t.Run("missing name", func(t *testing.T) {
		p := valid
		p.Name = ""
		assert.ErrorIs(t, p.Validate(), ErrProductNameRequired)
	})

	t.Run("missing category", func(t *testing.T) {
		p := valid
		p.CategoryID = uuid.Nil
		assert.Error(t, p.Validate())
	})

	t.Run("negative price", func(t *testing.T) {
		p := valid
		p.Price = decimal.NewFromFloat(-1)
		assert.ErrorIs(t, p.Validate(), ErrNegativePrice)
	})

	t.Run("negative stock", func(t *testing.T) {
		p := valid
		p.Stock = -1
		assert.ErrorIs(t, p.Validate(), ErrNegativeStock)
	})
}

func TestProduct_StockHelpers(t *testing.T) {
	p := Product{Stock: 5}

	assert.True(t, p.IsInStock())
	assert.True(t, p.HasSufficientStock(5))
	assert.False(t, p.HasSufficientStock(6))

	empty := Product{Stock: 0}
	assert.False(t, empty.IsInStock())
}

func TestProduct_BeforeCreate_GeneratesSKU(t *testing.T) {
	p := Product{
		Name:       "Mouse",
		CategoryID: uuid.New(),
		Price:      decimal.NewFromFloat(24.90),
	}

	require.NoError(t, p.BeforeCreate(nil))

	assert.NotEqual(t, uuid.Nil, p.ID)
	assert.True(t, strings.HasPrefix(p.SKU, "SKU-"))
	assert.False(t, p.CreatedAt.IsZero())
}

func TestProduct_BeforeCreate_KeepsProvidedSKU(t *testing.T) {
	p := Product{
		Name:       "Mouse",
		SKU:        "SKU-CUSTOM-01",
		CategoryID: uuid.New(),
		Price:      decimal.NewFromFloat(24.90),
	}

	require.NoError(t, p.BeforeCreate(nil))
	assert.Equal(t, "SKU-CUSTOM-01", p.SKU)
}
