// internal/services/resolve_test.go
package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/artisanhub/marketplace-backend/internal/models"
)

func TestResolveLinesDropsUnresolvableReferences(t *testing.T) {
	kept := uuid.New()
	gone := uuid.New()

	refs := []lineRef{
		{ProductID: kept, Quantity: 2},
		{ProductID: gone, Quantity: 5},
	}
	products := map[uuid.UUID]models.Product{
		kept: {BaseModel: models.BaseModel{ID: kept}, Name: "Woven Basket", Price: 35},
	}

	resolved := resolveLines(refs, products)

	assert.Len(t, resolved, 1)
	assert.Equal(t, kept, resolved[0].Product.ID)
	assert.Equal(t, 2, resolved[0].Quantity)
}

func TestResolveLinesPreservesOrder(t *testing.T) {
	first := uuid.New()
	second := uuid.New()

	refs := []lineRef{
		{ProductID: first, Quantity: 1},
		{ProductID: second, Quantity: 3},
	}
	products := map[uuid.UUID]models.Product{
		first:  {BaseModel: models.BaseModel{ID: first}},
		second: {BaseModel: models.BaseModel{ID: second}},
	}

	resolved := resolveLines(refs, products)

	assert.Len(t, resolved, 2)
	assert.Equal(t, first, resolved[0].Product.ID)
	assert.Equal(t, second, resolved[1].Product.ID)
}

func TestResolveLinesEmptyInput(t *testing.T) {
	resolved := resolveLines(nil, map[uuid.UUID]models.Product{})
	assert.NotNil(t, resolved)
	assert.Empty(t, resolved)
}
