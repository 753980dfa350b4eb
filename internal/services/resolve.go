// internal/services/resolve.go
package services

import (
	"github.com/google/uuid"

	"github.com/artisanhub/marketplace-backend/internal/models"
)

// lineRef is a stored (product reference, quantity) pair awaiting
// resolution against the catalog.
type lineRef struct {
	ProductID uuid.UUID
	Quantity  int
}

// resolveLines replaces each reference with the current product record.
// Lines whose product no longer resolves are dropped from the result;
// the stored rows are left untouched so a restored product reappears.
func resolveLines(refs []lineRef, products map[uuid.UUID]models.Product) []models.ResolvedLine {
	resolved := make([]models.ResolvedLine, 0, len(refs))
	for _, ref := range refs {
		product, ok := products[ref.ProductID]
		if !ok {
			continue
		}
		resolved = append(resolved, models.ResolvedLine{
			Product:  product,
			Quantity: ref.Quantity,
		})
	}
	return resolved
}
