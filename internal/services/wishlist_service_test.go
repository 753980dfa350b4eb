// internal/services/wishlist_service_test.go
package services

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/artisanhub/marketplace-backend/internal/domain"
)

func TestWishlistAddDuplicateIsConflict(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewWishlistService(db)

	accountID := uuid.New()
	wishlistID := uuid.New()
	productID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "products"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price", "category"}).
			AddRow(productID.String(), "Mug", 12.50, "Pottery"))
	mock.ExpectQuery(`SELECT \* FROM "wishlists"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "account_id"}).
			AddRow(wishlistID.String(), accountID.String()))
	mock.ExpectQuery(`INSERT INTO "wishlist_items"`).
		WillReturnError(errors.New(`ERROR: duplicate key value violates unique constraint "idx_wishlist_product" (SQLSTATE 23505)`))

	_, err := svc.Add(accountID, productID.String())

	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWishlistAddUnknownProductIsNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewWishlistService(db)

	mock.ExpectQuery(`SELECT \* FROM "products"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	_, err := svc.Add(uuid.New(), uuid.New().String())

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWishlistRemoveWithoutListIsNoOp(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewWishlistService(db)
	accountID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "wishlists"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "account_id"}))

	view, err := svc.Remove(accountID, uuid.New().String())

	assert.NoError(t, err)
	assert.Empty(t, view.Items)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWishlistFetchResolvesEntries(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewWishlistService(db)

	accountID := uuid.New()
	wishlistID := uuid.New()
	productID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "wishlists"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "account_id"}).
			AddRow(wishlistID.String(), accountID.String()))
	mock.ExpectQuery(`SELECT \* FROM "wishlist_items"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "wishlist_id", "product_id"}).
			AddRow(uuid.New().String(), wishlistID.String(), productID.String()))
	mock.ExpectQuery(`SELECT \* FROM "products"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price", "category"}).
			AddRow(productID.String(), "Mug", 12.50, "Pottery"))

	view, err := svc.Fetch(accountID)

	assert.NoError(t, err)
	assert.Len(t, view.Items, 1)
	assert.Equal(t, productID, view.Items[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWishlistFetchScopedToOwningAccount(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewWishlistService(db)

	accountID := uuid.New()
	wishlistID := uuid.New()
	productID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "wishlists" WHERE account_id = \$1`).
		WithArgs(accountID.String(), 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "account_id"}).
			AddRow(wishlistID.String(), accountID.String()))
	mock.ExpectQuery(`SELECT \* FROM "wishlist_items" WHERE wishlist_id = \$1`).
		WithArgs(wishlistID.String()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "wishlist_id", "product_id"}).
			AddRow(uuid.New().String(), wishlistID.String(), productID.String()))
	mock.ExpectQuery(`SELECT \* FROM "products"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price", "category"}).
			AddRow(productID.String(), "Woven Basket", 45.00, "Baskets"))

	view, err := svc.Fetch(accountID)

	assert.NoError(t, err)
	assert.Equal(t, accountID, view.AccountID)
	assert.Len(t, view.Items, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}
