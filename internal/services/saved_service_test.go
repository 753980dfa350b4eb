// internal/services/saved_service_test.go
package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/artisanhub/marketplace-backend/internal/domain"
)

func TestSaveRejectsMalformedProductID(t *testing.T) {
	db, _ := newMockDB(t)
	svc := NewSavedService(db)

	_, err := svc.Save(uuid.New(), "definitely-not-a-uuid")

	assert.ErrorIs(t, err, domain.ErrBadRequest)
}

func TestSaveWithoutCartIsNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewSavedService(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "carts"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "account_id"}))
	mock.ExpectRollback()

	_, err := svc.Save(uuid.New(), uuid.New().String())

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveMissingCartLineIsNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewSavedService(db)

	accountID := uuid.New()
	cartID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "carts"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "account_id"}).
			AddRow(cartID.String(), accountID.String()))
	mock.ExpectQuery(`SELECT \* FROM "cart_items"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "cart_id", "product_id", "quantity"}))
	mock.ExpectRollback()

	_, err := svc.Save(accountID, uuid.New().String())

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveMovesLineAndMergesQuantity(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewSavedService(db)

	accountID := uuid.New()
	cartID := uuid.New()
	savedID := uuid.New()
	productID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "carts"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "account_id"}).
			AddRow(cartID.String(), accountID.String()))
	mock.ExpectQuery(`SELECT \* FROM "cart_items"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "cart_id", "product_id", "quantity"}).
			AddRow(uuid.New().String(), cartID.String(), productID.String(), 3))
	mock.ExpectExec(`DELETE FROM "cart_items"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT \* FROM "saved_lists"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "account_id"}).
			AddRow(savedID.String(), accountID.String()))
	mock.ExpectQuery(`INSERT INTO "saved_items" .* ON CONFLICT \("saved_list_id","product_id"\) DO UPDATE SET "quantity"=saved_items\.quantity \+ EXCLUDED\.quantity`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New().String()))
	mock.ExpectCommit()

	// Combined view after the move: an empty cart and one saved entry.
	mock.ExpectQuery(`SELECT \* FROM "carts"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "account_id"}).
			AddRow(cartID.String(), accountID.String()))
	mock.ExpectQuery(`SELECT \* FROM "cart_items"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "cart_id", "product_id", "quantity"}))
	mock.ExpectQuery(`SELECT \* FROM "saved_lists"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "account_id"}).
			AddRow(savedID.String(), accountID.String()))
	mock.ExpectQuery(`SELECT \* FROM "saved_items"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "saved_list_id", "product_id", "quantity"}).
			AddRow(uuid.New().String(), savedID.String(), productID.String(), 3))
	mock.ExpectQuery(`SELECT \* FROM "products"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price", "category"}).
			AddRow(productID.String(), "Mug", 12.50, "Pottery"))

	result, err := svc.Save(accountID, productID.String())

	assert.NoError(t, err)
	assert.Empty(t, result.Cart.Items)
	assert.Len(t, result.Saved.Items, 1)
	assert.Equal(t, 3, result.Saved.Items[0].Quantity)
	assert.Equal(t, "Mug", result.Saved.Items[0].Product.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMoveToCartWithoutSavedListIsNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewSavedService(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "saved_lists"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "account_id"}))
	mock.ExpectRollback()

	_, err := svc.MoveToCart(uuid.New(), uuid.New().String())

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSavedFetchWithoutListReturnsEmptyView(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewSavedService(db)

	accountID := uuid.New()
	mock.ExpectQuery(`SELECT \* FROM "saved_lists"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "account_id"}))

	view, err := svc.Fetch(accountID)

	assert.NoError(t, err)
	assert.Equal(t, accountID, view.AccountID)
	assert.Empty(t, view.Items)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSavedFetchScopedToOwningAccount(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewSavedService(db)

	accountID := uuid.New()
	savedID := uuid.New()
	productID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "saved_lists" WHERE account_id = \$1`).
		WithArgs(accountID.String(), 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "account_id"}).
			AddRow(savedID.String(), accountID.String()))
	mock.ExpectQuery(`SELECT \* FROM "saved_items" WHERE saved_list_id = \$1`).
		WithArgs(savedID.String()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "saved_list_id", "product_id", "quantity"}).
			AddRow(uuid.New().String(), savedID.String(), productID.String(), 2))
	mock.ExpectQuery(`SELECT \* FROM "products"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price", "category"}).
			AddRow(productID.String(), "Clay Mug", 12.50, "Pottery"))

	view, err := svc.Fetch(accountID)

	assert.NoError(t, err)
	assert.Equal(t, accountID, view.AccountID)
	assert.Len(t, view.Items, 1)
	assert.Equal(t, 2, view.Items[0].Quantity)
	assert.NoError(t, mock.ExpectationsWereMet())
}
