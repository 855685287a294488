package cartControllers

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockRepo(t *testing.T) (*GormRepository, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 conn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return NewGormRepository(db), mock
}

func cartRows(cartID uint, userID string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"cart_id", "user_id", "created_at", "updated_at"}).
		AddRow(cartID, userID, time.Now(), time.Now())
}

func TestListReturnsLinesInStoredOrder(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT \* FROM "carts" WHERE user_id =`).
		WillReturnRows(cartRows(3, "user-1"))

	added := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT \* FROM "cart_items" WHERE cart_id = .+ ORDER BY added_at ASC`).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "cart_id", "gadget_id", "gadget_name", "gadget_image",
			"unit_price", "in_stock", "swap_eligible", "quantity", "added_at",
		}).
			AddRow(1, 3, 10, "Phone X", "phone.jpg", 100000, true, true, 2, added).
			AddRow(2, 3, 11, "Charger", "charger.jpg", 5000, true, false, 1, added.Add(time.Minute)))

	lines, err := repo.List(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, "Phone X", lines[0].GadgetName)
	assert.Equal(t, int64(100000), lines[0].UnitPrice)
	assert.Equal(t, "Charger", lines[1].GadgetName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListWithoutCartIsEmpty(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT \* FROM "carts" WHERE user_id =`).
		WillReturnRows(sqlmock.NewRows([]string{"cart_id", "user_id"}))

	lines, err := repo.List(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Empty(t, lines)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateSnapshotsGadgetAndMakesCart(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT \* FROM "gadgets" WHERE id =`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "image", "price", "in_stock", "swap_eligible"}).
			AddRow(10, "Phone X", "phone.jpg", 100000, true, true))

	// No cart yet, so one is created before the line insert.
	mock.ExpectQuery(`SELECT \* FROM "carts" WHERE user_id =`).
		WillReturnRows(sqlmock.NewRows([]string{"cart_id", "user_id"}))
	mock.ExpectQuery(`INSERT INTO "carts"`).
		WillReturnRows(sqlmock.NewRows([]string{"cart_id"}).AddRow(3))
	mock.ExpectQuery(`INSERT INTO "cart_items"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	line, err := repo.Create(context.Background(), "user-1", 10)
	require.NoError(t, err)
	assert.Equal(t, uint(7), line.ItemID)
	assert.Equal(t, "Phone X", line.GadgetName)
	assert.Equal(t, int64(100000), line.UnitPrice)
	assert.Equal(t, 1, line.Quantity)
	assert.True(t, line.SwapEligible)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateQuantityMissingLine(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT \* FROM "carts" WHERE user_id =`).
		WillReturnRows(cartRows(3, "user-1"))
	mock.ExpectQuery(`SELECT \* FROM "cart_items" WHERE cart_id = .+ AND gadget_id =`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.UpdateQuantity(context.Background(), "user-1", 99, 2)
	assert.ErrorIs(t, err, ErrLineNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteMissingLine(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT \* FROM "carts" WHERE user_id =`).
		WillReturnRows(cartRows(3, "user-1"))
	mock.ExpectExec(`DELETE FROM "cart_items" WHERE cart_id = .+ AND gadget_id =`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), "user-1", 99)
	assert.ErrorIs(t, err, ErrLineNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteAllWithoutCartIsNoOp(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT \* FROM "carts" WHERE user_id =`).
		WillReturnRows(sqlmock.NewRows([]string{"cart_id", "user_id"}))

	require.NoError(t, repo.DeleteAll(context.Background(), "user-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
