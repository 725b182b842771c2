package services

import (
	"context"
	"database/sql"
	"testing"

	"printdoot_server/config"
	"printdoot_server/database"
	"printdoot_server/lib"
	"printdoot_server/structs"
	"printdoot_server/structs/tables"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MonkyMars/gecho"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReviewService(sqldb *sql.DB) *ReviewService {
	db := database.NewFromSQL(sqldb)
	logger := gecho.NewDefaultLogger()
	cache := &CacheService{logger: logger, config: config.GetConfig(), client: getRedisClient()}
	return NewReviewService(logger, db, NewCatalogService(logger, db, cache), NewUserService(logger, db))
}

func TestComputeAverageRating(t *testing.T) {
	assert.Equal(t, float64(0), ComputeAverageRating(nil))
	assert.Equal(t, float64(5), ComputeAverageRating([]tables.ProductReview{{Rating: 5}}))
	assert.Equal(t, 4.5, ComputeAverageRating([]tables.ProductReview{{Rating: 4}, {Rating: 5}}))
	assert.InDelta(t, 3.6667, ComputeAverageRating([]tables.ProductReview{{Rating: 2}, {Rating: 4}, {Rating: 5}}), 0.001)
}

func TestCreateReviewRejectsSecondReviewFromSameBuyer(t *testing.T) {
	sqldb, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqldb.Close()

	mock.ExpectQuery(`SELECT (.+) FROM "products"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "product_id", "category_id"}).
			AddRow(int64(7), "PRNTDTMUG001", int64(1)))
	mock.ExpectQuery(`SELECT count(.+) FROM "product_reviews"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	_, err = newReviewService(sqldb).CreateReview(context.Background(), "PRNTDTMUG001", &structs.ProductReviewRequest{
		ClerkID: "clerk_1",
		Rating:  5,
	})

	require.ErrorIs(t, err, lib.ErrConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateReviewFillsNameAndRefreshesAverage(t *testing.T) {
	sqldb, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqldb.Close()

	mock.ExpectQuery(`SELECT (.+) FROM "products"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "product_id", "category_id"}).
			AddRow(int64(7), "PRNTDTMUG001", int64(1)))
	mock.ExpectQuery(`SELECT count(.+) FROM "product_reviews"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "clerk_id", "first_name", "last_name"}).
			AddRow(int64(3), "clerk_1", "Asha", "Rau"))
	mock.ExpectQuery(`INSERT INTO "product_reviews"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))
	mock.ExpectQuery(`SELECT (.+) FROM "product_reviews"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "product_id", "rating"}).
			AddRow(int64(1), "PRNTDTMUG001", 5).
			AddRow(int64(2), "PRNTDTMUG001", 4))
	mock.ExpectExec(`UPDATE "products"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	review, err := newReviewService(sqldb).CreateReview(context.Background(), "PRNTDTMUG001", &structs.ProductReviewRequest{
		ClerkID:    "clerk_1",
		Rating:     5,
		ReviewText: "Great print quality",
	})
	require.NoError(t, err)

	assert.Equal(t, "Asha Rau", review.UserName)
	assert.Equal(t, "PRNTDTMUG001", review.ProductID)
	assert.Equal(t, 5, review.Rating)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateReviewUnknownProduct(t *testing.T) {
	sqldb, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqldb.Close()

	mock.ExpectQuery(`SELECT (.+) FROM "products"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "product_id"}))

	_, err = newReviewService(sqldb).CreateReview(context.Background(), "PRNTDTGHO999", &structs.ProductReviewRequest{
		ClerkID: "clerk_1",
		Rating:  3,
	})

	require.ErrorIs(t, err, lib.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
