package services

import (
	"context"
	"errors"
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

type fakeUploader struct {
	uploads []string
	fail    error
}

func (f *fakeUploader) UploadBase64Image(ctx context.Context, payload, extension, folder string) (string, error) {
	if f.fail != nil {
		return "", f.fail
	}
	f.uploads = append(f.uploads, payload)
	return "https://cdn.example.com/" + folder + "/asset." + extension, nil
}

func TestValidateLineItems(t *testing.T) {
	os := &OrderService{logger: gecho.NewDefaultLogger()}

	products := map[string]*tables.Product{
		"PRNTDTMUG001": {
			ProductID:  "PRNTDTMUG001",
			CategoryID: 1,
			CustomizationOptions: map[string][]string{
				"color": {"red", "blue"},
			},
		},
		"PRNTDTPEN002": {ProductID: "PRNTDTPEN002", CategoryID: 2},
	}
	categories := map[int64]*tables.Category{
		2: {AllowedCustomizations: map[string][]string{"ink": {"black"}}},
	}

	t.Run("all valid", func(t *testing.T) {
		err := os.validateLineItems([]structs.OrderItemRequest{
			{ProductID: "PRNTDTMUG001", SelectedCustomizations: map[string]string{"color": "red"}},
			{ProductID: "PRNTDTPEN002", SelectedCustomizations: map[string]string{"ink": "black"}},
		}, products, categories)
		assert.NoError(t, err)
	})

	t.Run("violations aggregated across lines", func(t *testing.T) {
		err := os.validateLineItems([]structs.OrderItemRequest{
			{ProductID: "PRNTDTMUG001", SelectedCustomizations: map[string]string{"color": "green"}},
			{ProductID: "PRNTDTPEN002", SelectedCustomizations: map[string]string{"ink": "purple"}},
		}, products, categories)

		var ic *lib.InvalidCustomizationError
		require.ErrorAs(t, err, &ic)
		assert.Len(t, ic.Violations, 2)
		assert.True(t, lib.IsClientError(err))
	})
}

func TestResolveCatalogReportsAllMissingCodes(t *testing.T) {
	sqldb, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqldb.Close()

	// No products exist; every referenced code must come back in one error.
	mock.ExpectQuery(`SELECT (.+) FROM "products"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "product_id"}))

	logger := gecho.NewDefaultLogger()
	cache := &CacheService{logger: logger, config: config.GetConfig(), client: getRedisClient()}
	catalog := NewCatalogService(logger, database.NewFromSQL(sqldb), cache)
	os := &OrderService{logger: logger, catalogService: catalog}

	_, _, err = os.resolveCatalog(context.Background(), []structs.OrderItemRequest{
		{ProductID: "PRNTDTMUG001"},
		{ProductID: "PRNTDTTSH003"},
		{ProductID: "PRNTDTMUG001"}, // duplicate must not be reported twice
	})

	var missing *lib.ProductNotFoundError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{"PRNTDTMUG001", "PRNTDTTSH003"}, missing.Codes)
	assert.True(t, lib.IsClientError(err))
}

func TestPlaceOrderUnknownProductPersistsNothing(t *testing.T) {
	sqldb, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqldb.Close()

	db := database.NewFromSQL(sqldb)
	logger := gecho.NewDefaultLogger()
	cfg := config.GetConfig()

	// The counter advances, then product resolution comes back empty. No
	// transaction may open and no order or item row may be written.
	mock.ExpectQuery("INSERT INTO order_counter").
		WillReturnRows(sqlmock.NewRows([]string{"current_number"}).AddRow(41))
	mock.ExpectQuery(`SELECT (.+) FROM "products"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "product_id"}))

	cache := &CacheService{logger: logger, config: cfg, client: getRedisClient()}
	os := NewOrderService(
		logger, cfg, db,
		NewCounterService(logger, db),
		NewCatalogService(logger, db, cache),
		NewUserService(logger, db),
		NewEmailService(logger, cfg, NewUserService(logger, db)),
		&fakeUploader{},
	)

	order, err := os.PlaceOrder(context.Background(), &structs.OrderRequest{
		ClerkID:    "clerk_1",
		TotalPrice: 500,
		Products: []structs.OrderItemRequest{
			{ProductID: "PRNTDTGHO999", Quantity: 1, IndividualPrice: 500},
		},
	})

	var missing *lib.ProductNotFoundError
	require.ErrorAs(t, err, &missing)
	assert.Nil(t, order)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlaceOrderPersistsOrderAndItems(t *testing.T) {
	sqldb, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqldb.Close()

	db := database.NewFromSQL(sqldb)
	logger := gecho.NewDefaultLogger()
	cfg := config.GetConfig()

	mock.ExpectQuery("INSERT INTO order_counter").
		WillReturnRows(sqlmock.NewRows([]string{"current_number"}).AddRow(41))
	mock.ExpectQuery(`SELECT (.+) FROM "products"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "product_id", "name", "price", "category_id"}).
			AddRow(int64(7), "PRNTDTMUG001", "Printed Mug", int64(250), int64(1)))
	mock.ExpectQuery(`SELECT (.+) FROM "categories"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(int64(1), "Mugs"))

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "orders"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(10)))
	mock.ExpectQuery(`INSERT INTO "order_items"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(100)))
	mock.ExpectCommit()

	cache := &CacheService{logger: logger, config: cfg, client: getRedisClient()}
	userService := NewUserService(logger, db)
	os := NewOrderService(
		logger, cfg, db,
		NewCounterService(logger, db),
		NewCatalogService(logger, db, cache),
		userService,
		NewEmailService(logger, cfg, userService),
		&fakeUploader{},
	)

	order, err := os.PlaceOrder(context.Background(), &structs.OrderRequest{
		ClerkID:    "clerk_1",
		TotalPrice: 500,
		Products: []structs.OrderItemRequest{
			{
				ProductID:              "PRNTDTMUG001",
				Quantity:               2,
				IndividualPrice:        250,
				UserCustomizationType:  tables.UserCustomizationText,
				UserCustomizationValue: "Happy Birthday",
			},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "PRNTDT-AAA00042", order.OrderID)
	assert.Equal(t, int64(10), order.ID)
	assert.Equal(t, int64(500), order.TotalPrice)
	assert.Equal(t, tables.OrderStatusPlaced, order.Status)
	require.Len(t, order.Items, 1)
	assert.Equal(t, int64(10), order.Items[0].OrderID)
	assert.Equal(t, "Happy Birthday", order.Items[0].UserCustomizationValue)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResolveUserCustomizations(t *testing.T) {
	uploader := &fakeUploader{}
	os := &OrderService{logger: gecho.NewDefaultLogger(), assets: uploader}

	t.Run("text stored literally", func(t *testing.T) {
		values, err := os.resolveUserCustomizations(context.Background(), []structs.OrderItemRequest{
			{ProductID: "PRNTDTMUG001", UserCustomizationType: tables.UserCustomizationText, UserCustomizationValue: "Happy Birthday"},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"Happy Birthday"}, values)
	})

	t.Run("image uploaded and replaced by URL", func(t *testing.T) {
		values, err := os.resolveUserCustomizations(context.Background(), []structs.OrderItemRequest{
			{
				ProductID:              "PRNTDTMUG001",
				UserCustomizationType:  tables.UserCustomizationImage,
				UserCustomizationValue: "aGVsbG8=",
				ImageExtension:         "png",
			},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"https://cdn.example.com/orders/asset.png"}, values)
		assert.Len(t, uploader.uploads, 1)
	})

	t.Run("image without payload rejected", func(t *testing.T) {
		_, err := os.resolveUserCustomizations(context.Background(), []structs.OrderItemRequest{
			{ProductID: "PRNTDTMUG001", UserCustomizationType: tables.UserCustomizationLogo, UserCustomizationValue: "  "},
		})

		var missing *lib.MissingCustomizationAssetError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, "logo", missing.Kind)
		assert.True(t, lib.IsClientError(err))
	})

	t.Run("upload failure surfaces as server error", func(t *testing.T) {
		failing := &OrderService{
			logger: gecho.NewDefaultLogger(),
			assets: &fakeUploader{fail: errors.New("bucket unavailable")},
		}

		_, err := failing.resolveUserCustomizations(context.Background(), []structs.OrderItemRequest{
			{ProductID: "PRNTDTMUG001", UserCustomizationType: tables.UserCustomizationImage, UserCustomizationValue: "aGVsbG8="},
		})
		require.Error(t, err)
		assert.False(t, lib.IsClientError(err))
	})

	t.Run("none yields empty value", func(t *testing.T) {
		values, err := os.resolveUserCustomizations(context.Background(), []structs.OrderItemRequest{
			{ProductID: "PRNTDTMUG001", UserCustomizationType: tables.UserCustomizationNone, UserCustomizationValue: "ignored"},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{""}, values)
	})
}
