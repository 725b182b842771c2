package services

import (
	"context"
	"fmt"
	"printdoot_server/database"
	"printdoot_server/lib"
	"printdoot_server/structs"
	"printdoot_server/structs/tables"
	"sort"
	"strings"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/uptrace/bun"
)

type OrderService struct {
	logger         *gecho.Logger
	cfg            *structs.Config
	db             *database.DB
	counterService *CounterService
	catalogService *CatalogService
	userService    *UserService
	emailService   *EmailService
	assets         AssetUploader
}

func NewOrderService(
	logger *gecho.Logger,
	cfg *structs.Config,
	db *database.DB,
	counterService *CounterService,
	catalogService *CatalogService,
	userService *UserService,
	emailService *EmailService,
	assets AssetUploader,
) *OrderService {
	return &OrderService{
		logger:         logger,
		cfg:            cfg,
		db:             db,
		counterService: counterService,
		catalogService: catalogService,
		userService:    userService,
		emailService:   emailService,
		assets:         assets,
	}
}

// PlaceOrder runs the whole checkout: order code allocation, line item
// validation, asset resolution, transactional persistence and post-commit
// notifications. The allocated code is consumed even when a later step fails;
// gaps in the sequence are accepted.
func (os *OrderService) PlaceOrder(ctx context.Context, req *structs.OrderRequest) (*tables.Order, error) {
	os.logger.Info("PlaceOrder started",
		gecho.Field("clerk_id", req.ClerkID),
		gecho.Field("items", len(req.Products)))

	// Allocate the order code first. This commits on its own; a validation
	// failure below burns the number.
	_, orderCode, err := os.counterService.AllocateNext(ctx)
	if err != nil {
		return nil, err
	}

	products, categories, err := os.resolveCatalog(ctx, req.Products)
	if err != nil {
		return nil, err
	}

	if err := os.validateLineItems(req.Products, products, categories); err != nil {
		return nil, err
	}

	// Upload user-supplied assets before opening the transaction; an upload
	// failure is fatal to the checkout.
	resolvedValues, err := os.resolveUserCustomizations(ctx, req.Products)
	if err != nil {
		return nil, err
	}

	computedTotal := ComputeOrderTotal(req.Products)
	if computedTotal != req.TotalPrice {
		// The client-claimed total is stored as-is to match the observed
		// contract; the mismatch is surfaced for auditing.
		os.logger.Warn("Client total does not match computed item total",
			gecho.Field("order_id", orderCode),
			gecho.Field("claimed", req.TotalPrice),
			gecho.Field("computed", computedTotal))
	}

	order := &tables.Order{
		OrderID:    orderCode,
		ClerkID:    req.ClerkID,
		TotalPrice: req.TotalPrice,
		Status:     tables.OrderStatusPlaced,
		CreatedAt:  time.Now(),
	}

	items := make([]*tables.OrderItem, 0, len(req.Products))

	err = os.db.RunInTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewInsert().Model(order).Exec(ctx); err != nil {
			return lib.MapPgError(err)
		}

		for i, line := range req.Products {
			item := &tables.OrderItem{
				OrderID:                order.ID,
				ProductID:              line.ProductID,
				Quantity:               line.Quantity,
				SelectedCustomizations: line.SelectedCustomizations,
				UserCustomizationType:  line.UserCustomizationType,
				UserCustomizationValue: resolvedValues[i],
				IndividualPrice:        line.IndividualPrice,
			}
			items = append(items, item)
		}

		if _, err := tx.NewInsert().Model(&items).Exec(ctx); err != nil {
			return lib.MapPgError(err)
		}

		return nil
	})
	if err != nil {
		os.logger.Error("Order transaction failed",
			gecho.Field("error", err),
			gecho.Field("order_id", orderCode))
		return nil, err
	}

	order.Items = items

	// Best-effort notifications after commit. Failures are logged, never
	// returned; the order is already placed.
	go os.sendOrderNotifications(order, items, products)

	os.logger.Info("Order created successfully",
		gecho.Field("order_id", orderCode),
		gecho.Field("total_price", order.TotalPrice))

	return order, nil
}

// resolveCatalog fetches every referenced product and its category, reporting
// all missing product codes in one error.
func (os *OrderService) resolveCatalog(ctx context.Context, lines []structs.OrderItemRequest) (map[string]*tables.Product, map[int64]*tables.Category, error) {
	codes := make([]string, 0, len(lines))
	seen := make(map[string]struct{}, len(lines))
	for _, line := range lines {
		if _, ok := seen[line.ProductID]; ok {
			continue
		}
		seen[line.ProductID] = struct{}{}
		codes = append(codes, line.ProductID)
	}

	products, err := os.catalogService.GetProductsByCodes(ctx, codes)
	if err != nil {
		return nil, nil, err
	}

	missing := []string{}
	for _, code := range codes {
		if _, ok := products[code]; !ok {
			missing = append(missing, code)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, nil, &lib.ProductNotFoundError{Codes: missing}
	}

	categoryIDs := make([]int64, 0, len(products))
	for _, product := range products {
		categoryIDs = append(categoryIDs, product.CategoryID)
	}

	categories, err := os.catalogService.GetCategoriesByIDs(ctx, categoryIDs)
	if err != nil {
		return nil, nil, err
	}

	return products, categories, nil
}

// validateLineItems checks every selected customization against the catalog
// schema, aggregating violations across the whole order.
func (os *OrderService) validateLineItems(lines []structs.OrderItemRequest, products map[string]*tables.Product, categories map[int64]*tables.Category) error {
	violations := []lib.CustomizationViolation{}
	for _, line := range lines {
		product := products[line.ProductID]
		category := categories[product.CategoryID]
		violations = append(violations, validateItemCustomizations(product, category, line.SelectedCustomizations)...)
	}

	if len(violations) > 0 {
		return &lib.InvalidCustomizationError{Violations: violations}
	}

	return nil
}

// resolveUserCustomizations turns each line's user customization into its
// storable value: literal text, or a durable URL for an uploaded asset.
func (os *OrderService) resolveUserCustomizations(ctx context.Context, lines []structs.OrderItemRequest) ([]string, error) {
	values := make([]string, len(lines))

	for i, line := range lines {
		switch line.UserCustomizationType {
		case tables.UserCustomizationText:
			values[i] = line.UserCustomizationValue

		case tables.UserCustomizationImage, tables.UserCustomizationLogo:
			if strings.TrimSpace(line.UserCustomizationValue) == "" {
				return nil, &lib.MissingCustomizationAssetError{
					ProductID: line.ProductID,
					Kind:      string(line.UserCustomizationType),
				}
			}

			url, err := os.assets.UploadBase64Image(ctx, line.UserCustomizationValue, line.ImageExtension, "orders")
			if err != nil {
				return nil, fmt.Errorf("failed to store customization asset for %s: %w", line.ProductID, err)
			}
			values[i] = url

		default:
			values[i] = ""
		}
	}

	return values, nil
}

func (os *OrderService) sendOrderNotifications(order *tables.Order, items []*tables.OrderItem, products map[string]*tables.Product) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := os.emailService.SendOwnerOrderEmail(order.OrderID, order.TotalPrice); err != nil {
		os.logger.Error("Failed to send owner order email",
			gecho.Field("error", err),
			gecho.Field("order_id", order.OrderID))
	}

	if err := os.emailService.SendCustomerOrderEmail(ctx, order.OrderID, order.ClerkID, order.TotalPrice, items, products); err != nil {
		os.logger.Error("Failed to send customer order email",
			gecho.Field("error", err),
			gecho.Field("order_id", order.OrderID),
			gecho.Field("clerk_id", order.ClerkID))
	}
}

// GetOrdersByClerkID returns a page of a buyer's orders with items attached
func (os *OrderService) GetOrdersByClerkID(ctx context.Context, clerkID string, limit, offset int, sortDir string) ([]*tables.Order, error) {
	orders, err := database.Query[tables.Order](os.db).
		Where("clerk_id", clerkID).
		OrderBy("created_at", sortDir).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	result := make([]*tables.Order, len(orders))
	for i := range orders {
		result[i] = &orders[i]
	}

	if err := os.attachItems(ctx, result); err != nil {
		return nil, err
	}

	return result, nil
}

// GetOrderByCode returns one order by its public code with the buyer profile
// joined in.
func (os *OrderService) GetOrderByCode(ctx context.Context, orderCode string) (*structs.OrderDetails, error) {
	order, err := database.Query[tables.Order](os.db).
		Where("order_id", orderCode).
		First(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if order == nil {
		return nil, lib.ErrOrderNotFound
	}

	if err := os.attachItems(ctx, []*tables.Order{order}); err != nil {
		return nil, err
	}

	user, err := os.userService.GetUserByClerkID(ctx, order.ClerkID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, lib.ErrUserNotFound
	}

	details := &structs.OrderDetails{
		Order:       order,
		UserName:    user.FirstName + " " + user.LastName,
		Email:       user.Email,
		PhoneNumber: user.PhoneNumber,
	}

	userDetails, err := os.userService.GetDetailsByClerkID(ctx, order.ClerkID)
	if err != nil {
		return nil, err
	}
	if userDetails != nil {
		details.Address = userDetails.Address
		details.City = userDetails.City
		details.State = userDetails.State
		details.Country = userDetails.Country
		details.PinCode = userDetails.PinCode
	}

	return details, nil
}

// GetAllOrders returns a page of every order with items and receipts attached
func (os *OrderService) GetAllOrders(ctx context.Context, limit, offset int, sortDir string) ([]*tables.Order, int, error) {
	count, err := database.Query[tables.Order](os.db).Count(ctx)
	if err != nil {
		return nil, 0, lib.MapPgError(err)
	}

	orders, err := database.Query[tables.Order](os.db).
		OrderBy("created_at", sortDir).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, 0, lib.MapPgError(err)
	}

	result := make([]*tables.Order, len(orders))
	for i := range orders {
		result[i] = &orders[i]
	}

	if err := os.attachItems(ctx, result); err != nil {
		return nil, 0, err
	}
	if err := os.attachReceipts(ctx, result); err != nil {
		return nil, 0, err
	}

	return result, count, nil
}

// UpdateOrder applies a partial admin update to an order looked up by its
// public code, validating any status transition.
func (os *OrderService) UpdateOrder(ctx context.Context, orderCode string, upd *structs.OrderUpdate) (*tables.Order, error) {
	order, err := database.Query[tables.Order](os.db).
		Where("order_id", orderCode).
		First(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if order == nil {
		return nil, lib.ErrOrderNotFound
	}

	if upd.Status != nil && !IsValidStatusTransition(order.Status, *upd.Status) {
		return nil, &lib.InvalidStatusTransitionError{From: string(order.Status), To: string(*upd.Status)}
	}

	ApplyOrderUpdate(order, upd)

	_, err = os.db.NewUpdate().
		Model(order).
		Where("id = ?", order.ID).
		Exec(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	os.logger.Info("Order updated",
		gecho.Field("order_id", orderCode),
		gecho.Field("status", order.Status))

	return order, nil
}

// attachItems eagerly loads the items of all given orders in one batched
// query and groups them onto their parents.
func (os *OrderService) attachItems(ctx context.Context, orders []*tables.Order) error {
	if len(orders) == 0 {
		return nil
	}

	orderIDs := make([]any, len(orders))
	byID := make(map[int64]*tables.Order, len(orders))
	for i, order := range orders {
		orderIDs[i] = order.ID
		byID[order.ID] = order
		order.Items = []*tables.OrderItem{}
	}

	items, err := database.Query[tables.OrderItem](os.db).
		WhereIn("order_id", orderIDs).
		All(ctx)
	if err != nil {
		return lib.MapPgError(err)
	}

	for i := range items {
		item := &items[i]
		if order, ok := byID[item.OrderID]; ok {
			order.Items = append(order.Items, item)
		}
	}

	return nil
}

// attachReceipts loads linked receipts for all given orders in one query
func (os *OrderService) attachReceipts(ctx context.Context, orders []*tables.Order) error {
	receiptIDs := []any{}
	seen := map[int64]struct{}{}
	for _, order := range orders {
		if order.ReceiptID == nil {
			continue
		}
		if _, ok := seen[*order.ReceiptID]; ok {
			continue
		}
		seen[*order.ReceiptID] = struct{}{}
		receiptIDs = append(receiptIDs, *order.ReceiptID)
	}

	if len(receiptIDs) == 0 {
		return nil
	}

	receipts, err := database.Query[tables.Receipt](os.db).
		WhereIn("id", receiptIDs).
		All(ctx)
	if err != nil {
		return lib.MapPgError(err)
	}

	byID := make(map[int64]*tables.Receipt, len(receipts))
	for i := range receipts {
		byID[receipts[i].ID] = &receipts[i]
	}

	for _, order := range orders {
		if order.ReceiptID != nil {
			order.Receipt = byID[*order.ReceiptID]
		}
	}

	return nil
}
