package services

import (
	"context"
	"fmt"
	"printdoot_server/database"
	"printdoot_server/lib"
	"printdoot_server/structs"
	"printdoot_server/structs/tables"
	"strings"
	"time"

	"github.com/MonkyMars/gecho"
)

// CatalogService is the read/write surface over products and categories. The
// order path only reads from it: existence, pricing and customization schema
// lookups.
type CatalogService struct {
	logger       *gecho.Logger
	db           *database.DB
	cacheService *CacheService
}

func NewCatalogService(logger *gecho.Logger, db *database.DB, cacheService *CacheService) *CatalogService {
	return &CatalogService{
		logger:       logger,
		db:           db,
		cacheService: cacheService,
	}
}

// GetProductsByCodes batch-resolves products by their public codes. The
// result map only contains codes that exist; missing codes are the caller's
// concern. Cached entries are served from Redis.
func (cs *CatalogService) GetProductsByCodes(ctx context.Context, codes []string) (map[string]*tables.Product, error) {
	result := make(map[string]*tables.Product, len(codes))

	missing := make([]any, 0, len(codes))
	for _, code := range codes {
		if _, seen := result[code]; seen {
			continue
		}
		var cached tables.Product
		if cs.cacheService.Get(ctx, ProductCacheKey(code), &cached) {
			result[code] = &cached
			continue
		}
		missing = append(missing, code)
	}

	if len(missing) == 0 {
		return result, nil
	}

	products, err := database.Query[tables.Product](cs.db).
		WhereIn("product_id", missing).
		All(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	ttl := cs.cacheService.config.Cache.ProductTTL
	for i := range products {
		product := &products[i]
		result[product.ProductID] = product
		cs.cacheService.Set(ctx, ProductCacheKey(product.ProductID), product, ttl)
	}

	return result, nil
}

// GetProductByCode resolves a single product by its public code
func (cs *CatalogService) GetProductByCode(ctx context.Context, code string) (*tables.Product, error) {
	products, err := cs.GetProductsByCodes(ctx, []string{code})
	if err != nil {
		return nil, err
	}

	product, ok := products[code]
	if !ok {
		return nil, lib.ErrProductNotFound
	}

	return product, nil
}

// GetCategoriesByIDs batch-fetches categories keyed by primary key
func (cs *CatalogService) GetCategoriesByIDs(ctx context.Context, ids []int64) (map[int64]*tables.Category, error) {
	if len(ids) == 0 {
		return map[int64]*tables.Category{}, nil
	}

	idSet := make(map[int64]struct{}, len(ids))
	args := make([]any, 0, len(ids))
	for _, id := range ids {
		if _, seen := idSet[id]; seen {
			continue
		}
		idSet[id] = struct{}{}
		args = append(args, id)
	}

	categories, err := database.Query[tables.Category](cs.db).
		WhereIn("id", args).
		All(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	result := make(map[int64]*tables.Category, len(categories))
	for i := range categories {
		result[categories[i].ID] = &categories[i]
	}

	return result, nil
}

// ListProducts returns a page of the catalog, newest first
func (cs *CatalogService) ListProducts(ctx context.Context, limit, offset int) ([]tables.Product, int, error) {
	count, err := database.Query[tables.Product](cs.db).Count(ctx)
	if err != nil {
		return nil, 0, lib.MapPgError(err)
	}

	products, err := database.Query[tables.Product](cs.db).
		OrderBy("created_at", database.DESC).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, 0, lib.MapPgError(err)
	}

	return products, count, nil
}

// CreateProduct inserts a new product with a generated public code derived
// from the category abbreviation and the per-category product count.
func (cs *CatalogService) CreateProduct(ctx context.Context, req *structs.ProductCreateRequest) (*tables.Product, error) {
	category, err := database.Query[tables.Category](cs.db).
		Where("id", req.CategoryID).
		First(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if category == nil {
		return nil, fmt.Errorf("category %d %w", req.CategoryID, lib.ErrNotFound)
	}

	// Product-level customization options must stay inside the category schema
	if len(req.CustomizationOptions) > 0 {
		if err := validateProductCustomizations(req.CustomizationOptions, category); err != nil {
			return nil, err
		}
	}

	count, err := database.Query[tables.Product](cs.db).
		Where("category_id", req.CategoryID).
		Count(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	abbreviation := strings.ToUpper(category.Name)
	if len(abbreviation) > 3 {
		abbreviation = abbreviation[:3]
	}

	status := req.Status
	if status == "" {
		status = tables.ProductStatusInStock
	}

	product := &tables.Product{
		ProductID:            fmt.Sprintf("PRNTDT%s%03d", abbreviation, count+1),
		Name:                 req.Name,
		Description:          req.Description,
		Price:                req.Price,
		CategoryID:           req.CategoryID,
		CustomizationOptions: req.CustomizationOptions,
		Status:               status,
		CreatedAt:            time.Now(),
	}

	if _, err := database.Query[tables.Product](cs.db).Insert(ctx, product); err != nil {
		return nil, lib.MapPgError(err)
	}

	cs.logger.Info("Product created",
		gecho.Field("product_id", product.ProductID),
		gecho.Field("category_id", product.CategoryID))

	return product, nil
}

// UpdateProduct applies a partial update to a product looked up by its public
// code and invalidates the cached entry.
func (cs *CatalogService) UpdateProduct(ctx context.Context, productID string, upd *structs.ProductUpdate) (*tables.Product, error) {
	product, err := database.Query[tables.Product](cs.db).
		Where("product_id", productID).
		First(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if product == nil {
		return nil, lib.ErrProductNotFound
	}

	ApplyProductUpdate(product, upd)

	_, err = cs.db.NewUpdate().
		Model(product).
		Where("id = ?", product.ID).
		Exec(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	cs.cacheService.Delete(ctx, ProductCacheKey(productID))

	cs.logger.Info("Product updated", gecho.Field("product_id", productID))

	return product, nil
}

// SetAverageRating persists a recomputed average rating and invalidates the
// cached product entry.
func (cs *CatalogService) SetAverageRating(ctx context.Context, product *tables.Product, average float64) error {
	product.AverageRating = average

	_, err := cs.db.NewUpdate().
		Model(product).
		Column("average_rating").
		Where("id = ?", product.ID).
		Exec(ctx)
	if err != nil {
		return lib.MapPgError(err)
	}

	cs.cacheService.Delete(ctx, ProductCacheKey(product.ProductID))

	return nil
}

// ApplyProductUpdate merges the provided fields onto the product. Nil fields
// are left unchanged.
func ApplyProductUpdate(product *tables.Product, upd *structs.ProductUpdate) {
	if upd.Name != nil {
		product.Name = *upd.Name
	}
	if upd.Description != nil {
		product.Description = *upd.Description
	}
	if upd.Price != nil {
		product.Price = *upd.Price
	}
	if upd.CustomizationOptions != nil {
		product.CustomizationOptions = *upd.CustomizationOptions
	}
	if upd.Status != nil {
		product.Status = *upd.Status
	}
	if upd.MainImageURL != nil {
		product.MainImageURL = *upd.MainImageURL
	}
	if upd.SideImageURLs != nil {
		product.SideImageURLs = *upd.SideImageURLs
	}
}

// validateProductCustomizations checks a product customization schema against
// the owning category's allowed set.
func validateProductCustomizations(options map[string][]string, category *tables.Category) error {
	if len(category.AllowedCustomizations) == 0 {
		return &lib.InvalidCustomizationError{Violations: []lib.CustomizationViolation{{
			Reason: "category " + category.Name + " does not allow customization options",
		}}}
	}

	violations := []lib.CustomizationViolation{}
	for key, values := range options {
		allowed, ok := category.AllowedCustomizations[key]
		if !ok {
			violations = append(violations, lib.CustomizationViolation{
				Key:    key,
				Reason: "key not allowed for category " + category.Name,
			})
			continue
		}

		allowedSet := make(map[string]struct{}, len(allowed))
		for _, v := range allowed {
			allowedSet[v] = struct{}{}
		}
		for _, v := range values {
			if _, ok := allowedSet[v]; !ok {
				violations = append(violations, lib.CustomizationViolation{
					Key:    key,
					Value:  v,
					Reason: "value not allowed for category " + category.Name,
				})
			}
		}
	}

	if len(violations) > 0 {
		return &lib.InvalidCustomizationError{Violations: violations}
	}

	return nil
}
