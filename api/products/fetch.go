package products

import (
	"errors"
	"net/http"
	"printdoot_server/lib"
	"strconv"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

// FetchAllProducts handles GET /products with pagination
func (prm *ProductRoutesManager) FetchAllProducts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	page, _ := strconv.Atoi(query.Get("page"))
	if page < 1 {
		page = 1
	}

	pageSize, _ := strconv.Atoi(query.Get("page_size"))
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	products, total, err := prm.catalogService.ListProducts(r.Context(), pageSize, (page-1)*pageSize)
	if err != nil {
		prm.logger.Error("Failed to fetch products", gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.products.failedToFetch"),
			gecho.WithData(map[string]string{"error": err.Error()}),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"products": products,
			"pagination": map[string]any{
				"page":        page,
				"page_size":   pageSize,
				"total":       total,
				"total_pages": (total + pageSize - 1) / pageSize,
			},
		}),
		gecho.Send(),
	)
}

// FetchProductByID handles GET /products/{productId} by public product code
func (prm *ProductRoutesManager) FetchProductByID(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productId")
	if productID == "" {
		gecho.BadRequest(w,
			gecho.WithMessage("error.products.productIdRequired"),
			gecho.Send(),
		)
		return
	}

	product, err := prm.catalogService.GetProductByCode(r.Context(), productID)
	if err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w,
				gecho.WithMessage("error.products.notFound"),
				gecho.Send(),
			)
			return
		}

		prm.logger.Error("Failed to fetch product",
			gecho.Field("error", err),
			gecho.Field("product_id", productID))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.products.failedToFetchOne"),
			gecho.WithData(map[string]string{"error": err.Error()}),
			gecho.Send(),
		)
		return
	}

	// The storefront needs the category's accepted user-customization kinds
	// alongside the product to know which inputs to offer.
	userCustomizationOptions := []string{}
	categories, err := prm.catalogService.GetCategoriesByIDs(r.Context(), []int64{product.CategoryID})
	if err != nil {
		prm.logger.Error("Failed to fetch product category",
			gecho.Field("error", err),
			gecho.Field("product_id", productID))
	} else if category, ok := categories[product.CategoryID]; ok {
		userCustomizationOptions = category.UserCustomizationOptions
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"product":                    product,
			"user_customization_options": userCustomizationOptions,
		}),
		gecho.Send(),
	)
}
