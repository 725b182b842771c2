package products

import (
	"errors"
	"net/http"
	"printdoot_server/lib"
	"printdoot_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

// CreateProduct handles POST /admin/products
func (prm *ProductRoutesManager) CreateProduct(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.ProductCreateRequest](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.products.invalidRequestBody"),
			gecho.WithData(err),
			gecho.Send(),
		)
		return
	}

	product, err := prm.catalogService.CreateProduct(r.Context(), body)
	if err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w,
				gecho.WithMessage("error.products.categoryNotFound"),
				gecho.Send(),
			)
			return
		}
		if lib.IsClientError(err) {
			gecho.BadRequest(w,
				gecho.WithMessage("error.products.invalidCustomizations"),
				gecho.WithData(map[string]string{"error": err.Error()}),
				gecho.Send(),
			)
			return
		}

		prm.logger.Error("Failed to create product", gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.products.creationFailed"),
			gecho.WithData(map[string]string{"error": err.Error()}),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("success.products.created"),
		gecho.WithData(map[string]any{
			"product": product,
		}),
		gecho.Send(),
	)
}

// UpdateProduct handles PATCH /admin/products/{productId}
func (prm *ProductRoutesManager) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productId")

	body, err := lib.ExtractAndValidateBody[structs.ProductUpdate](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.products.invalidRequestBody"),
			gecho.WithData(err),
			gecho.Send(),
		)
		return
	}

	product, err := prm.catalogService.UpdateProduct(r.Context(), productID, body)
	if err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w,
				gecho.WithMessage("error.products.notFound"),
				gecho.Send(),
			)
			return
		}

		prm.logger.Error("Failed to update product",
			gecho.Field("error", err),
			gecho.Field("product_id", productID))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.products.updateFailed"),
			gecho.WithData(map[string]string{"error": err.Error()}),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("success.products.updated"),
		gecho.WithData(map[string]any{
			"product": product,
		}),
		gecho.Send(),
	)
}
