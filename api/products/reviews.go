package products

import (
	"errors"
	"net/http"
	"printdoot_server/lib"
	"printdoot_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

// FetchProductReviews handles GET /products/{productId}/reviews
func (prm *ProductRoutesManager) FetchProductReviews(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productId")

	reviews, err := prm.reviewService.GetReviewsByProductCode(r.Context(), productID)
	if err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w,
				gecho.WithMessage("error.products.notFound"),
				gecho.Send(),
			)
			return
		}

		prm.logger.Error("Failed to fetch reviews",
			gecho.Field("error", err),
			gecho.Field("product_id", productID))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.reviews.failedToFetch"),
			gecho.WithData(map[string]string{"error": err.Error()}),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"reviews": reviews,
		}),
		gecho.Send(),
	)
}

// CreateProductReview handles POST /products/{productId}/reviews
func (prm *ProductRoutesManager) CreateProductReview(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productId")

	body, err := lib.ExtractAndValidateBody[structs.ProductReviewRequest](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.reviews.invalidRequestBody"),
			gecho.WithData(err),
			gecho.Send(),
		)
		return
	}

	review, err := prm.reviewService.CreateReview(r.Context(), productID, body)
	if err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w,
				gecho.WithMessage("error.reviews.subjectNotFound"),
				gecho.WithData(map[string]string{"error": err.Error()}),
				gecho.Send(),
			)
			return
		}
		if errors.Is(err, lib.ErrConflict) {
			gecho.Conflict(w,
				gecho.WithMessage("error.reviews.alreadyReviewed"),
				gecho.Send(),
			)
			return
		}

		prm.logger.Error("Failed to create review",
			gecho.Field("error", err),
			gecho.Field("product_id", productID))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.reviews.creationFailed"),
			gecho.WithData(map[string]string{"error": err.Error()}),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("success.reviews.created"),
		gecho.WithData(map[string]any{
			"review": review,
		}),
		gecho.Send(),
	)
}
