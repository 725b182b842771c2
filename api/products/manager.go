package products

import (
	"printdoot_server/api/middleware"
	"printdoot_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type ProductRoutesManager struct {
	logger         *gecho.Logger
	mw             *middleware.Middleware
	catalogService *services.CatalogService
	reviewService  *services.ReviewService
}

func NewProductRoutesManager(logger *gecho.Logger, mw *middleware.Middleware, catalogService *services.CatalogService, reviewService *services.ReviewService) *ProductRoutesManager {
	return &ProductRoutesManager{
		logger:         logger,
		mw:             mw,
		catalogService: catalogService,
		reviewService:  reviewService,
	}
}

func (prm *ProductRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/products", func(r chi.Router) {
		r.Get("/", prm.FetchAllProducts)
		r.Get("/{productId}", prm.FetchProductByID)
		r.Get("/{productId}/reviews", prm.FetchProductReviews)
		r.Post("/{productId}/reviews", prm.CreateProductReview)
	})

	r.Route("/admin/products", func(r chi.Router) {
		r.Use(prm.mw.AdminAuthMiddleware)
		r.Post("/", prm.CreateProduct)
		r.Patch("/{productId}", prm.UpdateProduct)
	})
}
