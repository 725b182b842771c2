package services

import (
	"context"
	"printdoot_server/database"
	"printdoot_server/lib"
	"printdoot_server/structs"
	"printdoot_server/structs/tables"
	"time"

	"github.com/MonkyMars/gecho"
)

// ReviewService manages buyer reviews on products. Every accepted review
// refreshes the product's stored average rating.
type ReviewService struct {
	logger         *gecho.Logger
	db             *database.DB
	catalogService *CatalogService
	userService    *UserService
}

func NewReviewService(logger *gecho.Logger, db *database.DB, catalogService *CatalogService, userService *UserService) *ReviewService {
	return &ReviewService{
		logger:         logger,
		db:             db,
		catalogService: catalogService,
		userService:    userService,
	}
}

// CreateReview stores a review for the given product code. The product and
// the reviewing buyer must exist, and a buyer gets one review per product.
func (rs *ReviewService) CreateReview(ctx context.Context, productCode string, req *structs.ProductReviewRequest) (*tables.ProductReview, error) {
	product, err := rs.catalogService.GetProductByCode(ctx, productCode)
	if err != nil {
		return nil, err
	}

	exists, err := database.Query[tables.ProductReview](rs.db).
		Where("clerk_id", req.ClerkID).
		Where("product_id", productCode).
		Exists(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if exists {
		return nil, lib.ErrDuplicateReview
	}

	user, err := rs.userService.GetUserByClerkID(ctx, req.ClerkID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, lib.ErrUserNotFound
	}

	review := &tables.ProductReview{
		ClerkID:    req.ClerkID,
		UserName:   user.FirstName + " " + user.LastName,
		ProductID:  productCode,
		Rating:     req.Rating,
		ReviewText: req.ReviewText,
		CreatedAt:  time.Now(),
	}

	if _, err := database.Query[tables.ProductReview](rs.db).Insert(ctx, review); err != nil {
		return nil, lib.MapPgError(err)
	}

	if err := rs.refreshAverageRating(ctx, product); err != nil {
		// The review is already stored; a stale average corrects itself on
		// the next review.
		rs.logger.Warn("Failed to refresh average rating",
			gecho.Field("error", err),
			gecho.Field("product_id", productCode))
	}

	rs.logger.Info("Review created",
		gecho.Field("product_id", productCode),
		gecho.Field("clerk_id", req.ClerkID),
		gecho.Field("rating", req.Rating))

	return review, nil
}

// GetReviewsByProductCode returns a product's reviews, newest first. The
// product must exist; an empty list is a valid result.
func (rs *ReviewService) GetReviewsByProductCode(ctx context.Context, productCode string) ([]tables.ProductReview, error) {
	if _, err := rs.catalogService.GetProductByCode(ctx, productCode); err != nil {
		return nil, err
	}

	reviews, err := database.Query[tables.ProductReview](rs.db).
		Where("product_id", productCode).
		OrderBy("created_at", database.DESC).
		All(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	return reviews, nil
}

func (rs *ReviewService) refreshAverageRating(ctx context.Context, product *tables.Product) error {
	reviews, err := database.Query[tables.ProductReview](rs.db).
		Where("product_id", product.ProductID).
		All(ctx)
	if err != nil {
		return lib.MapPgError(err)
	}

	return rs.catalogService.SetAverageRating(ctx, product, ComputeAverageRating(reviews))
}

// ComputeAverageRating is the mean of all review ratings, 0 for no reviews.
func ComputeAverageRating(reviews []tables.ProductReview) float64 {
	if len(reviews) == 0 {
		return 0
	}

	var sum int
	for _, review := range reviews {
		sum += review.Rating
	}

	return float64(sum) / float64(len(reviews))
}
