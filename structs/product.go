package structs

import (
	"printdoot_server/structs/tables"
)

type ProductCreateRequest struct {
	Name                 string               `json:"name" validate:"required,min=2,max=200"`
	Description          string               `json:"description,omitempty"`
	Price                int64                `json:"price" validate:"gte=0"`
	CategoryID           int64                `json:"category_id" validate:"required"`
	CustomizationOptions map[string][]string  `json:"customization_options,omitempty"`
	Status               tables.ProductStatus `json:"status" validate:"omitempty,oneof=in_stock out_of_stock discontinued"`
}

// ProductReviewRequest is a buyer-submitted review for one product.
type ProductReviewRequest struct {
	ClerkID    string `json:"clerk_id" validate:"required"`
	Rating     int    `json:"rating" validate:"required,min=1,max=5"`
	ReviewText string `json:"review_text,omitempty" validate:"omitempty,max=2000"`
}

// ProductUpdate enumerates the fields an admin may patch on a product.
// Nil means "leave unchanged".
type ProductUpdate struct {
	Name                 *string               `json:"name,omitempty" validate:"omitempty,min=2,max=200"`
	Description          *string               `json:"description,omitempty"`
	Price                *int64                `json:"price,omitempty" validate:"omitempty,gte=0"`
	CustomizationOptions *map[string][]string  `json:"customization_options,omitempty"`
	Status               *tables.ProductStatus `json:"status,omitempty" validate:"omitempty,oneof=in_stock out_of_stock discontinued"`
	MainImageURL         *string               `json:"main_image_url,omitempty" validate:"omitempty,url"`
	SideImageURLs        *[]string             `json:"side_images_url,omitempty"`
}
