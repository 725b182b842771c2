package tables

import (
	"time"
)

type Product struct {
	tableName struct{} `bun:"table:products,alias:p"`
	ID        int64    `bun:"id,pk,autoincrement" json:"id"`
	ProductID string   `bun:"product_id,notnull,unique" json:"product_id"` // public code, e.g. PRNTDTMUG001

	Name        string `bun:"name,notnull" json:"name" validate:"required,min=2,max=200"`
	Description string `bun:"description" json:"description,omitempty"`

	Price      int64 `bun:"price,notnull" json:"price" validate:"gte=0"` // smallest currency unit
	CategoryID int64 `bun:"category_id,notnull" json:"category_id"`

	MainImageURL  string   `bun:"main_image_url" json:"main_image_url"`
	SideImageURLs []string `bun:"side_images_url,type:jsonb" json:"side_images_url,omitempty"`

	// Customization key -> allowed values, overrides the category schema when set
	CustomizationOptions map[string][]string `bun:"customization_options,type:jsonb" json:"customization_options,omitempty"`

	Status        ProductStatus `bun:"status,notnull,default:'in_stock'" json:"status"`
	AverageRating float64       `bun:"average_rating,default:0" json:"average_rating"`
	CreatedAt     time.Time     `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
}

type Category struct {
	tableName struct{} `bun:"table:categories,alias:c"`
	ID        int64    `bun:"id,pk,autoincrement" json:"id"`
	Name      string   `bun:"name,notnull,unique" json:"name" validate:"required,min=2,max=100"`

	// Customization key -> allowed values for products in this category
	AllowedCustomizations map[string][]string `bun:"allowed_customizations,type:jsonb" json:"allowed_customizations,omitempty"`

	// Which user-customization kinds products in this category accept
	UserCustomizationOptions []string `bun:"user_customization_options,type:jsonb" json:"user_customization_options,omitempty"`

	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
}

type ProductReview struct {
	tableName struct{} `bun:"table:product_reviews,alias:pr"`
	ID        int64    `bun:"id,pk,autoincrement" json:"id"`
	ClerkID   string   `bun:"clerk_id,notnull" json:"clerk_id"`
	UserName  string   `bun:"user_name,notnull" json:"user_name"`
	ProductID string   `bun:"product_id,notnull" json:"product_id"`

	Rating     int       `bun:"rating,notnull" json:"rating" validate:"min=1,max=5"`
	ReviewText string    `bun:"review_text" json:"review_text,omitempty"`
	CreatedAt  time.Time `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
}

type ProductStatus string

const (
	ProductStatusInStock      ProductStatus = "in_stock"
	ProductStatusOutOfStock   ProductStatus = "out_of_stock"
	ProductStatusDiscontinued ProductStatus = "discontinued"
)
