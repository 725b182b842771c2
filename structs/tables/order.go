package tables

import (
	"time"
)

type Order struct {
	// Table name and identifiers
	tableName struct{} `bun:"table:orders,alias:o"`
	ID        int64    `bun:"id,pk,autoincrement" json:"id"`
	OrderID   string   `bun:"order_id,notnull,unique" json:"order_id" validate:"omitempty,min=8,max=20"` // public code, e.g. PRNTDT-AAA00001

	// Buyer reference (opaque external identifier, no local FK)
	ClerkID string `bun:"clerk_id,notnull" json:"clerk_id" validate:"required"`

	// Order data
	TotalPrice int64       `bun:"total_price,notnull" json:"total_price" validate:"gte=0"` // smallest currency unit
	Status     OrderStatus `bun:"status,notnull,default:'placed'" json:"status"`
	CreatedAt  time.Time   `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`

	// Optional payment receipt reference
	ReceiptID *int64 `bun:"receipt_id" json:"receipt_id,omitempty"`

	// Attached at read time, not mapped by bun
	Items   []*OrderItem `bun:"-" json:"items,omitempty"`
	Receipt *Receipt     `bun:"-" json:"receipt,omitempty"`
}

type OrderItem struct {
	tableName struct{} `bun:"table:order_items,alias:oi"`
	ID        int64    `bun:"id,pk,autoincrement" json:"id"`
	OrderID   int64    `bun:"order_id,notnull" json:"order_id"`

	// Soft reference to the product by its public code
	ProductID string `bun:"product_id,notnull" json:"product_id" validate:"required"`
	Quantity  int    `bun:"quantity,notnull" json:"quantity" validate:"required,min=1"`

	// Catalog-defined options chosen by the buyer (key -> value)
	SelectedCustomizations map[string]string `bun:"selected_customizations,type:jsonb" json:"selected_customizations,omitempty"`

	// Buyer-supplied free content
	UserCustomizationType  UserCustomizationType `bun:"user_customization_type" json:"user_customization_type"`
	UserCustomizationValue string                `bun:"user_customization_value" json:"user_customization_value,omitempty"` // literal text or durable asset URL

	// Price snapshot at order time, never recomputed
	IndividualPrice int64 `bun:"individual_price,notnull" json:"individual_price" validate:"gte=0"`
}

type OrderCounter struct {
	tableName     struct{} `bun:"table:order_counter,alias:oc"`
	ID            int64    `bun:"id,pk" json:"id"`
	CurrentNumber int64    `bun:"current_number,notnull" json:"current_number"`
}

type Receipt struct {
	tableName        struct{}  `bun:"table:receipts,alias:rc"`
	ID               int64     `bun:"id,pk,autoincrement" json:"id"`
	PaymentReference string    `bun:"payment_reference,unique" json:"payment_reference,omitempty"`
	AmountPaid       int64     `bun:"amount_paid" json:"amount_paid,omitempty"`
	CreatedAt        time.Time `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
}

type OrderStatus string

const (
	OrderStatusPlaced    OrderStatus = "placed"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

type UserCustomizationType string

const (
	UserCustomizationNone  UserCustomizationType = "none"
	UserCustomizationText  UserCustomizationType = "text"
	UserCustomizationImage UserCustomizationType = "image"
	UserCustomizationLogo  UserCustomizationType = "logo"
)
