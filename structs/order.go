package structs

import (
	"time"

	"printdoot_server/structs/tables"
)

// OrderItemRequest is a single checkout line item as submitted by the client.
type OrderItemRequest struct {
	ProductID              string                       `json:"product_id" validate:"required"`
	Quantity               int                          `json:"quantity" validate:"required,min=1"`
	SelectedCustomizations map[string]string            `json:"selected_customizations,omitempty"`
	UserCustomizationType  tables.UserCustomizationType `json:"user_customization_type" validate:"omitempty,oneof=none text image logo"`
	UserCustomizationValue string                       `json:"user_customization_value,omitempty"` // text, or base64 payload for image/logo
	ImageExtension         string                       `json:"image_extension,omitempty"`          // only used for image/logo payloads
	IndividualPrice        int64                        `json:"individual_price" validate:"gte=0"`  // unit price claimed at order time
}

type OrderRequest struct {
	ClerkID    string             `json:"clerk_id" validate:"required"`
	TotalPrice int64              `json:"total_price" validate:"gte=0"`
	Products   []OrderItemRequest `json:"products" validate:"required,min=1,dive"`
}

// OrderUpdate enumerates the fields an admin may patch on an order.
// Nil means "leave unchanged".
type OrderUpdate struct {
	Status    *tables.OrderStatus `json:"status,omitempty" validate:"omitempty,oneof=placed paid shipped delivered cancelled"`
	ReceiptID *int64              `json:"receipt_id,omitempty"`
}

// OrderDetails is the single-order read model with the buyer profile joined in.
type OrderDetails struct {
	Order       *tables.Order `json:"order"`
	UserName    string        `json:"user_name"`
	Email       string        `json:"email"`
	PhoneNumber string        `json:"phone_number"`
	Address     string        `json:"address,omitempty"`
	City        string        `json:"city,omitempty"`
	State       string        `json:"state,omitempty"`
	Country     string        `json:"country,omitempty"`
	PinCode     string        `json:"pin_code,omitempty"`
}

// ReportRow is one order's worth of report output with joined buyer and
// product data, assembled from bulk lookups.
type ReportRow struct {
	OrderID    string          `json:"order_id"`
	CreatedAt  time.Time       `json:"created_at"`
	Status     string          `json:"status"`
	TotalPrice int64           `json:"total_price"`
	BuyerName  string          `json:"buyer_name"`
	BuyerEmail string          `json:"buyer_email"`
	BuyerCity  string          `json:"buyer_city,omitempty"`
	Lines      []ReportRowLine `json:"lines"`
}

type ReportRowLine struct {
	ProductID     string `json:"product_id"`
	ProductName   string `json:"product_name"`
	Quantity      int    `json:"quantity"`
	UnitPrice     int64  `json:"unit_price"`
	Customization string `json:"customization,omitempty"`
}

// ReportDocument wraps a rendered report for transport, matching the
// base64-in-JSON contract of the export endpoints.
type ReportDocument struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	PDFData     string `json:"pdf_data"`
}
