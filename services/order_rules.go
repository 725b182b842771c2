package services

import (
	"printdoot_server/lib"
	"printdoot_server/structs"
	"printdoot_server/structs/tables"
)

// ComputeOrderTotal sums the price snapshots of all line items. The stored
// total still comes from the client (see PlaceOrder); this is the server-side
// check against it.
func ComputeOrderTotal(items []structs.OrderItemRequest) int64 {
	var total int64
	for _, item := range items {
		total += item.IndividualPrice * int64(item.Quantity)
	}
	return total
}

// customizationSchema resolves the allowed customization key/value sets for a
// product: the product's own options override the category's.
func customizationSchema(product *tables.Product, category *tables.Category) map[string][]string {
	if len(product.CustomizationOptions) > 0 {
		return product.CustomizationOptions
	}
	if category != nil {
		return category.AllowedCustomizations
	}
	return nil
}

// validateItemCustomizations checks one line item's selected customizations
// against the resolved schema and returns every violation found.
func validateItemCustomizations(product *tables.Product, category *tables.Category, selected map[string]string) []lib.CustomizationViolation {
	if len(selected) == 0 {
		return nil
	}

	schema := customizationSchema(product, category)

	violations := []lib.CustomizationViolation{}
	for key, value := range selected {
		allowed, ok := schema[key]
		if !ok {
			violations = append(violations, lib.CustomizationViolation{
				ProductID: product.ProductID,
				Key:       key,
				Reason:    "customization key not allowed",
			})
			continue
		}

		found := false
		for _, v := range allowed {
			if v == value {
				found = true
				break
			}
		}
		if !found {
			violations = append(violations, lib.CustomizationViolation{
				ProductID: product.ProductID,
				Key:       key,
				Value:     value,
				Reason:    "customization value not allowed",
			})
		}
	}

	return violations
}

// orderStatusTransitions defines which lifecycle moves an admin may make.
var orderStatusTransitions = map[tables.OrderStatus][]tables.OrderStatus{
	tables.OrderStatusPlaced:    {tables.OrderStatusPaid, tables.OrderStatusCancelled},
	tables.OrderStatusPaid:      {tables.OrderStatusShipped, tables.OrderStatusCancelled},
	tables.OrderStatusShipped:   {tables.OrderStatusDelivered},
	tables.OrderStatusDelivered: {},
	tables.OrderStatusCancelled: {},
}

// IsValidStatusTransition reports whether an order may move from current to next.
func IsValidStatusTransition(current, next tables.OrderStatus) bool {
	allowedNextStates, exists := orderStatusTransitions[current]
	if !exists {
		return false
	}

	for _, s := range allowedNextStates {
		if s == next {
			return true
		}
	}
	return false
}

// ApplyOrderUpdate merges the provided fields onto the order. Nil fields are
// left unchanged.
func ApplyOrderUpdate(order *tables.Order, upd *structs.OrderUpdate) {
	if upd.Status != nil {
		order.Status = *upd.Status
	}
	if upd.ReceiptID != nil {
		order.ReceiptID = upd.ReceiptID
	}
}
