package services

import (
	"testing"

	"printdoot_server/structs"
	"printdoot_server/structs/tables"

	"github.com/stretchr/testify/assert"
)

func TestComputeOrderTotal(t *testing.T) {
	items := []structs.OrderItemRequest{
		{ProductID: "PRNTDTMUG001", Quantity: 2, IndividualPrice: 250},
		{ProductID: "PRNTDTTSH003", Quantity: 1, IndividualPrice: 799},
	}

	assert.Equal(t, int64(1299), ComputeOrderTotal(items))
	assert.Equal(t, int64(0), ComputeOrderTotal(nil))
}

func TestValidateItemCustomizations(t *testing.T) {
	product := &tables.Product{
		ProductID: "PRNTDTMUG001",
		CustomizationOptions: map[string][]string{
			"color": {"red", "blue"},
			"size":  {"small", "large"},
		},
	}

	t.Run("valid selection", func(t *testing.T) {
		violations := validateItemCustomizations(product, nil, map[string]string{
			"color": "red",
			"size":  "large",
		})
		assert.Empty(t, violations)
	})

	t.Run("empty selection is always valid", func(t *testing.T) {
		assert.Nil(t, validateItemCustomizations(product, nil, nil))
	})

	t.Run("unknown key", func(t *testing.T) {
		violations := validateItemCustomizations(product, nil, map[string]string{
			"material": "steel",
		})
		assert.Len(t, violations, 1)
		assert.Equal(t, "material", violations[0].Key)
		assert.Equal(t, "customization key not allowed", violations[0].Reason)
	})

	t.Run("disallowed value", func(t *testing.T) {
		violations := validateItemCustomizations(product, nil, map[string]string{
			"color": "green",
		})
		assert.Len(t, violations, 1)
		assert.Equal(t, "green", violations[0].Value)
		assert.Equal(t, "customization value not allowed", violations[0].Reason)
	})

	t.Run("multiple violations reported together", func(t *testing.T) {
		violations := validateItemCustomizations(product, nil, map[string]string{
			"color":    "green",
			"material": "steel",
		})
		assert.Len(t, violations, 2)
	})

	t.Run("falls back to category schema", func(t *testing.T) {
		bare := &tables.Product{ProductID: "PRNTDTPEN002"}
		category := &tables.Category{
			AllowedCustomizations: map[string][]string{
				"ink": {"black", "blue"},
			},
		}

		assert.Empty(t, validateItemCustomizations(bare, category, map[string]string{"ink": "black"}))
		assert.Len(t, validateItemCustomizations(bare, category, map[string]string{"ink": "pink"}), 1)
	})

	t.Run("product options override category schema", func(t *testing.T) {
		category := &tables.Category{
			AllowedCustomizations: map[string][]string{
				"color": {"green"},
			},
		}

		// green is category-allowed but the product schema wins
		violations := validateItemCustomizations(product, category, map[string]string{"color": "green"})
		assert.Len(t, violations, 1)
	})
}

func TestIsValidStatusTransition(t *testing.T) {
	tests := []struct {
		from tables.OrderStatus
		to   tables.OrderStatus
		want bool
	}{
		{tables.OrderStatusPlaced, tables.OrderStatusPaid, true},
		{tables.OrderStatusPlaced, tables.OrderStatusCancelled, true},
		{tables.OrderStatusPlaced, tables.OrderStatusShipped, false},
		{tables.OrderStatusPlaced, tables.OrderStatusDelivered, false},
		{tables.OrderStatusPaid, tables.OrderStatusShipped, true},
		{tables.OrderStatusPaid, tables.OrderStatusCancelled, true},
		{tables.OrderStatusPaid, tables.OrderStatusPlaced, false},
		{tables.OrderStatusShipped, tables.OrderStatusDelivered, true},
		{tables.OrderStatusShipped, tables.OrderStatusCancelled, false},
		{tables.OrderStatusDelivered, tables.OrderStatusPlaced, false},
		{tables.OrderStatusCancelled, tables.OrderStatusPaid, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsValidStatusTransition(tt.from, tt.to),
			"%s -> %s", tt.from, tt.to)
	}
}

func TestApplyOrderUpdate(t *testing.T) {
	order := &tables.Order{Status: tables.OrderStatusPlaced}

	paid := tables.OrderStatusPaid
	receiptID := int64(7)

	ApplyOrderUpdate(order, &structs.OrderUpdate{Status: &paid})
	assert.Equal(t, tables.OrderStatusPaid, order.Status)
	assert.Nil(t, order.ReceiptID)

	ApplyOrderUpdate(order, &structs.OrderUpdate{ReceiptID: &receiptID})
	assert.Equal(t, tables.OrderStatusPaid, order.Status)
	assert.Equal(t, int64(7), *order.ReceiptID)

	// Empty update changes nothing
	ApplyOrderUpdate(order, &structs.OrderUpdate{})
	assert.Equal(t, tables.OrderStatusPaid, order.Status)
	assert.Equal(t, int64(7), *order.ReceiptID)
}
