package services

import (
	"testing"

	"printdoot_server/lib"
	"printdoot_server/structs"
	"printdoot_server/structs/tables"

	"github.com/stretchr/testify/assert"
)

func TestApplyProductUpdate(t *testing.T) {
	product := &tables.Product{
		ProductID: "PRNTDTMUG001",
		Name:      "Plain Mug",
		Price:     250,
		Status:    tables.ProductStatusInStock,
	}

	name := "Printed Mug"
	price := int64(300)
	status := tables.ProductStatusOutOfStock

	ApplyProductUpdate(product, &structs.ProductUpdate{
		Name:   &name,
		Price:  &price,
		Status: &status,
	})

	assert.Equal(t, "Printed Mug", product.Name)
	assert.Equal(t, int64(300), product.Price)
	assert.Equal(t, tables.ProductStatusOutOfStock, product.Status)
	// Untouched fields keep their values
	assert.Equal(t, "PRNTDTMUG001", product.ProductID)

	// Empty update is a no-op
	before := *product
	ApplyProductUpdate(product, &structs.ProductUpdate{})
	assert.Equal(t, before.Name, product.Name)
	assert.Equal(t, before.Price, product.Price)

	// Explicit empty options clear the product-level schema
	empty := map[string][]string{}
	ApplyProductUpdate(product, &structs.ProductUpdate{CustomizationOptions: &empty})
	assert.Empty(t, product.CustomizationOptions)
	assert.NotNil(t, product.CustomizationOptions)
}

func TestValidateProductCustomizations(t *testing.T) {
	category := &tables.Category{
		Name: "Mugs",
		AllowedCustomizations: map[string][]string{
			"color": {"red", "blue"},
		},
	}

	t.Run("subset of category schema passes", func(t *testing.T) {
		err := validateProductCustomizations(map[string][]string{
			"color": {"red"},
		}, category)
		assert.NoError(t, err)
	})

	t.Run("unknown key rejected", func(t *testing.T) {
		err := validateProductCustomizations(map[string][]string{
			"material": {"ceramic"},
		}, category)

		var ic *lib.InvalidCustomizationError
		assert.ErrorAs(t, err, &ic)
		assert.Len(t, ic.Violations, 1)
	})

	t.Run("value outside category set rejected", func(t *testing.T) {
		err := validateProductCustomizations(map[string][]string{
			"color": {"red", "green"},
		}, category)

		var ic *lib.InvalidCustomizationError
		assert.ErrorAs(t, err, &ic)
		assert.Equal(t, "green", ic.Violations[0].Value)
	})

	t.Run("category without schema rejects any options", func(t *testing.T) {
		bare := &tables.Category{Name: "Stickers"}
		err := validateProductCustomizations(map[string][]string{
			"color": {"red"},
		}, bare)
		assert.Error(t, err)
		assert.True(t, lib.IsClientError(err))
	})
}
