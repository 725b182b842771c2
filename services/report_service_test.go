package services

import (
	"testing"
	"time"
	"unicode/utf8"

	"printdoot_server/structs/tables"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssembleReportRows(t *testing.T) {
	placedAt := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	orders := []*tables.Order{
		{
			OrderID:    "PRNTDT-AAA00001",
			ClerkID:    "clerk_1",
			TotalPrice: 1299,
			Status:     tables.OrderStatusPlaced,
			CreatedAt:  placedAt,
			Items: []*tables.OrderItem{
				{
					ProductID:              "PRNTDTMUG001",
					Quantity:               2,
					IndividualPrice:        250,
					UserCustomizationType:  tables.UserCustomizationText,
					UserCustomizationValue: "Happy Birthday",
				},
				{
					ProductID:             "PRNTDTTSH003",
					Quantity:              1,
					IndividualPrice:       799,
					UserCustomizationType: tables.UserCustomizationNone,
				},
			},
		},
		{
			OrderID:   "PRNTDT-AAA00002",
			ClerkID:   "clerk_unknown",
			Status:    tables.OrderStatusPaid,
			CreatedAt: placedAt.Add(time.Hour),
		},
	}

	users := map[string]*tables.User{
		"clerk_1": {ClerkID: "clerk_1", FirstName: "Asha", LastName: "Rau", Email: "asha@example.com"},
	}
	details := map[string]*tables.UserDetails{
		"clerk_1": {ClerkID: "clerk_1", City: "Pune"},
	}
	products := map[string]*tables.Product{
		"PRNTDTMUG001": {ProductID: "PRNTDTMUG001", Name: "Printed Mug"},
	}

	rows := AssembleReportRows(orders, users, details, products)
	require.Len(t, rows, 2)

	first := rows[0]
	assert.Equal(t, "PRNTDT-AAA00001", first.OrderID)
	assert.Equal(t, "Asha Rau", first.BuyerName)
	assert.Equal(t, "asha@example.com", first.BuyerEmail)
	assert.Equal(t, "Pune", first.BuyerCity)
	assert.Equal(t, int64(1299), first.TotalPrice)
	require.Len(t, first.Lines, 2)
	assert.Equal(t, "Printed Mug", first.Lines[0].ProductName)
	assert.Equal(t, "text: Happy Birthday", first.Lines[0].Customization)
	// Unknown product keeps its code, just without a name
	assert.Equal(t, "PRNTDTTSH003", first.Lines[1].ProductID)
	assert.Empty(t, first.Lines[1].ProductName)
	assert.Empty(t, first.Lines[1].Customization)

	// Missing user rows leave buyer fields blank instead of failing
	second := rows[1]
	assert.Empty(t, second.BuyerName)
	assert.Empty(t, second.Lines)
}

func TestCollectProductCodesDeduplicates(t *testing.T) {
	orders := []*tables.Order{
		{Items: []*tables.OrderItem{
			{ProductID: "PRNTDTMUG001"},
			{ProductID: "PRNTDTTSH003"},
		}},
		{Items: []*tables.OrderItem{
			{ProductID: "PRNTDTMUG001"},
		}},
	}

	assert.Equal(t, []string{"PRNTDTMUG001", "PRNTDTTSH003"}, collectProductCodes(orders))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "padded", truncate("  padded  ", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijkl", 10))

	// Multi-byte names must be cut on rune boundaries
	got := truncate("Geschäftsführung München", 12)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, "Geschäfts...", got)
}

func TestRenderReportPDF(t *testing.T) {
	rows := AssembleReportRows([]*tables.Order{
		{
			OrderID:   "PRNTDT-AAA00001",
			ClerkID:   "clerk_1",
			Status:    tables.OrderStatusPlaced,
			CreatedAt: time.Now(),
			Items: []*tables.OrderItem{
				{ProductID: "PRNTDTMUG001", Quantity: 1, IndividualPrice: 250},
			},
		},
	}, nil, nil, nil)

	pdfBytes, err := renderReportPDF(rows)
	require.NoError(t, err)
	assert.True(t, len(pdfBytes) > 0)
	assert.Equal(t, "%PDF", string(pdfBytes[:4]))
}
