package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int           { return &v }
func strPtr(v string) *string     { return &v }
func boolPtr(v bool) *bool        { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestStockStatus(t *testing.T) {
	tests := []struct {
		name         string
		quantity     int
		restockLevel *int
		want         string
	}{
		{"no restock level set", 5, nil, StockStatusUndefined},
		{"quantity below level", 5, intPtr(10), StockStatusInsufficient},
		{"quantity equals level", 10, intPtr(10), StockStatusSufficient},
		{"quantity above level", 15, intPtr(10), StockStatusSufficient},
		{"zero quantity zero level", 0, intPtr(0), StockStatusSufficient},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := Inventory{Quantity: tt.quantity, RestockLevel: tt.restockLevel}
			assert.Equal(t, tt.want, inv.StockStatus())
		})
	}
}

func TestRequestApplyDefaults(t *testing.T) {
	req := InventoryRequest{
		Name:     "Widget",
		SKU:      "W-1",
		Quantity: intPtr(3),
	}

	var inv Inventory
	req.Apply(&inv)

	assert.Equal(t, "Widget", inv.Name)
	assert.Equal(t, "W-1", inv.SKU)
	assert.Equal(t, 3, inv.Quantity)
	assert.True(t, inv.Available, "available defaults to true")
	assert.Empty(t, inv.Category)
	assert.Empty(t, inv.Description)
	assert.Nil(t, inv.Price)
	assert.Nil(t, inv.RestockLevel)
}

func TestRequestApplyFullReplace(t *testing.T) {
	inv := Inventory{
		ID:           7,
		Name:         "Old",
		SKU:          "OLD-1",
		Quantity:     1,
		Category:     "tools",
		Description:  "old description",
		Price:        floatPtr(1.50),
		Available:    false,
		RestockLevel: intPtr(4),
	}

	req := InventoryRequest{
		Name:     "New",
		SKU:      "NEW-1",
		Quantity: intPtr(9),
	}
	req.Apply(&inv)

	// Absent optionals reset; the id is untouched.
	assert.Equal(t, uint(7), inv.ID)
	assert.Equal(t, "New", inv.Name)
	assert.Equal(t, "NEW-1", inv.SKU)
	assert.Equal(t, 9, inv.Quantity)
	assert.Empty(t, inv.Category)
	assert.Empty(t, inv.Description)
	assert.Nil(t, inv.Price)
	assert.True(t, inv.Available)
	assert.Nil(t, inv.RestockLevel)
}

func TestRequestApplyExplicitValues(t *testing.T) {
	req := InventoryRequest{
		Name:         "Gadget",
		SKU:          "G-1",
		Quantity:     intPtr(0),
		Category:     strPtr("gadgets"),
		Description:  strPtr("a gadget"),
		Price:        floatPtr(9.99),
		Available:    boolPtr(false),
		RestockLevel: intPtr(2),
	}

	var inv Inventory
	req.Apply(&inv)

	assert.Equal(t, 0, inv.Quantity)
	assert.Equal(t, "gadgets", inv.Category)
	assert.Equal(t, "a gadget", inv.Description)
	assert.Equal(t, 9.99, *inv.Price)
	assert.False(t, inv.Available)
	assert.Equal(t, 2, *inv.RestockLevel)
}
