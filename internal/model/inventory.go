package model

import "time"

// Stock status values derived from quantity vs restock_level.
const (
	StockStatusUndefined    = "undefined"
	StockStatusSufficient   = "stock sufficient"
	StockStatusInsufficient = "stock insufficient"
)

// Inventory represents a single stocked product. SKU is unique across the
// whole table; the database constraint is the final authority on that.
type Inventory struct {
	ID          uint     `gorm:"primaryKey" json:"id"`
	Name        string   `gorm:"type:varchar(100);not null" json:"name" validate:"required"`
	Category    string   `gorm:"type:varchar(50)" json:"category"`
	Description string   `gorm:"type:text" json:"description"`
	SKU         string   `gorm:"type:varchar(50);uniqueIndex;not null" json:"sku" validate:"required"`
	Quantity    int      `gorm:"not null;default:0" json:"quantity"`
	Price       *float64 `gorm:"type:decimal(10,2)" json:"price"`
	// Default true is applied when the request omits the field; the column
	// itself carries no default so an explicit false survives the insert.
	Available bool `gorm:"not null" json:"available"`

	// Threshold below which the item counts as understocked. Nil means the
	// threshold was never set and the status is undefined.
	RestockLevel *int `json:"restock_level"`

	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	LastUpdated time.Time `gorm:"column:last_updated;autoUpdateTime" json:"last_updated"`
}

// StockStatus compares quantity against the restock level.
func (inv *Inventory) StockStatus() string {
	if inv.RestockLevel == nil {
		return StockStatusUndefined
	}
	if inv.Quantity >= *inv.RestockLevel {
		return StockStatusSufficient
	}
	return StockStatusInsufficient
}

// InventoryRequest is the request body for create and update. Optional
// fields are pointers so "absent" and "zero" stay distinguishable.
type InventoryRequest struct {
	Name         string   `json:"name" validate:"required"`
	SKU          string   `json:"sku" validate:"required"`
	Quantity     *int     `json:"quantity" validate:"required,gte=0"`
	Category     *string  `json:"category"`
	Description  *string  `json:"description"`
	Price        *float64 `json:"price" validate:"omitempty,gte=0"`
	Available    *bool    `json:"available"`
	RestockLevel *int     `json:"restock_level" validate:"omitempty,gte=0"`
}

// Apply copies the request onto an entity. Absent optional fields reset to
// their defaults, so update acts as a full replace of mutable fields.
func (r *InventoryRequest) Apply(inv *Inventory) {
	inv.Name = r.Name
	inv.SKU = r.SKU
	inv.Quantity = *r.Quantity
	inv.Price = r.Price
	inv.RestockLevel = r.RestockLevel

	inv.Category = ""
	if r.Category != nil {
		inv.Category = *r.Category
	}
	inv.Description = ""
	if r.Description != nil {
		inv.Description = *r.Description
	}
	inv.Available = true
	if r.Available != nil {
		inv.Available = *r.Available
	}
}

// RestockStatus is the response body for the restock-status endpoint.
type RestockStatus struct {
	ID           uint   `json:"id"`
	Quantity     int    `json:"quantity"`
	RestockLevel *int   `json:"restock_level"`
	StockStatus  string `json:"stock_status"`
}
