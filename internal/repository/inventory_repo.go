package repository

import (
	"go-inventory-api/internal/model"

	"gorm.io/gorm"
)

type InventoryRepository interface {
	Create(inv *model.Inventory) error
	FindAll() ([]model.Inventory, error)
	FindByID(id uint) (*model.Inventory, error)
	FindBySKU(sku string) (*model.Inventory, error)
	FindByName(name string) ([]model.Inventory, error)
	FindByCategory(category string) ([]model.Inventory, error)
	FindByAvailability(available bool) ([]model.Inventory, error)
	Update(inv *model.Inventory) error
	Delete(inv *model.Inventory) error
}

type inventoryRepo struct {
	db *gorm.DB
}

func NewInventoryRepo(db *gorm.DB) InventoryRepository {
	return &inventoryRepo{db}
}

// Create persists a new record inside its own transaction. A failed
// insert rolls back and leaves nothing behind.
func (r *inventoryRepo) Create(inv *model.Inventory) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(inv).Error
	})
}

func (r *inventoryRepo) FindAll() ([]model.Inventory, error) {
	var items []model.Inventory
	err := r.db.Find(&items).Error
	return items, err
}

func (r *inventoryRepo) FindByID(id uint) (*model.Inventory, error) {
	var inv model.Inventory
	err := r.db.First(&inv, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *inventoryRepo) FindBySKU(sku string) (*model.Inventory, error) {
	var inv model.Inventory
	err := r.db.First(&inv, "sku = ?", sku).Error
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *inventoryRepo) FindByName(name string) ([]model.Inventory, error) {
	var items []model.Inventory
	err := r.db.Find(&items, "name = ?", name).Error
	return items, err
}

func (r *inventoryRepo) FindByCategory(category string) ([]model.Inventory, error) {
	var items []model.Inventory
	err := r.db.Find(&items, "category = ?", category).Error
	return items, err
}

func (r *inventoryRepo) FindByAvailability(available bool) ([]model.Inventory, error) {
	var items []model.Inventory
	err := r.db.Find(&items, "available = ?", available).Error
	return items, err
}

// Update saves every field of an existing record. Saving an entity that
// was never assigned an id would insert a new row, so that is rejected.
func (r *inventoryRepo) Update(inv *model.Inventory) error {
	if inv.ID == 0 {
		return gorm.ErrPrimaryKeyRequired
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Save(inv).Error
	})
}

// Delete removes the record. Deleting a row that is already gone is not
// an error, so the operation stays idempotent.
func (r *inventoryRepo) Delete(inv *model.Inventory) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Delete(inv).Error
	})
}
