package service

import (
	"errors"

	"go-inventory-api/internal/apperr"
	"go-inventory-api/internal/model"
	"go-inventory-api/internal/repository"
	"go-inventory-api/internal/ws"
	"go-inventory-api/pkg/validator"

	"gorm.io/gorm"
)

// ListFilter narrows List to items matching exactly one field. When more
// than one is set, precedence is name, then category, then availability;
// the rest are ignored.
type ListFilter struct {
	Name      *string
	Category  *string
	Available *bool
}

type InventoryService interface {
	Create(req *model.InventoryRequest) (*model.Inventory, error)
	Get(id uint) (*model.Inventory, error)
	List(filter ListFilter) ([]model.Inventory, error)
	Update(id uint, req *model.InventoryRequest) (*model.Inventory, error)
	Delete(id uint) error
	Purchase(id uint) (*model.Inventory, error)
	RestockStatus(id uint) (*model.RestockStatus, error)
}

type inventoryService struct {
	repo repository.InventoryRepository
	db   *gorm.DB
	hub  *ws.Hub
}

func NewInventoryService(repo repository.InventoryRepository, db *gorm.DB, hub *ws.Hub) InventoryService {
	return &inventoryService{
		repo: repo,
		db:   db,
		hub:  hub,
	}
}

func validateRequest(req *model.InventoryRequest) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return apperr.Validation("Invalid Inventory: %s", errs[0].Message())
	}
	return nil
}

func (s *inventoryService) Create(req *model.InventoryRequest) (*model.Inventory, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	// Pre-insert duplicate check. The unique index remains the backstop
	// for two concurrent creates racing past this lookup.
	existing, err := s.repo.FindBySKU(req.SKU)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Persistence(err)
	}
	if existing != nil {
		return nil, apperr.Conflict("Inventory with sku '%s' already exists", req.SKU)
	}

	inv := &model.Inventory{}
	req.Apply(inv)

	if err := s.repo.Create(inv); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("Inventory with sku '%s' already exists", req.SKU)
		}
		return nil, apperr.Persistence(err)
	}

	s.hub.Publish("created", inv)
	return inv, nil
}

func (s *inventoryService) Get(id uint) (*model.Inventory, error) {
	inv, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Inventory with id '%d' was not found", id)
		}
		return nil, apperr.Persistence(err)
	}
	return inv, nil
}

func (s *inventoryService) List(filter ListFilter) ([]model.Inventory, error) {
	var (
		items []model.Inventory
		err   error
	)
	switch {
	case filter.Name != nil:
		items, err = s.repo.FindByName(*filter.Name)
	case filter.Category != nil:
		items, err = s.repo.FindByCategory(*filter.Category)
	case filter.Available != nil:
		items, err = s.repo.FindByAvailability(*filter.Available)
	default:
		items, err = s.repo.FindAll()
	}
	if err != nil {
		return nil, apperr.Persistence(err)
	}
	if items == nil {
		items = []model.Inventory{}
	}
	return items, nil
}

// Update replaces the mutable fields of an existing item. The lookup
// runs before body validation, so an unknown id reports 404 even when
// the request body is also invalid.
func (s *inventoryService) Update(id uint, req *model.InventoryRequest) (*model.Inventory, error) {
	inv, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if err := validateRequest(req); err != nil {
		return nil, err
	}

	// The new SKU must not belong to a different row.
	existing, err := s.repo.FindBySKU(req.SKU)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Persistence(err)
	}
	if existing != nil && existing.ID != inv.ID {
		return nil, apperr.Conflict("Inventory with sku '%s' already exists", req.SKU)
	}

	req.Apply(inv)

	if err := s.repo.Update(inv); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("Inventory with sku '%s' already exists", req.SKU)
		}
		if errors.Is(err, gorm.ErrPrimaryKeyRequired) {
			return nil, apperr.Validation("Update called with empty id field")
		}
		return nil, apperr.Persistence(err)
	}

	s.hub.Publish("updated", inv)
	return inv, nil
}

// Delete removes the item if it still exists. Deleting an id that was
// never created, or was already deleted, succeeds without effect.
func (s *inventoryService) Delete(id uint) error {
	inv, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return apperr.Persistence(err)
	}

	if err := s.repo.Delete(inv); err != nil {
		return apperr.Persistence(err)
	}

	s.hub.Publish("deleted", inv)
	return nil
}

// Purchase flips available to false. The read-check-write runs in one
// database transaction.
func (s *inventoryService) Purchase(id uint) (*model.Inventory, error) {
	var purchased *model.Inventory

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var inv model.Inventory
		if err := tx.First(&inv, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("Inventory with id '%d' was not found", id)
			}
			return apperr.Persistence(err)
		}

		if !inv.Available {
			return apperr.Conflict("Inventory with id '%d' is not available for purchase", id)
		}

		inv.Available = false
		if err := tx.Save(&inv).Error; err != nil {
			return apperr.Persistence(err)
		}

		purchased = &inv
		return nil
	})
	if err != nil {
		var appErr *apperr.Error
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		return nil, apperr.Persistence(err)
	}

	s.hub.Publish("purchased", purchased)
	return purchased, nil
}

func (s *inventoryService) RestockStatus(id uint) (*model.RestockStatus, error) {
	inv, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	return &model.RestockStatus{
		ID:           inv.ID,
		Quantity:     inv.Quantity,
		RestockLevel: inv.RestockLevel,
		StockStatus:  inv.StockStatus(),
	}, nil
}
