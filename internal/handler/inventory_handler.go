package handler

import (
	"fmt"
	"strconv"
	"strings"

	"go-inventory-api/internal/apperr"
	"go-inventory-api/internal/model"
	"go-inventory-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type InventoryHandler struct {
	service service.InventoryService
}

func NewInventoryHandler(s service.InventoryService) *InventoryHandler {
	return &InventoryHandler{service: s}
}

// requireJSON rejects body-carrying requests whose Content-Type is not
// exactly application/json before the body is ever read. Parameters such
// as a charset count as a mismatch.
func requireJSON(c *fiber.Ctx) error {
	if c.Get(fiber.HeaderContentType) != fiber.MIMEApplicationJSON {
		return apperr.UnsupportedMedia("Content-Type must be %s", fiber.MIMEApplicationJSON)
	}
	return nil
}

func parseID(c *fiber.Ctx) (uint, error) {
	raw := c.Params("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, apperr.Validation("Invalid inventory id '%s'", raw)
	}
	return uint(id), nil
}

// parseAvailable reads bool-ish query values: "true", "yes" and "1"
// (case-insensitive) mean available, anything else means unavailable.
func parseAvailable(value string) bool {
	switch strings.ToLower(value) {
	case "true", "yes", "1":
		return true
	default:
		return false
	}
}

func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	if err := requireJSON(c); err != nil {
		return err
	}

	var req model.InventoryRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("Invalid Inventory: body of request contained bad or no data")
	}

	inv, err := h.service.Create(&req)
	if err != nil {
		return err
	}

	c.Location(fmt.Sprintf("/inventory/%d", inv.ID))
	return c.Status(fiber.StatusCreated).JSON(inv)
}

func (h *InventoryHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	inv, err := h.service.Get(id)
	if err != nil {
		return err
	}
	return c.JSON(inv)
}

// List returns all items, optionally narrowed by one of the name,
// category or available query parameters. Only the highest-precedence
// filter present is honored; the rest are ignored.
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	var filter service.ListFilter

	queries := c.Queries()
	if name, ok := queries["name"]; ok {
		filter.Name = &name
	} else if category, ok := queries["category"]; ok {
		filter.Category = &category
	} else if raw, ok := queries["available"]; ok {
		available := parseAvailable(raw)
		filter.Available = &available
	}

	items, err := h.service.List(filter)
	if err != nil {
		return err
	}
	return c.JSON(items)
}

func (h *InventoryHandler) Update(c *fiber.Ctx) error {
	// Content type is checked before the id is parsed: a request that
	// never carried JSON is rejected 415 even when the id is malformed.
	if err := requireJSON(c); err != nil {
		return err
	}

	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req model.InventoryRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("Invalid Inventory: body of request contained bad or no data")
	}

	inv, err := h.service.Update(id, &req)
	if err != nil {
		return err
	}
	return c.JSON(inv)
}

func (h *InventoryHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *InventoryHandler) Purchase(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	inv, err := h.service.Purchase(id)
	if err != nil {
		return err
	}
	return c.JSON(inv)
}

func (h *InventoryHandler) RestockStatus(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	status, err := h.service.RestockStatus(id)
	if err != nil {
		return err
	}
	return c.JSON(status)
}
