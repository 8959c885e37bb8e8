// internals/crud/controller.go
package crud

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "schoolsite_backend/internals/helpers"
)

// Resource configures one content type for the shared CRUD controller.
// The nine site resources are identical except for their schema, sort order
// and a couple of hooks, so they all run through this one implementation.
type Resource[M any] struct {
	// Singular label used in messages, e.g. "News" → "News not found".
	Singular string

	// OrderBy is the List clause, e.g. "created_at DESC" or "year DESC".
	// Empty means storage order (staff keeps insertion order).
	OrderBy string

	// ParseCreate decodes and validates the create body and builds the row
	// to insert. Required fields are enforced here; id and created_at are
	// always server-assigned.
	ParseCreate func(c *fiber.Ctx) (*M, error)

	// ApplyUpdate decodes the partial update body and applies only the
	// allow-listed fields onto the stored row. Server-managed fields are
	// unreachable from the request by construction.
	ApplyUpdate func(c *fiber.Ctx, m *M) error

	// Response externalizes a row to its wire representation.
	Response func(m *M) any

	// BeforeCreate runs inside the create path before the insert, e.g. the
	// stat-key uniqueness check. Optional.
	BeforeCreate func(db *gorm.DB, m *M) error

	// ConflictMessage is returned on a unique violation. Optional.
	ConflictMessage string
}

type Controller[M any] struct {
	DB  *gorm.DB
	Res Resource[M]
}

func NewController[M any](db *gorm.DB, res Resource[M]) *Controller[M] {
	return &Controller[M]{DB: db, Res: res}
}

// ===================== LIST =====================
// GET /
func (h *Controller[M]) List(c *fiber.Ctx) error {
	tx := h.DB
	if h.Res.OrderBy != "" {
		tx = tx.Order(h.Res.OrderBy)
	}

	var rows []M
	if err := tx.Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	out := make([]any, 0, len(rows))
	for i := range rows {
		out = append(out, h.Res.Response(&rows[i]))
	}
	return helper.JsonOK(c, out)
}

// ===================== GET ONE =====================
// GET /:id
func (h *Controller[M]) GetByID(c *fiber.Ctx) error {
	m, err := h.findByID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, h.Res.Response(m))
}

// ===================== CREATE =====================
// POST /
func (h *Controller[M]) Create(c *fiber.Ctx) error {
	m, err := h.Res.ParseCreate(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	if h.Res.BeforeCreate != nil {
		if err := h.Res.BeforeCreate(h.DB, m); err != nil {
			return helper.FromFiberError(c, err)
		}
	}

	if err := h.DB.Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusConflict, h.conflictMessage())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return helper.JsonCreated(c, h.Res.Response(m))
}

// ===================== UPDATE =====================
// PUT /:id
func (h *Controller[M]) Update(c *fiber.Ctx) error {
	m, err := h.findByID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	if err := h.Res.ApplyUpdate(c, m); err != nil {
		return helper.FromFiberError(c, err)
	}

	if err := h.DB.Save(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusConflict, h.conflictMessage())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return helper.JsonOK(c, h.Res.Response(m))
}

// ===================== DELETE =====================
// DELETE /:id
func (h *Controller[M]) Delete(c *fiber.Ctx) error {
	m, err := h.findByID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	if err := h.DB.Delete(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return helper.JsonMessage(c, fiber.StatusOK, fmt.Sprintf("%s deleted successfully", h.Res.Singular))
}

func (h *Controller[M]) findByID(c *fiber.Ctx) (*M, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return nil, fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("%s not found", h.Res.Singular))
	}

	m := new(M)
	if err := h.DB.First(m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("%s not found", h.Res.Singular))
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Internal server error")
	}
	return m, nil
}

func (h *Controller[M]) conflictMessage() string {
	if h.Res.ConflictMessage != "" {
		return h.Res.ConflictMessage
	}
	return fmt.Sprintf("%s already exists", h.Res.Singular)
}
