// internals/features/website/stats/route/school_stat_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolsite_backend/internals/crud"
	statsDTO "schoolsite_backend/internals/features/website/stats/dto"
	statsModel "schoolsite_backend/internals/features/website/stats/model"
	authMW "schoolsite_backend/internals/middlewares/auth"
)

func SchoolStatRoutes(api fiber.Router, db *gorm.DB) {
	ctl := crud.NewController(db, crud.Resource[statsModel.SchoolStatModel]{
		Singular:        "Stat",
		ConflictMessage: "Stat key already exists",
		ParseCreate: func(c *fiber.Ctx) (*statsModel.SchoolStatModel, error) {
			req, err := crud.DecodeBody[statsDTO.CreateSchoolStatRequest](c)
			if err != nil {
				return nil, err
			}
			return req.ToModel(), nil
		},
		ApplyUpdate: func(c *fiber.Ctx, m *statsModel.SchoolStatModel) error {
			req, err := crud.DecodeBody[statsDTO.UpdateSchoolStatRequest](c)
			if err != nil {
				return err
			}
			req.ApplyToModel(m)
			return nil
		},
		Response: func(m *statsModel.SchoolStatModel) any { return statsDTO.NewSchoolStatResponse(m) },
		// stat_key is globally unique; checked up front so the caller gets a
		// clean 409 instead of a driver error
		BeforeCreate: func(db *gorm.DB, m *statsModel.SchoolStatModel) error {
			var count int64
			if err := db.Model(&statsModel.SchoolStatModel{}).
				Where("stat_key = ?", m.StatKey).
				Count(&count).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Internal server error")
			}
			if count > 0 {
				return fiber.NewError(fiber.StatusConflict, "Stat key already exists")
			}
			return nil
		},
	})

	r := api.Group("/stats")
	r.Get("/", ctl.List)
	r.Get("/:id", ctl.GetByID)
	r.Post("/", authMW.RequireAdmin(), ctl.Create)
	r.Put("/:id", authMW.RequireAdmin(), ctl.Update)
	r.Delete("/:id", authMW.RequireAdmin(), ctl.Delete)
}
