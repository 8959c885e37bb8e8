// internals/features/website/staff/route/staff_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolsite_backend/internals/crud"
	staffDTO "schoolsite_backend/internals/features/website/staff/dto"
	staffModel "schoolsite_backend/internals/features/website/staff/model"
	authMW "schoolsite_backend/internals/middlewares/auth"
)

func StaffRoutes(api fiber.Router, db *gorm.DB) {
	ctl := crud.NewController(db, crud.Resource[staffModel.StaffModel]{
		Singular: "Staff member",
		// no defined order: the directory keeps insertion order
		ParseCreate: func(c *fiber.Ctx) (*staffModel.StaffModel, error) {
			req, err := crud.DecodeBody[staffDTO.CreateStaffRequest](c)
			if err != nil {
				return nil, err
			}
			return req.ToModel(), nil
		},
		ApplyUpdate: func(c *fiber.Ctx, m *staffModel.StaffModel) error {
			req, err := crud.DecodeBody[staffDTO.UpdateStaffRequest](c)
			if err != nil {
				return err
			}
			req.ApplyToModel(m)
			return nil
		},
		Response: func(m *staffModel.StaffModel) any { return staffDTO.NewStaffResponse(m) },
	})

	r := api.Group("/staff")
	r.Get("/", ctl.List)
	r.Get("/:id", ctl.GetByID)
	r.Post("/", authMW.RequireAdmin(), ctl.Create)
	r.Put("/:id", authMW.RequireAdmin(), ctl.Update)
	r.Delete("/:id", authMW.RequireAdmin(), ctl.Delete)
}
