// internals/features/website/alumni/route/alumni_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolsite_backend/internals/crud"
	alumniDTO "schoolsite_backend/internals/features/website/alumni/dto"
	alumniModel "schoolsite_backend/internals/features/website/alumni/model"
	authMW "schoolsite_backend/internals/middlewares/auth"
)

func AlumniRoutes(api fiber.Router, db *gorm.DB) {
	ctl := crud.NewController(db, crud.Resource[alumniModel.AlumniModel]{
		Singular: "Alumni",
		OrderBy:  "created_at DESC",
		ParseCreate: func(c *fiber.Ctx) (*alumniModel.AlumniModel, error) {
			req, err := crud.DecodeBody[alumniDTO.CreateAlumniRequest](c)
			if err != nil {
				return nil, err
			}
			return req.ToModel(), nil
		},
		ApplyUpdate: func(c *fiber.Ctx, m *alumniModel.AlumniModel) error {
			req, err := crud.DecodeBody[alumniDTO.UpdateAlumniRequest](c)
			if err != nil {
				return err
			}
			req.ApplyToModel(m)
			return nil
		},
		Response: func(m *alumniModel.AlumniModel) any { return alumniDTO.NewAlumniResponse(m) },
	})

	r := api.Group("/alumni")
	r.Get("/", ctl.List)
	r.Get("/:id", ctl.GetByID)
	r.Post("/", authMW.RequireAdmin(), ctl.Create)
	r.Put("/:id", authMW.RequireAdmin(), ctl.Update)
	r.Delete("/:id", authMW.RequireAdmin(), ctl.Delete)
}
