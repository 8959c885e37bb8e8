// internals/features/website/kcse/route/kcse_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolsite_backend/internals/crud"
	kcseDTO "schoolsite_backend/internals/features/website/kcse/dto"
	kcseModel "schoolsite_backend/internals/features/website/kcse/model"
	authMW "schoolsite_backend/internals/middlewares/auth"
)

func KcseRoutes(api fiber.Router, db *gorm.DB) {
	ctl := crud.NewController(db, crud.Resource[kcseModel.KcseResultModel]{
		Singular: "KCSE result",
		OrderBy:  "year DESC", // most recent exam year first
		ParseCreate: func(c *fiber.Ctx) (*kcseModel.KcseResultModel, error) {
			req, err := crud.DecodeBody[kcseDTO.CreateKcseResultRequest](c)
			if err != nil {
				return nil, err
			}
			return req.ToModel(), nil
		},
		ApplyUpdate: func(c *fiber.Ctx, m *kcseModel.KcseResultModel) error {
			req, err := crud.DecodeBody[kcseDTO.UpdateKcseResultRequest](c)
			if err != nil {
				return err
			}
			req.ApplyToModel(m)
			return nil
		},
		Response: func(m *kcseModel.KcseResultModel) any { return kcseDTO.NewKcseResultResponse(m) },
	})

	r := api.Group("/kcse")
	r.Get("/", ctl.List)
	r.Get("/:id", ctl.GetByID)
	r.Post("/", authMW.RequireAdmin(), ctl.Create)
	r.Put("/:id", authMW.RequireAdmin(), ctl.Update)
	r.Delete("/:id", authMW.RequireAdmin(), ctl.Delete)
}
