// internals/features/website/news/route/news_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolsite_backend/internals/crud"
	newsDTO "schoolsite_backend/internals/features/website/news/dto"
	newsModel "schoolsite_backend/internals/features/website/news/model"
	authMW "schoolsite_backend/internals/middlewares/auth"
)

func NewsRoutes(api fiber.Router, db *gorm.DB) {
	ctl := crud.NewController(db, crud.Resource[newsModel.NewsModel]{
		Singular: "News",
		OrderBy:  "created_at DESC",
		ParseCreate: func(c *fiber.Ctx) (*newsModel.NewsModel, error) {
			req, err := crud.DecodeBody[newsDTO.CreateNewsRequest](c)
			if err != nil {
				return nil, err
			}
			return req.ToModel(), nil
		},
		ApplyUpdate: func(c *fiber.Ctx, m *newsModel.NewsModel) error {
			req, err := crud.DecodeBody[newsDTO.UpdateNewsRequest](c)
			if err != nil {
				return err
			}
			req.ApplyToModel(m)
			return nil
		},
		Response: func(m *newsModel.NewsModel) any { return newsDTO.NewNewsResponse(m) },
	})

	r := api.Group("/news")
	r.Get("/", ctl.List)
	r.Get("/:id", ctl.GetByID)
	r.Post("/", authMW.RequireAdmin(), ctl.Create)
	r.Put("/:id", authMW.RequireAdmin(), ctl.Update)
	r.Delete("/:id", authMW.RequireAdmin(), ctl.Delete)
}
