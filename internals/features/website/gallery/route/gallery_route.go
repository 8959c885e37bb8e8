// internals/features/website/gallery/route/gallery_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolsite_backend/internals/crud"
	galleryDTO "schoolsite_backend/internals/features/website/gallery/dto"
	galleryModel "schoolsite_backend/internals/features/website/gallery/model"
	authMW "schoolsite_backend/internals/middlewares/auth"
)

func GalleryRoutes(api fiber.Router, db *gorm.DB) {
	ctl := crud.NewController(db, crud.Resource[galleryModel.GalleryModel]{
		Singular: "Image",
		OrderBy:  "created_at DESC",
		ParseCreate: func(c *fiber.Ctx) (*galleryModel.GalleryModel, error) {
			req, err := crud.DecodeBody[galleryDTO.CreateGalleryRequest](c)
			if err != nil {
				return nil, err
			}
			return req.ToModel(), nil
		},
		ApplyUpdate: func(c *fiber.Ctx, m *galleryModel.GalleryModel) error {
			req, err := crud.DecodeBody[galleryDTO.UpdateGalleryRequest](c)
			if err != nil {
				return err
			}
			req.ApplyToModel(m)
			return nil
		},
		Response: func(m *galleryModel.GalleryModel) any { return galleryDTO.NewGalleryResponse(m) },
	})

	r := api.Group("/gallery")
	r.Get("/", ctl.List)
	r.Get("/:id", ctl.GetByID)
	r.Post("/", authMW.RequireAdmin(), ctl.Create)
	r.Put("/:id", authMW.RequireAdmin(), ctl.Update)
	r.Delete("/:id", authMW.RequireAdmin(), ctl.Delete)
}
