// internals/features/website/testimonials/route/testimonial_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolsite_backend/internals/crud"
	testimonialDTO "schoolsite_backend/internals/features/website/testimonials/dto"
	testimonialModel "schoolsite_backend/internals/features/website/testimonials/model"
	authMW "schoolsite_backend/internals/middlewares/auth"
)

func TestimonialRoutes(api fiber.Router, db *gorm.DB) {
	ctl := crud.NewController(db, crud.Resource[testimonialModel.TestimonialModel]{
		Singular: "Testimonial",
		OrderBy:  "created_at DESC",
		ParseCreate: func(c *fiber.Ctx) (*testimonialModel.TestimonialModel, error) {
			req, err := crud.DecodeBody[testimonialDTO.CreateTestimonialRequest](c)
			if err != nil {
				return nil, err
			}
			return req.ToModel(), nil
		},
		ApplyUpdate: func(c *fiber.Ctx, m *testimonialModel.TestimonialModel) error {
			req, err := crud.DecodeBody[testimonialDTO.UpdateTestimonialRequest](c)
			if err != nil {
				return err
			}
			req.ApplyToModel(m)
			return nil
		},
		Response: func(m *testimonialModel.TestimonialModel) any {
			return testimonialDTO.NewTestimonialResponse(m)
		},
	})

	r := api.Group("/testimonials")
	r.Get("/", ctl.List)
	r.Get("/:id", ctl.GetByID)
	r.Post("/", authMW.RequireAdmin(), ctl.Create)
	r.Put("/:id", authMW.RequireAdmin(), ctl.Update)
	r.Delete("/:id", authMW.RequireAdmin(), ctl.Delete)
}
