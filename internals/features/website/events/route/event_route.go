// internals/features/website/events/route/event_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolsite_backend/internals/crud"
	eventDTO "schoolsite_backend/internals/features/website/events/dto"
	eventModel "schoolsite_backend/internals/features/website/events/model"
	authMW "schoolsite_backend/internals/middlewares/auth"
)

func EventRoutes(api fiber.Router, db *gorm.DB) {
	ctl := crud.NewController(db, crud.Resource[eventModel.EventModel]{
		Singular: "Event",
		OrderBy:  "created_at DESC",
		ParseCreate: func(c *fiber.Ctx) (*eventModel.EventModel, error) {
			req, err := crud.DecodeBody[eventDTO.CreateEventRequest](c)
			if err != nil {
				return nil, err
			}
			return req.ToModel(), nil
		},
		ApplyUpdate: func(c *fiber.Ctx, m *eventModel.EventModel) error {
			req, err := crud.DecodeBody[eventDTO.UpdateEventRequest](c)
			if err != nil {
				return err
			}
			req.ApplyToModel(m)
			return nil
		},
		Response: func(m *eventModel.EventModel) any { return eventDTO.NewEventResponse(m) },
	})

	r := api.Group("/events")
	r.Get("/", ctl.List)
	r.Get("/:id", ctl.GetByID)
	r.Post("/", authMW.RequireAdmin(), ctl.Create)
	r.Put("/:id", authMW.RequireAdmin(), ctl.Update)
	r.Delete("/:id", authMW.RequireAdmin(), ctl.Delete)
}
