// internals/crud/decode.go
package crud

import (
	"github.com/gofiber/fiber/v2"

	helper "schoolsite_backend/internals/helpers"
)

// DecodeBody parses the JSON body into R and runs its validate tags.
// String fields are trimmed before validation, so whitespace-only input
// cannot satisfy "required". Failures come back as 400 *fiber.Error values.
func DecodeBody[R any](c *fiber.Ctx) (*R, error) {
	req := new(R)
	if err := c.BodyParser(req); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	helper.TrimStrings(req)
	if err := helper.ValidateStruct(req); err != nil {
		return nil, err
	}
	return req, nil
}
