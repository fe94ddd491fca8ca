package server

import (
	"errors"

	"inkwell/internal/models"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten marks that a handler helper already wrote the HTTP
// response; the caller just returns it up to Fiber (err handled, body sent).
var errResponseWritten = errors.New("response already written")

// parseID reads a numeric route parameter. A value that is not a plain
// positive integer gets a 400 straight away, before any lookup; a
// well-formed id that matches nothing is the handler's 404 to give.
func parseID(c *fiber.Ctx, param string) (uint, error) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewMalformedIDError(param))
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// currentUserID returns the authenticated caller's id. Routes behind
// LoginRequired always have it set.
func currentUserID(c *fiber.Ctx) uint {
	id, _ := c.Locals("userID").(uint)
	return id
}

// respondServiceError translates a service-layer error into the right
// status code and writes the response.
func respondServiceError(c *fiber.Ctx, err error) error {
	return models.RespondError(c, err)
}
