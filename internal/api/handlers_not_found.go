package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) NotFound(c *fiber.Ctx) error {
	return apiError(c, fiber.StatusNotFound, "error.not_found")
}
