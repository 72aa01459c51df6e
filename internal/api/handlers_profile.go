package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/cyclewise/internal/services"
)

func (handler *Handler) GetProfile(c *fiber.Ctx) error {
	profile, err := handler.profiles.Get()
	if err != nil {
		return handler.serviceError(c, err)
	}
	return c.JSON(newProfileResponse(profile))
}

// SaveProfile replaces the stored profile; it serves both onboarding and
// later edits.
func (handler *Handler) SaveProfile(c *fiber.Ctx) error {
	payload := profilePayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "error.invalid_input")
	}

	profile, err := handler.profiles.Save(services.CycleProfileInput{
		LastPeriodDate: payload.LastPeriodDate,
		CycleLength:    payload.CycleLength,
		PeriodLength:   payload.PeriodLength,
	})
	if err != nil {
		return handler.serviceError(c, err)
	}
	return c.JSON(newProfileResponse(profile))
}

func (handler *Handler) DeleteProfile(c *fiber.Ctx) error {
	if err := handler.profiles.Delete(); err != nil {
		return handler.serviceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
