package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/cyclewise/internal/services"
)

func (handler *Handler) ListCycleEntries(c *fiber.Ctx) error {
	from, to, err := services.ParseDateRange(c.Query("from"), c.Query("to"))
	if err != nil {
		return handler.serviceError(c, err)
	}
	entries, err := handler.entries.ListRange(from, to)
	if err != nil {
		return handler.serviceError(c, err)
	}

	response := make([]cycleEntryResponse, 0, len(entries))
	for _, entry := range entries {
		response = append(response, newCycleEntryResponse(entry))
	}
	return c.JSON(response)
}

func (handler *Handler) GetCycleEntry(c *fiber.Ctx) error {
	entry, err := handler.entries.Get(c.Params("date"))
	if err != nil {
		return handler.serviceError(c, err)
	}
	return c.JSON(newCycleEntryResponse(entry))
}

func (handler *Handler) UpsertCycleEntry(c *fiber.Ctx) error {
	payload := cycleEntryPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "error.invalid_input")
	}

	entry, err := handler.entries.Upsert(services.CycleEntryInput{
		Date:     c.Params("date"),
		Flow:     payload.Flow,
		Mood:     payload.Mood,
		Symptoms: payload.Symptoms,
		Notes:    payload.Notes,
	})
	if err != nil {
		return handler.serviceError(c, err)
	}
	return c.JSON(newCycleEntryResponse(entry))
}

func (handler *Handler) DeleteCycleEntry(c *fiber.Ctx) error {
	if err := handler.entries.Delete(c.Params("date")); err != nil {
		return handler.serviceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
