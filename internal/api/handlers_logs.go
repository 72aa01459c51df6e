package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/cyclewise/internal/services"
)

func (handler *Handler) ListSymptomLogs(c *fiber.Ctx) error {
	from, to, err := services.ParseDateRange(c.Query("from"), c.Query("to"))
	if err != nil {
		return handler.serviceError(c, err)
	}
	logs, err := handler.symptomLogs.ListRange(from, to)
	if err != nil {
		return handler.serviceError(c, err)
	}

	response := make([]symptomLogResponse, 0, len(logs))
	for _, entry := range logs {
		response = append(response, newSymptomLogResponse(entry))
	}
	return c.JSON(response)
}

func (handler *Handler) GetSymptomLog(c *fiber.Ctx) error {
	entry, err := handler.symptomLogs.Get(c.Params("date"))
	if err != nil {
		return handler.serviceError(c, err)
	}
	return c.JSON(newSymptomLogResponse(entry))
}

// UpsertSymptomLog takes the date from the path; one log exists per day.
func (handler *Handler) UpsertSymptomLog(c *fiber.Ctx) error {
	payload := symptomLogPayload{SleepQuality: 3}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "error.invalid_input")
	}

	entry, err := handler.symptomLogs.Upsert(services.SymptomLogInput{
		Date:         c.Params("date"),
		Cramps:       payload.Cramps,
		Fatigue:      payload.Fatigue,
		MoodSwings:   payload.MoodSwings,
		SleepQuality: payload.SleepQuality,
		Bloating:     payload.Bloating,
		Headache:     payload.Headache,
		Notes:        payload.Notes,
	})
	if err != nil {
		return handler.serviceError(c, err)
	}
	return c.JSON(newSymptomLogResponse(entry))
}

func (handler *Handler) DeleteSymptomLog(c *fiber.Ctx) error {
	if err := handler.symptomLogs.Delete(c.Params("date")); err != nil {
		return handler.serviceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
