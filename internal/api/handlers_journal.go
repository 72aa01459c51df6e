package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/cyclewise/internal/services"
)

func (handler *Handler) ListJournalEntries(c *fiber.Ctx) error {
	entries, err := handler.journal.List()
	if err != nil {
		return handler.serviceError(c, err)
	}

	response := make([]journalEntryResponse, 0, len(entries))
	for _, entry := range entries {
		response = append(response, newJournalEntryResponse(entry))
	}
	return c.JSON(response)
}

// CreateJournalEntry defaults the entry date to today when the body omits it.
func (handler *Handler) CreateJournalEntry(c *fiber.Ctx) error {
	payload := journalEntryPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "error.invalid_input")
	}
	if payload.Date == "" {
		today, err := handler.requestToday(c)
		if err != nil {
			return handler.serviceError(c, err)
		}
		payload.Date = services.FormatDay(today)
	}

	entry, err := handler.journal.Create(services.JournalEntryInput{
		Date:       payload.Date,
		Mood:       payload.Mood,
		Symptoms:   payload.Symptoms,
		Reflection: payload.Reflection,
	}, handler.now())
	if err != nil {
		return handler.serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(newJournalEntryResponse(entry))
}

func (handler *Handler) DeleteJournalEntry(c *fiber.Ctx) error {
	if err := handler.journal.Delete(c.Params("id")); err != nil {
		return handler.serviceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) GetJournalPrompt(c *fiber.Ctx) error {
	prompt, alert, err := handler.insights.JournalPrompt()
	if err != nil {
		return handler.serviceError(c, err)
	}
	response := fiber.Map{"prompt": prompt}
	if alert != "" {
		response["alert"] = alert
	}
	return c.JSON(response)
}
