package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/cyclewise/internal/services"
)

func (handler *Handler) GetCyclePhase(c *fiber.Ctx) error {
	today, err := handler.requestToday(c)
	if err != nil {
		return handler.serviceError(c, err)
	}
	overview, err := handler.insights.Overview(today)
	if err != nil {
		return handler.serviceError(c, err)
	}
	return c.JSON(overview)
}

func (handler *Handler) GetInsights(c *fiber.Ctx) error {
	today, err := handler.requestToday(c)
	if err != nil {
		return handler.serviceError(c, err)
	}
	insights, err := handler.insights.Insights(today)
	if err != nil {
		return handler.serviceError(c, err)
	}
	return c.JSON(fiber.Map{
		"date":     services.FormatDay(today),
		"insights": insights,
	})
}

// GetBlueprint answers 200 with "available": false until enough days are
// logged. Sparse history is not an error.
func (handler *Handler) GetBlueprint(c *fiber.Ctx) error {
	blueprint, err := handler.insights.Blueprint()
	if err != nil {
		return handler.serviceError(c, err)
	}
	return c.JSON(fiber.Map{
		"available": blueprint != nil,
		"blueprint": blueprint,
	})
}

func (handler *Handler) GetDashboard(c *fiber.Ctx) error {
	today, err := handler.requestToday(c)
	if err != nil {
		return handler.serviceError(c, err)
	}
	dashboard, err := handler.insights.Dashboard(today)
	if err != nil {
		return handler.serviceError(c, err)
	}
	return c.JSON(dashboard)
}
