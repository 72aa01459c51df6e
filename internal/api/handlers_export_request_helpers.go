package api

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/cyclewise/internal/services"
)

func (handler *Handler) exportPayload(c *fiber.Ctx) (services.ExportPayload, time.Time, error) {
	from, to, err := services.ParseDateRange(c.Query("from"), c.Query("to"))
	if err != nil {
		return services.ExportPayload{}, time.Time{}, err
	}
	now := handler.now().In(handler.location)
	payload, err := handler.export.BuildPayload(from, to, now)
	if err != nil {
		return services.ExportPayload{}, time.Time{}, err
	}
	return payload, now, nil
}

func buildExportFilename(now time.Time, extension string) string {
	return fmt.Sprintf("cyclewise-export-%s.%s", now.Format("2006-01-02"), extension)
}

func setExportAttachmentHeaders(c *fiber.Ctx, contentType string, filename string) {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", filename))
}
