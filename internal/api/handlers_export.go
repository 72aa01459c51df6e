package api

import (
	"bytes"
	"encoding/json"

	"github.com/gofiber/fiber/v2"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func (handler *Handler) ExportJSON(c *fiber.Ctx) error {
	payload, now, err := handler.exportPayload(c)
	if err != nil {
		return handler.serviceError(c, err)
	}

	serialized, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return handler.serviceError(c, err)
	}

	setExportAttachmentHeaders(c, fiber.MIMEApplicationJSON, buildExportFilename(now, "json"))
	return c.Send(serialized)
}

func (handler *Handler) ExportCSV(c *fiber.Ctx) error {
	payload, now, err := handler.exportPayload(c)
	if err != nil {
		return handler.serviceError(c, err)
	}

	var output bytes.Buffer
	if err := handler.export.WriteCSV(&output, payload); err != nil {
		return handler.serviceError(c, err)
	}

	setExportAttachmentHeaders(c, "text/csv; charset=utf-8", buildExportFilename(now, "csv"))
	return c.Send(output.Bytes())
}

func (handler *Handler) ExportXLSX(c *fiber.Ctx) error {
	payload, now, err := handler.exportPayload(c)
	if err != nil {
		return handler.serviceError(c, err)
	}

	var output bytes.Buffer
	if err := handler.export.WriteXLSX(&output, payload); err != nil {
		return handler.serviceError(c, err)
	}

	setExportAttachmentHeaders(c, xlsxContentType, buildExportFilename(now, "xlsx"))
	return c.Send(output.Bytes())
}
