package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/lang/:lang", handler.SetLanguage)
	registerAPIRoutes(app, handler)
}

func registerAPIRoutes(app *fiber.App, handler *Handler) {
	api := app.Group("/api")

	lock := api.Group("/lock")
	lock.Get("/status", handler.LockStatus)
	lock.Post("/unlock", handler.Unlock)
	lock.Put("/passcode", handler.LockRequired, handler.SetPasscode)
	lock.Delete("/passcode", handler.LockRequired, handler.ClearPasscode)

	profile := api.Group("/profile", handler.LockRequired)
	profile.Get("", handler.GetProfile)
	profile.Put("", handler.SaveProfile)
	profile.Delete("", handler.DeleteProfile)

	cycle := api.Group("/cycle", handler.LockRequired)
	cycle.Get("/phase", handler.GetCyclePhase)
	cycle.Get("/entries", handler.ListCycleEntries)
	cycle.Get("/entries/:date", handler.GetCycleEntry)
	cycle.Put("/entries/:date", handler.UpsertCycleEntry)
	cycle.Delete("/entries/:date", handler.DeleteCycleEntry)

	api.Get("/insights", handler.LockRequired, handler.GetInsights)
	api.Get("/blueprint", handler.LockRequired, handler.GetBlueprint)
	api.Get("/dashboard", handler.LockRequired, handler.GetDashboard)

	logs := api.Group("/logs", handler.LockRequired)
	logs.Get("", handler.ListSymptomLogs)
	logs.Get("/:date", handler.GetSymptomLog)
	logs.Put("/:date", handler.UpsertSymptomLog)
	logs.Delete("/:date", handler.DeleteSymptomLog)

	journal := api.Group("/journal", handler.LockRequired)
	journal.Get("", handler.ListJournalEntries)
	journal.Post("", handler.CreateJournalEntry)
	journal.Get("/prompt", handler.GetJournalPrompt)
	journal.Delete("/:id", handler.DeleteJournalEntry)

	export := api.Group("/export", handler.LockRequired)
	export.Get("/json", handler.ExportJSON)
	export.Get("/csv", handler.ExportCSV)
	export.Get("/xlsx", handler.ExportXLSX)
}
