package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

func NewHandler(deps Dependencies) *Handler {
	location := deps.Location
	if location == nil {
		location = time.UTC
	}
	log := deps.Log
	if log == nil {
		log = logrus.StandardLogger()
	}

	return &Handler{
		profiles:      deps.Profiles,
		symptomLogs:   deps.SymptomLogs,
		entries:       deps.Entries,
		journal:       deps.Journal,
		insights:      deps.Insights,
		lock:          deps.Lock,
		export:        deps.Export,
		i18n:          deps.I18n,
		location:      location,
		log:           log,
		cookieSecure:  deps.CookieSecure,
		unlockLimiter: newAttemptLimiter(unlockAttemptLimit, unlockAttemptWindow),
		now:           time.Now,
	}
}

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
