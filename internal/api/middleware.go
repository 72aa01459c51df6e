package api

import "github.com/gofiber/fiber/v2"

const (
	unlockCookieName   = "cyclewise_unlock"
	languageCookieName = "cyclewise_lang"
	contextLanguageKey = "current_language"
	contextMessagesKey = "current_messages"
)

func currentMessages(c *fiber.Ctx) map[string]string {
	messages, _ := c.Locals(contextMessagesKey).(map[string]string)
	return messages
}
