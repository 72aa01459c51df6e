package api

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

const languageCookieTTL = 365 * 24 * time.Hour

// LanguageMiddleware stores the request language and its messages in locals.
// A supported cyclewise_lang cookie wins over Accept-Language; a missing or
// unsupported cookie is replaced with the detected language.
func (handler *Handler) LanguageMiddleware(c *fiber.Ctx) error {
	language, stored := handler.requestLanguage(c)
	if !stored {
		handler.setLanguageCookie(c, language)
	}

	c.Locals(contextLanguageKey, language)
	c.Locals(contextMessagesKey, handler.i18n.Messages(language))
	c.Set(fiber.HeaderContentLanguage, language)
	return c.Next()
}

// SetLanguage pins the language cookie. Unknown codes fall back to the
// default language.
func (handler *Handler) SetLanguage(c *fiber.Ctx) error {
	language := handler.i18n.NormalizeLanguage(c.Params("lang"))
	handler.setLanguageCookie(c, language)
	c.Set(fiber.HeaderContentLanguage, language)
	return c.JSON(fiber.Map{
		"language":  language,
		"supported": handler.i18n.SupportedLanguages(),
	})
}

func (handler *Handler) requestLanguage(c *fiber.Ctx) (string, bool) {
	if raw := c.Cookies(languageCookieName); handler.i18n.Supports(raw) {
		language := handler.i18n.NormalizeLanguage(raw)
		return language, language == strings.TrimSpace(raw)
	}
	return handler.i18n.DetectFromAcceptLanguage(c.Get(fiber.HeaderAcceptLanguage)), false
}

func (handler *Handler) setLanguageCookie(c *fiber.Ctx, language string) {
	c.Cookie(&fiber.Cookie{
		Name:     languageCookieName,
		Value:    language,
		Path:     "/",
		Secure:   handler.cookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
		Expires:  handler.now().Add(languageCookieTTL),
	})
}
