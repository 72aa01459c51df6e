package api

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// LockRequired lets requests through while no passcode is set. Once a
// passcode exists every request needs an unlock token, sent either as a
// Bearer header or in the unlock cookie.
func (handler *Handler) LockRequired(c *fiber.Ctx) error {
	if err := handler.lock.Authorize(unlockTokenFromRequest(c), handler.now()); err != nil {
		return handler.serviceError(c, err)
	}
	return c.Next()
}

func unlockTokenFromRequest(c *fiber.Ctx) string {
	header := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if len(header) > len("Bearer ") && strings.EqualFold(header[:len("Bearer ")], "Bearer ") {
		return strings.TrimSpace(header[len("Bearer "):])
	}
	return strings.TrimSpace(c.Cookies(unlockCookieName))
}

func (handler *Handler) setUnlockCookie(c *fiber.Ctx, token string, expiresAt time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     unlockCookieName,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Strict",
		Expires:  expiresAt,
	})
}

func (handler *Handler) clearUnlockCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     unlockCookieName,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Strict",
		Expires:  time.Unix(0, 0),
	})
}
