package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/cyclewise/internal/services"
)

func (handler *Handler) LockStatus(c *fiber.Ctx) error {
	locked, err := handler.lock.IsLocked()
	if err != nil {
		return handler.serviceError(c, err)
	}
	return c.JSON(fiber.Map{"passcode_set": locked})
}

// Unlock exchanges the passcode for a short-lived token. Failed attempts
// are rate limited per client address.
func (handler *Handler) Unlock(c *fiber.Ctx) error {
	now := handler.now()
	limiterKey := requestLimiterKey(c)
	if handler.unlockLimiter.blocked(limiterKey, now) {
		return apiError(c, fiber.StatusTooManyRequests, "error.too_many_attempts")
	}

	payload := passcodePayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "error.invalid_input")
	}

	token, expiresAt, err := handler.lock.Unlock(payload.Passcode, now)
	if err != nil {
		if errors.Is(err, services.ErrInvalidPasscode) {
			handler.unlockLimiter.recordFailure(limiterKey, now)
		}
		return handler.serviceError(c, err)
	}
	handler.unlockLimiter.reset(limiterKey)

	handler.setUnlockCookie(c, token, expiresAt)
	return c.JSON(fiber.Map{
		"token":      token,
		"expires_at": expiresAt.UTC().Format(time.RFC3339),
	})
}

// SetPasscode invalidates every earlier unlock token. The caller gets a
// fresh one so the current session stays open.
func (handler *Handler) SetPasscode(c *fiber.Ctx) error {
	payload := passcodePayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "error.invalid_input")
	}
	if err := handler.lock.SetPasscode(payload.Passcode); err != nil {
		return handler.serviceError(c, err)
	}

	token, expiresAt, err := handler.lock.Unlock(payload.Passcode, handler.now())
	if err != nil {
		return handler.serviceError(c, err)
	}
	handler.setUnlockCookie(c, token, expiresAt)
	return c.JSON(fiber.Map{
		"token":      token,
		"expires_at": expiresAt.UTC().Format(time.RFC3339),
	})
}

func (handler *Handler) ClearPasscode(c *fiber.Ctx) error {
	if err := handler.lock.ClearPasscode(); err != nil {
		return handler.serviceError(c, err)
	}
	handler.clearUnlockCookie(c)
	return c.SendStatus(fiber.StatusNoContent)
}
