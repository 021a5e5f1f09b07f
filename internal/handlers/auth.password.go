package handlers

import (
	"context"
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v3"
	"github.com/joshuarp/passhash-api/internal/domain/vo"
)

type AuthPasswordService interface {
	ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error
}

type AuthPasswordHandler struct {
	service AuthPasswordService
	logger  *slog.Logger
}

type authPasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

func NewAuthPasswordHandler(service AuthPasswordService, logger *slog.Logger) *AuthPasswordHandler {
	return &AuthPasswordHandler{service: service, logger: logger}
}

func (h *AuthPasswordHandler) Register(router fiber.Router) {
	router.Put("/auth/password", h.Handle)
}

func (h *AuthPasswordHandler) Handle(c fiber.Ctx) error {
	userID, ok := c.Locals("user_id").(string)
	if !ok || userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "missing authenticated user",
		})
	}

	var requestBody authPasswordRequest
	if err := c.Bind().JSON(&requestBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	err := h.service.ChangePassword(c.Context(), userID, requestBody.CurrentPassword, requestBody.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, vo.ErrWeakPassword):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		case errors.Is(err, vo.ErrInvalidCredentials):
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "current password is incorrect",
			})
		}

		h.logger.Error("failed to change password", "user_id", userID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "internal server error",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
