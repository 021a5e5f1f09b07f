package handlers

import (
	"context"
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v3"
	"github.com/joshuarp/passhash-api/internal/domain/vo"
)

type AuthRegisterService interface {
	Register(ctx context.Context, email, password string) (vo.Registration, error)
}

type AuthRegisterHandler struct {
	service AuthRegisterService
	logger  *slog.Logger
}

type authRegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func NewAuthRegisterHandler(service AuthRegisterService, logger *slog.Logger) *AuthRegisterHandler {
	return &AuthRegisterHandler{service: service, logger: logger}
}

func (h *AuthRegisterHandler) Register(router fiber.Router) {
	router.Post("/auth/register", h.Handle)
}

func (h *AuthRegisterHandler) Handle(c fiber.Ctx) error {
	var requestBody authRegisterRequest
	if err := c.Bind().JSON(&requestBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	registration, err := h.service.Register(c.Context(), requestBody.Email, requestBody.Password)
	if err != nil {
		switch {
		case errors.Is(err, vo.ErrInvalidEmail), errors.Is(err, vo.ErrWeakPassword):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		case errors.Is(err, vo.ErrEmailTaken):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "email already registered",
			})
		}

		h.logger.Error("failed to register", "email", requestBody.Email, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "internal server error",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(registration)
}
