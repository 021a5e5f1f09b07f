package handlers

import (
	"context"
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v3"
	"github.com/joshuarp/passhash-api/internal/domain/vo"
	sharedhash "github.com/joshuarp/passhash-api/internal/shared/hash"
)

type HashInspectService interface {
	Inspect(ctx context.Context, hashed string) (vo.HashInspection, error)
	Verify(ctx context.Context, hashed, candidate string) (vo.HashVerification, error)
}

// HashInspectHandler exposes read-only parsing and verification of bcrypt strings.
type HashInspectHandler struct {
	service HashInspectService
	logger  *slog.Logger
}

type hashInspectRequest struct {
	Hash string `json:"hash"`
}

type hashVerifyRequest struct {
	Hash     string `json:"hash"`
	Password string `json:"password"`
}

func NewHashInspectHandler(service HashInspectService, logger *slog.Logger) *HashInspectHandler {
	return &HashInspectHandler{service: service, logger: logger}
}

// Register mounts the routes. verifyMiddlewares run before Verify only.
func (h *HashInspectHandler) Register(router fiber.Router, verifyMiddlewares ...fiber.Handler) {
	router.Post("/hashes/inspect", h.Inspect)

	verifyChain := make([]any, 0, len(verifyMiddlewares)+1)
	for _, middleware := range verifyMiddlewares {
		verifyChain = append(verifyChain, middleware)
	}
	verifyChain = append(verifyChain, h.Verify)
	router.Post("/hashes/verify", verifyChain[0], verifyChain[1:]...)
}

func (h *HashInspectHandler) Inspect(c fiber.Ctx) error {
	var requestBody hashInspectRequest
	if err := c.Bind().JSON(&requestBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	inspection, err := h.service.Inspect(c.Context(), requestBody.Hash)
	if err != nil {
		return h.fail(c, "failed to inspect hash", err)
	}

	return c.Status(fiber.StatusOK).JSON(inspection)
}

func (h *HashInspectHandler) Verify(c fiber.Ctx) error {
	var requestBody hashVerifyRequest
	if err := c.Bind().JSON(&requestBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	verification, err := h.service.Verify(c.Context(), requestBody.Hash, requestBody.Password)
	if err != nil {
		return h.fail(c, "failed to verify hash", err)
	}

	return c.Status(fiber.StatusOK).JSON(verification)
}

func (h *HashInspectHandler) fail(c fiber.Ctx, message string, err error) error {
	var formatErr *sharedhash.FormatError
	if errors.As(err, &formatErr) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":  "invalid bcrypt hash",
			"reason": formatErr.Reason,
		})
	}
	if errors.Is(err, vo.ErrHashCostTooHigh) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":  "invalid bcrypt hash",
			"reason": err.Error(),
		})
	}

	h.logger.Error(message, "error", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "internal server error",
	})
}
