package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v3"
	sharedjwt "github.com/joshuarp/passhash-api/internal/shared/jwt"
)

// PublicRoute identifies a route that bypasses bearer authentication.
type PublicRoute struct {
	Method string
	Suffix string
}

// AuthPublicRoutes are reachable without a token.
var AuthPublicRoutes = []PublicRoute{
	{Method: fiber.MethodPost, Suffix: "/auth/login"},
	{Method: fiber.MethodPost, Suffix: "/auth/register"},
}

func NewHTTPJWTMiddleware(tokenManager sharedjwt.TokenManager, publicRoutes ...PublicRoute) fiber.Handler {
	return func(c fiber.Ctx) error {
		if isPublicRoute(c, publicRoutes) {
			return c.Next()
		}

		authorizationHeader := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
		parts := strings.SplitN(authorizationHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "missing or invalid authorization header",
			})
		}

		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "missing bearer token",
			})
		}

		claims, err := tokenManager.Verify(c.Context(), tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid token",
			})
		}

		c.Locals("user_id", claims.Subject)
		c.Locals("jwt_claims", claims)
		return c.Next()
	}
}

func isPublicRoute(c fiber.Ctx, publicRoutes []PublicRoute) bool {
	path := strings.TrimRight(c.Path(), "/")
	for _, route := range publicRoutes {
		if c.Method() == route.Method && strings.HasSuffix(path, route.Suffix) {
			return true
		}
	}
	return false
}
