package middleware

import (
	"project/backend/config"
	"project/backend/utils"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware проверяет подписанный токен из cookie admin_token
// и кладет идентичность вызывающего в контекст запроса
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(utils.AuthCookieName)
		if token == "" {
			return utils.Unauthorized(c, "No token provided")
		}

		claims, err := utils.ParseAdminToken(token, cfg)
		if err != nil {
			return utils.Unauthorized(c, "Invalid token")
		}

		c.Locals("claims", claims)
		return c.Next()
	}
}

// RequireRoles пропускает только перечисленные роли
func RequireRoles(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := c.Locals("claims").(*utils.AuthClaims)
		if !ok {
			return utils.Unauthorized(c, "No token provided")
		}

		for _, role := range roles {
			if claims.Role == role {
				return c.Next()
			}
		}
		return utils.Forbidden(c, "Insufficient role")
	}
}

// GetClaims достает идентичность из контекста запроса
func GetClaims(c *fiber.Ctx) *utils.AuthClaims {
	claims, _ := c.Locals("claims").(*utils.AuthClaims)
	return claims
}
