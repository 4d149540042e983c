package utils

import (
	"project/backend/config"
	"project/backend/models"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// Имя cookie с токеном администратора
const AuthCookieName = "admin_token"

// Время жизни токена
const tokenTTL = 24 * time.Hour

// AuthClaims — идентичность, которую несет admin_token
type AuthClaims struct {
	UserID     uint   `json:"user_id"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	Department string `json:"department"`
}

// GenerateAdminToken подписывает JWT с данными администратора
func GenerateAdminToken(user *models.AdminUser, cfg *config.Config) (string, error) {
	claims := jwt.MapClaims{
		"user_id":    float64(user.ID),
		"email":      user.Email,
		"role":       user.Role,
		"department": user.Department,
		"exp":        time.Now().Add(tokenTTL).Unix(),
		"iat":        time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWTSecret))
}

// ParseAdminToken проверяет подпись и срок действия токена
func ParseAdminToken(tokenString string, cfg *config.Config) (*AuthClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
		}
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid token claims")
	}

	userIDFloat, ok := claims["user_id"].(float64)
	if !ok {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid user ID in token")
	}

	authClaims := &AuthClaims{UserID: uint(userIDFloat)}
	if email, ok := claims["email"].(string); ok {
		authClaims.Email = email
	}
	if role, ok := claims["role"].(string); ok {
		authClaims.Role = role
	}
	if department, ok := claims["department"].(string); ok {
		authClaims.Department = department
	}

	return authClaims, nil
}

// SetAuthCookie ставит HTTP-only cookie с токеном
func SetAuthCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     AuthCookieName,
		Value:    token,
		Expires:  time.Now().Add(tokenTTL),
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})
}

// ClearAuthCookie сбрасывает cookie при выходе
func ClearAuthCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     AuthCookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})
}

// IsGlobalRole сообщает, видит ли роль данные всех секций
func (ac *AuthClaims) IsGlobalRole() bool {
	return ac.Role == models.RoleAdmin || ac.Role == models.RoleSuperAdmin
}
