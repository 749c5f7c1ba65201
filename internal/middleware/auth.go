// Package middleware provides the authentication layer in front of the
// gateway core. It resolves each request to an opaque caller principal and
// stores it in the request context; the core itself never parses tokens.
package middleware

import (
	"log"
	"strings"

	"paygate/internal/config"
	"paygate/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	// ClaimsKey and AccountKey are the fiber locals set for downstream
	// handlers.
	ClaimsKey  = "claims"
	AccountKey = "account"
)

// Auth validates the request identity and stores the caller principal.
// Two schemes are accepted:
//   - "Authorization: Bearer <jwt>", an HS256 token carrying the account
//     claim, issued by the operator seed tool or an upstream wallet.
//   - "X-API-Key: <key>", checked against the bcrypt hash in
//     OPERATOR_API_KEY_HASH; a match authenticates the operator account.
func Auth(c *fiber.Ctx) error {
	if apiKey := c.Get("X-API-Key"); apiKey != "" {
		hash := config.GetEnv("OPERATOR_API_KEY_HASH", "")
		if hash == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "api key auth not configured"})
		}
		if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(apiKey)); err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid api key"})
		}
		c.Locals(AccountKey, config.GetEnv("OPERATOR_ACCOUNT", ""))
		return c.Next()
	}

	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing authorization header"})
	}
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid authorization format"})
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")

	token, err := jwt.ParseWithClaims(tokenString, &models.PrincipalClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(config.GetEnv("JWT_SECRET", "paygate-dev-secret")), nil
	})
	if err != nil {
		log.Printf("token validation error: %v", err)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid token"})
	}

	claims, ok := token.Claims.(*models.PrincipalClaims)
	if !ok || !token.Valid || claims.Account == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid claims"})
	}

	c.Locals(ClaimsKey, claims)
	c.Locals(AccountKey, claims.Account)
	return c.Next()
}

// Caller returns the authenticated principal stored by Auth.
func Caller(c *fiber.Ctx) string {
	account, _ := c.Locals(AccountKey).(string)
	return account
}
