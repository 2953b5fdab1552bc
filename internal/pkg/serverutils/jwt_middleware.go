package serverutils

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// TokenChecker reports whether a token id has been revoked (logout).
type TokenChecker interface {
	IsRevoked(tokenId string) bool
}

// NewJwtMiddleware builds the bearer-token guard. The checker may be nil,
// in which case only signature and expiry are verified.
func NewJwtMiddleware(checker TokenChecker) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		authHeader := ctx.Get("Authorization")
		if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Missing token"})
		}
		tokenStr := authHeader[7:]

		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			return []byte(os.Getenv("JWT_SECRET")), nil
		})

		if err != nil || !token.Valid {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid token"})
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid claims"})
		}

		if checker != nil {
			if jti, ok := claims["jti"].(string); ok && checker.IsRevoked(jti) {
				return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Token revoked"})
			}
		}

		ctx.Locals("user_id", claims["user_id"])
		ctx.Locals("token_id", claims["jti"])
		return ctx.Next()
	}
}
