package serverutils

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// AnonymousUser is attributed to responses submitted without a token.
const AnonymousUser = "anonymous"

// IdentityMiddleware extracts the user_id claim from a bearer token when one
// is supplied. Surveys stay open to anonymous respondents, so a missing or
// invalid token never blocks the request; it only affects attribution on the
// stored response.
func IdentityMiddleware(ctx *fiber.Ctx) error {
	ctx.Locals("user_id", AnonymousUser)

	authHeader := ctx.Get("Authorization")
	if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
		return ctx.Next()
	}
	tokenStr := authHeader[7:]

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return ctx.Next()
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ctx.Next()
	}

	if userId, ok := claims["user_id"].(string); ok && userId != "" {
		ctx.Locals("user_id", userId)
	}
	return ctx.Next()
}
