package serverutils

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const userIdLocalKey = "user_id"

// IdentityMiddleware resolves the caller from "Authorization: Bearer <token>".
// The token is a raw user id, or an HS256 JWT with a user_id claim when a secret
// is configured. Anything else leaves the request anonymous; it never rejects.
func IdentityMiddleware(jwtSecret string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if userId, ok := resolveIdentity(ctx.Get(fiber.HeaderAuthorization), jwtSecret); ok {
			ctx.Locals(userIdLocalKey, userId)
		}
		return ctx.Next()
	}
}

// UserIdFromContext returns nil for anonymous requests.
func UserIdFromContext(ctx *fiber.Ctx) *uuid.UUID {
	userId, ok := ctx.Locals(userIdLocalKey).(uuid.UUID)
	if !ok {
		return nil
	}
	return &userId
}

func resolveIdentity(header, jwtSecret string) (uuid.UUID, bool) {
	fields := strings.Fields(header)
	if len(fields) != 2 || !strings.EqualFold(fields[0], "bearer") {
		return uuid.Nil, false
	}
	token := fields[1]

	if id, err := uuid.Parse(token); err == nil {
		return id, true
	}
	if jwtSecret == "" {
		return uuid.Nil, false
	}

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		return []byte(jwtSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid {
		return uuid.Nil, false
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, false
	}
	raw, ok := claims["user_id"].(string)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
