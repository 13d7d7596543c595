package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/seodap/teacher-api/internal/utils"
)

// TeacherGate returns a middleware that validates the shared teacher access
// key. The key arrives either as a bearer token or in X-Teacher-Key. When no
// key is configured the gate is open.
func TeacherGate(accessKey string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if accessKey == "" {
			return c.Next()
		}

		presented := gateKeyFromRequest(c)
		if presented == "" {
			return utils.SendError(c, fiber.StatusUnauthorized, "teacher access key missing")
		}

		if subtle.ConstantTimeCompare([]byte(presented), []byte(accessKey)) != 1 {
			return utils.SendError(c, fiber.StatusUnauthorized, "invalid teacher access key")
		}

		return c.Next()
	}
}

func gateKeyFromRequest(c *fiber.Ctx) string {
	authorization := strings.TrimSpace(c.Get("Authorization"))
	const bearer = "Bearer "
	if len(authorization) > len(bearer) && strings.EqualFold(authorization[:len(bearer)], bearer) {
		return strings.TrimSpace(authorization[len(bearer):])
	}

	return strings.TrimSpace(c.Get("X-Teacher-Key"))
}
