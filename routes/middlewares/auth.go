package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"fintrack/controllers/auth"
	"fintrack/models"
)

var (
	AuthzInvalidSession = "authz.invalid_session"
	JwtDecodeAndVerify  = "jwt.decode_and_verify"
	ServerInternalError = "server.internal_error"
)

func Authenticate(c *fiber.Ctx) error {
	token := c.Get("Authorization")

	if len(token) == 0 {
		return c.Status(401).JSON(fiber.Map{
			"errors": []string{AuthzInvalidSession},
		})
	}

	token = strings.Replace(token, "Bearer ", "", -1)

	claims, err := auth.ParseToken(token, auth.TokenAccess)
	if err != nil {
		return c.Status(422).JSON(fiber.Map{
			"errors": []string{JwtDecodeAndVerify},
		})
	}

	user, err := models.FindUserByID(claims.UID)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{
			"errors": []string{AuthzInvalidSession},
		})
	}

	c.Locals("CurrentUser", user)

	return c.Next()
}
