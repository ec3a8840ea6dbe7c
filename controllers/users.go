package controllers

import (
	"github.com/gofiber/fiber/v2"

	"fintrack/config"
	"fintrack/controllers/auth"
	"fintrack/controllers/helpers"
)

func GetMe(c *fiber.Ctx) error {
	CurrentUser := auth.GetCurrentUser(c)

	if CurrentUser == nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"jwt.decode_and_verify"},
		})
	}

	return c.Status(200).JSON(CurrentUser.ToJSON())
}

// UpdateMe edits the profile. The payload type has no balance field, so a
// client sending one gets it silently dropped: balance is derived from the
// ledger only.
func UpdateMe(c *fiber.Ctx) error {
	CurrentUser := auth.GetCurrentUser(c)

	if CurrentUser == nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"jwt.decode_and_verify"},
		})
	}

	errors := new(helpers.Errors)
	payload := new(helpers.UpdateUserParams)

	if err := c.BodyParser(payload); err != nil {
		c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_message_body"},
		})

		return err
	}

	columns := payload.Apply(CurrentUser, errors)
	if errors.Size() > 0 {
		return c.Status(422).JSON(errors)
	}

	if len(columns) > 0 {
		// Selective column update keeps the cached balance out of the write.
		if err := config.DataBase.Model(CurrentUser).Updates(columns).Error; err != nil {
			return c.Status(500).JSON(helpers.Errors{
				Errors: []string{"server.internal_error"},
			})
		}
	}

	return c.Status(200).JSON(CurrentUser.ToJSON())
}
