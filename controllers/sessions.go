package controllers

import (
	"github.com/gofiber/fiber/v2"

	"fintrack/controllers/auth"
	"fintrack/controllers/entities"
	"fintrack/controllers/helpers"
	"fintrack/models"
)

func Register(c *fiber.Ctx) error {
	errors := new(helpers.Errors)
	payload := new(helpers.RegisterParams)

	if err := c.BodyParser(payload); err != nil {
		c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_message_body"},
		})

		return err
	}

	helpers.Vaildate(payload, errors)
	if errors.Size() > 0 {
		return c.Status(422).JSON(errors)
	}

	user := payload.CreateUser(errors)
	if errors.Size() > 0 {
		return c.Status(422).JSON(errors)
	}

	access, refresh, err := auth.GenerateTokenPair(user)
	if err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.internal_error"},
		})
	}

	return c.Status(201).JSON(entities.TokenEntity{
		Access:  access,
		Refresh: refresh,
		User:    user.ToJSON(),
	})
}

func Login(c *fiber.Ctx) error {
	errors := new(helpers.Errors)
	payload := new(helpers.LoginParams)

	if err := c.BodyParser(payload); err != nil {
		c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_message_body"},
		})

		return err
	}

	helpers.Vaildate(payload, errors)
	if errors.Size() > 0 {
		return c.Status(422).JSON(errors)
	}

	user, err := models.FindUserByLogin(payload.Username)
	if err != nil || !user.CheckPassword(payload.Password) {
		return c.Status(401).JSON(helpers.Errors{
			Errors: []string{"account.session.invalid_credentials"},
		})
	}

	access, refresh, err := auth.GenerateTokenPair(user)
	if err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.internal_error"},
		})
	}

	user.TouchLastLogin()

	return c.Status(200).JSON(entities.TokenEntity{
		Access:  access,
		Refresh: refresh,
		User:    user.ToJSON(),
	})
}

func RefreshToken(c *fiber.Ctx) error {
	errors := new(helpers.Errors)
	payload := new(helpers.RefreshParams)

	if err := c.BodyParser(payload); err != nil {
		c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_message_body"},
		})

		return err
	}

	helpers.Vaildate(payload, errors)
	if errors.Size() > 0 {
		return c.Status(422).JSON(errors)
	}

	claims, err := auth.ParseToken(payload.Refresh, auth.TokenRefresh)
	if err != nil {
		return c.Status(401).JSON(helpers.Errors{
			Errors: []string{"account.session.invalid_refresh_token"},
		})
	}

	user, err := models.FindUserByID(claims.UID)
	if err != nil {
		return c.Status(401).JSON(helpers.Errors{
			Errors: []string{"account.session.invalid_refresh_token"},
		})
	}

	access, refresh, err := auth.GenerateTokenPair(user)
	if err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.internal_error"},
		})
	}

	return c.Status(200).JSON(entities.TokenEntity{
		Access:  access,
		Refresh: refresh,
		User:    user.ToJSON(),
	})
}
