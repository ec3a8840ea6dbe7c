package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"fintrack/controllers/auth"
	"fintrack/controllers/entities"
	"fintrack/controllers/helpers"
	"fintrack/models"
)

func GetCategories(c *fiber.Ctx) error {
	CurrentUser := auth.GetCurrentUser(c)

	if CurrentUser == nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"jwt.decode_and_verify"},
		})
	}

	categories_json := make([]entities.CategoryEntity, 0)
	for _, category := range models.VisibleCategories(CurrentUser.ID) {
		categories_json = append(categories_json, category.ToJSON())
	}

	return c.Status(200).JSON(categories_json)
}

func CreateCategory(c *fiber.Ctx) error {
	CurrentUser := auth.GetCurrentUser(c)

	if CurrentUser == nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"jwt.decode_and_verify"},
		})
	}

	err_src := new(helpers.Errors)
	payload := new(helpers.CreateCategoryParams)

	if err := c.BodyParser(payload); err != nil {
		c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_message_body"},
		})

		return err
	}

	helpers.Vaildate(payload, err_src)
	if err_src.Size() > 0 {
		return c.Status(422).JSON(err_src)
	}

	category := payload.BuildCategory(CurrentUser)
	if err := models.CreateCategory(category); err != nil {
		if errors.Is(err, models.ErrDuplicateCategory) {
			return c.Status(422).JSON(helpers.Errors{
				Errors: []string{"account.category.duplicate_name"},
			})
		}
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.internal_error"},
		})
	}

	return c.Status(201).JSON(category.ToJSON())
}

func UpdateCategory(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"account.category.invalid_id"},
		})
	}

	CurrentUser := auth.GetCurrentUser(c)

	if CurrentUser == nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"jwt.decode_and_verify"},
		})
	}

	err_src := new(helpers.Errors)
	payload := new(helpers.UpdateCategoryParams)

	if err := c.BodyParser(payload); err != nil {
		c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_message_body"},
		})

		return err
	}

	helpers.Vaildate(payload, err_src)
	if err_src.Size() > 0 {
		return c.Status(422).JSON(err_src)
	}

	category, err := models.UpdateCategory(uint64(id), CurrentUser.ID, payload.Name)
	if err != nil {
		return categoryErrorResponse(c, err)
	}

	return c.Status(200).JSON(category.ToJSON())
}

func DeleteCategory(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"account.category.invalid_id"},
		})
	}

	CurrentUser := auth.GetCurrentUser(c)

	if CurrentUser == nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"jwt.decode_and_verify"},
		})
	}

	if err := models.DeleteCategory(uint64(id), CurrentUser.ID); err != nil {
		return categoryErrorResponse(c, err)
	}

	return c.SendStatus(204)
}

func categoryErrorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, models.ErrGlobalCategory):
		return c.Status(403).JSON(helpers.Errors{
			Errors: []string{"account.category.global_read_only"},
		})
	case errors.Is(err, models.ErrDuplicateCategory):
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"account.category.duplicate_name"},
		})
	case errors.Is(err, models.ErrNotFound):
		return c.Status(404).JSON(helpers.Errors{
			Errors: []string{"account.category.doesnt_exist"},
		})
	default:
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.internal_error"},
		})
	}
}
