package helpers

import (
	"github.com/gookit/validate"
	"github.com/volatiletech/null"

	"fintrack/models"
)

type CreateCategoryParams struct {
	Name string `json:"name" form:"name" validate:"required|maxLen:100"`
}

func (p CreateCategoryParams) Messages() map[string]string {
	return validate.MS{
		"required": "account.category.invalid_name",
		"maxLen":   "account.category.name_too_long",
	}
}

func (p CreateCategoryParams) BuildCategory(user *models.User) *models.Category {
	return &models.Category{
		Name:   p.Name,
		UserID: null.Uint64From(user.ID),
	}
}

type UpdateCategoryParams struct {
	Name string `json:"name" form:"name" validate:"required|maxLen:100"`
}

func (p UpdateCategoryParams) Messages() map[string]string {
	return validate.MS{
		"required": "account.category.invalid_name",
		"maxLen":   "account.category.name_too_long",
	}
}
