package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/volatiletech/null"
	"gorm.io/gorm"

	"fintrack/config"
	"fintrack/controllers/entities"
)

// Category groups transactions. A category without an owner is global: every
// user sees it, nobody can change or delete it through the API.
type Category struct {
	ID        uint64      `json:"id" gorm:"primaryKey"`
	Name      string      `json:"name" validate:"required"`
	UserID    null.Uint64 `json:"user_id"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

func (c *Category) Global() bool {
	return !c.UserID.Valid
}

func VisibleCategories(userID uint64) []Category {
	var categories []Category

	config.DataBase.Where("user_id = ? OR user_id IS NULL", userID).Order("name asc").Find(&categories)

	return categories
}

// FindVisibleCategory returns the category only if it is global or owned by
// the user. Anything else is indistinguishable from a missing row.
func FindVisibleCategory(tx *gorm.DB, id uint64, userID uint64) (*Category, error) {
	var category Category

	err := tx.Where("id = ? AND (user_id = ? OR user_id IS NULL)", id, userID).First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &category, nil
}

func categoryNameTaken(userID uint64, name string, excludeID uint64) bool {
	var count int64

	config.DataBase.Model(&Category{}).
		Where("user_id = ? AND name = ? AND id <> ?", userID, name, excludeID).
		Count(&count)

	return count > 0
}

func CreateCategory(category *Category) error {
	if categoryNameTaken(category.UserID.Uint64, category.Name, 0) {
		return ErrDuplicateCategory
	}

	return config.DataBase.Create(category).Error
}

func UpdateCategory(id uint64, userID uint64, name string) (*Category, error) {
	category, err := FindVisibleCategory(config.DataBase, id, userID)
	if err != nil {
		return nil, err
	}

	if category.Global() {
		return nil, ErrGlobalCategory
	}

	if categoryNameTaken(userID, name, category.ID) {
		return nil, ErrDuplicateCategory
	}

	category.Name = name
	if err := config.DataBase.Model(category).Update("name", name).Error; err != nil {
		return nil, err
	}

	return category, nil
}

// DeleteCategory removes a private category together with its transactions
// and recomputes the owner's balance, all inside one transaction.
func DeleteCategory(id uint64, userID uint64) error {
	err := config.DataBase.Transaction(func(tx *gorm.DB) error {
		var user User
		if err := Lock(tx).First(&user, "id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		category, err := FindVisibleCategory(tx, id, userID)
		if err != nil {
			return err
		}

		if category.Global() {
			return ErrGlobalCategory
		}

		if err := tx.Where("category_id = ? AND user_id = ?", category.ID, userID).Delete(&Transaction{}).Error; err != nil {
			return err
		}

		if err := tx.Delete(category).Error; err != nil {
			return err
		}

		if err := user.UpdateBalance(tx); err != nil {
			return fmt.Errorf("%w: %v", ErrRecomputation, err)
		}

		return nil
	})

	if err == nil {
		InvalidateAnalytics(userID)
	}

	return err
}

func (c *Category) ToJSON() entities.CategoryEntity {
	return entities.CategoryEntity{
		ID:     c.ID,
		Name:   c.Name,
		UserID: c.UserID,
		Global: c.Global(),
	}
}
