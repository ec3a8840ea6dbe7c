package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/volatiletech/null"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"fintrack/config"
	"fintrack/controllers/entities"
	"fintrack/types"
)

type User struct {
	ID             uint64          `json:"id" gorm:"primaryKey"`
	Username       string          `json:"username" gorm:"uniqueIndex"`
	Email          string          `json:"email" gorm:"uniqueIndex"`
	PasswordDigest string          `json:"-"`
	UserType       types.UserType  `json:"user_type" gorm:"default:PF"`
	Balance        decimal.Decimal `json:"balance" gorm:"type:decimal(12,2);default:0"`
	LastLoginAt    null.Time       `json:"last_login_at"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

func HashPassword(plain string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	return string(digest), nil
}

func (u *User) CheckPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordDigest), []byte(plain)) == nil
}

func FindUserByID(id uint64) (*User, error) {
	var user User

	if err := config.DataBase.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &user, nil
}

// FindUserByLogin resolves a login identifier that may be either the username
// or the email address, case-insensitively.
func FindUserByLogin(login string) (*User, error) {
	var user User

	login = strings.ToLower(login)
	err := config.DataBase.Where("LOWER(username) = ? OR LOWER(email) = ?", login, login).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &user, nil
}

func UsernameTaken(username string) bool {
	var count int64

	config.DataBase.Model(&User{}).Where("LOWER(username) = ?", strings.ToLower(username)).Count(&count)

	return count > 0
}

func EmailTaken(email string) bool {
	var count int64

	config.DataBase.Model(&User{}).Where("LOWER(email) = ?", strings.ToLower(email)).Count(&count)

	return count > 0
}

// UpdateBalance re-derives the cached balance from the user's full ledger and
// persists it. A full recomputation keeps the field idempotent and immune to
// missed-update drift. The caller owns the surrounding transaction and the
// row lock on the user.
func (u *User) UpdateBalance(tx *gorm.DB) error {
	income, expenses, err := LedgerTotals(tx, u.ID)
	if err != nil {
		return err
	}

	u.Balance = income.Sub(expenses)

	return tx.Model(u).Update("balance", u.Balance).Error
}

// RepairBalance recomputes one user's balance under its row lock and reports
// how far the cached value had drifted from the ledger. Used by the nightly
// audit job.
func RepairBalance(userID uint64) (decimal.Decimal, error) {
	drift := decimal.Zero

	err := config.DataBase.Transaction(func(tx *gorm.DB) error {
		var user User
		if err := Lock(tx).First(&user, "id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		income, expenses, err := LedgerTotals(tx, user.ID)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrRecomputation, err)
		}

		expected := income.Sub(expenses)
		drift = expected.Sub(user.Balance)

		if drift.IsZero() {
			return nil
		}

		return tx.Model(&user).Update("balance", expected).Error
	})

	return drift, err
}

func (u *User) TouchLastLogin() {
	now := time.Now().UTC()

	// Single-column update so the cached balance is never written back here.
	config.DataBase.Model(u).Update("last_login_at", now)
	u.LastLoginAt = null.TimeFrom(now)
}

func (u *User) ToJSON() entities.UserEntity {
	return entities.UserEntity{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		UserType:    u.UserType,
		Balance:     u.Balance,
		LastLoginAt: u.LastLoginAt,
		CreatedAt:   u.CreatedAt,
	}
}
