package entities

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/volatiletech/null"

	"fintrack/types"
)

type UserEntity struct {
	ID          uint64          `json:"id"`
	Username    string          `json:"username"`
	Email       string          `json:"email"`
	UserType    types.UserType  `json:"user_type"`
	Balance     decimal.Decimal `json:"balance"`
	LastLoginAt null.Time       `json:"last_login_at"`
	CreatedAt   time.Time       `json:"created_at"`
}

type TokenEntity struct {
	Access  string     `json:"access"`
	Refresh string     `json:"refresh"`
	User    UserEntity `json:"user"`
}
