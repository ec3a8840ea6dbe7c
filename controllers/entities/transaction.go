package entities

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/volatiletech/null"

	"fintrack/types"
)

type TransactionEntity struct {
	ID           uint64                `json:"id"`
	Type         types.TransactionType `json:"type"`
	Amount       decimal.Decimal       `json:"amount"`
	Description  null.String           `json:"description"`
	Date         string                `json:"date"`
	CategoryID   uint64                `json:"category"`
	CategoryName string                `json:"category_name"`
	Payment      types.PaymentMethod   `json:"payment_method"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
}

type SummaryEntity struct {
	TotalIncome   decimal.Decimal `json:"total_income"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	Balance       decimal.Decimal `json:"balance"`
}
