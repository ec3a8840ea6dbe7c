package entities

import (
	"github.com/shopspring/decimal"

	"fintrack/types"
)

type CategoryTotalEntity struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

type MonthlyTotalEntity struct {
	Month string                `json:"month"`
	Type  types.TransactionType `json:"type"`
	Total decimal.Decimal       `json:"total"`
}

type AnalyticsEntity struct {
	ByCategory []CategoryTotalEntity `json:"by_category"`
	ByDate     []MonthlyTotalEntity  `json:"by_date"`
}
