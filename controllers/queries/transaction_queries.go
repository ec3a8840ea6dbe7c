package queries

import (
	"time"

	"github.com/gookit/validate"

	"fintrack/types"
)

type TransactionFilters struct {
	Type      string `query:"type" validate:"VaildateType"`
	Category  uint64 `query:"category"`
	Payment   string `query:"payment_method" validate:"VaildatePayment"`
	StartDate string `query:"start_date" validate:"VaildateDate"`
	EndDate   string `query:"end_date" validate:"VaildateDate"`
	Limit     int    `query:"limit" validate:"uint"`
	Page      int    `query:"page" validate:"uint"`
	OrderBy   string `query:"order_by" validate:"VaildateOrderBy"`
}

func (f TransactionFilters) Messages() map[string]string {
	invalid_message := "account.transaction.invalid_{field}"

	return validate.MS{
		"uint":            invalid_message,
		"VaildateType":    "account.transaction.invalid_type",
		"VaildatePayment": "account.transaction.invalid_payment_method",
		"VaildateDate":    "account.transaction.invalid_date",
		"VaildateOrderBy": "account.transaction.invalid_order_by",
	}
}

func (f TransactionFilters) VaildateType(Type string) bool {
	return Type == "" || Type == types.TypeIncome || Type == types.TypeExpense
}

func (f TransactionFilters) VaildatePayment(Payment string) bool {
	switch Payment {
	case "", types.PaymentCash, types.PaymentCreditCard, types.PaymentDebitCard:
		return true
	}
	return false
}

func (f TransactionFilters) VaildateDate(Date string) bool {
	if len(Date) == 0 {
		return true
	}

	_, err := time.Parse("2006-01-02", Date)
	return err == nil
}

func (f TransactionFilters) VaildateOrderBy(OrderBy string) bool {
	return OrderBy == "" || OrderBy == types.OrderByAsc || OrderBy == types.OrderByDesc
}
