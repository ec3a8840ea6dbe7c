package helpers

import (
	"time"

	"github.com/gookit/validate"
	"github.com/shopspring/decimal"
	"github.com/volatiletech/null"

	"fintrack/models"
	"fintrack/types"
)

const dateLayout = "2006-01-02"

type CreateTransactionParams struct {
	Type        types.TransactionType `json:"type" form:"type" validate:"required|VaildateType"`
	Amount      decimal.Decimal       `json:"amount" form:"amount" validate:"VaildateAmount"`
	Description null.String           `json:"description" form:"description"`
	Date        string                `json:"date" form:"date" validate:"VaildateDate"`
	CategoryID  uint64                `json:"category" form:"category" validate:"required"`
	Payment     types.PaymentMethod   `json:"payment_method" form:"payment_method" validate:"required|VaildatePayment"`
}

func (p CreateTransactionParams) Messages() map[string]string {
	invalid_message := "account.transaction.invalid_{field}"

	return validate.MS{
		"required":        invalid_message,
		"VaildateType":    "account.transaction.invalid_type",
		"VaildateAmount":  "account.transaction.non_positive_amount",
		"VaildateDate":    "account.transaction.invalid_date",
		"VaildatePayment": "account.transaction.invalid_payment_method",
	}
}

func (p CreateTransactionParams) VaildateType(Type types.TransactionType) bool {
	return Type == types.TypeIncome || Type == types.TypeExpense
}

func (p CreateTransactionParams) VaildateAmount(Amount decimal.Decimal) bool {
	return Amount.IsPositive()
}

func (p CreateTransactionParams) VaildateDate(Date string) bool {
	if len(Date) == 0 {
		return true
	}

	_, err := time.Parse(dateLayout, Date)
	return err == nil
}

func (p CreateTransactionParams) VaildatePayment(Payment types.PaymentMethod) bool {
	return Payment == types.PaymentCash || Payment == types.PaymentCreditCard || Payment == types.PaymentDebitCard
}

// BuildTransaction assembles the ledger entry, defaulting the date to today.
func (p CreateTransactionParams) BuildTransaction(user *models.User) *models.Transaction {
	date := time.Now().UTC().Truncate(24 * time.Hour)
	if len(p.Date) > 0 {
		date, _ = time.Parse(dateLayout, p.Date)
	}

	return &models.Transaction{
		UserID:      user.ID,
		CategoryID:  p.CategoryID,
		Type:        p.Type,
		Amount:      p.Amount,
		Description: p.Description,
		Date:        date,
		Payment:     p.Payment,
	}
}

type UpdateTransactionParams struct {
	Type        null.String         `json:"type" form:"type"`
	Amount      decimal.NullDecimal `json:"amount" form:"amount"`
	Description null.String         `json:"description" form:"description"`
	Date        null.String         `json:"date" form:"date"`
	CategoryID  null.Uint64         `json:"category" form:"category"`
	Payment     null.String         `json:"payment_method" form:"payment_method"`
}

// Check validates only the fields present in the payload.
func (p UpdateTransactionParams) Check(err_src *Errors) {
	if p.Type.Valid && p.Type.String != types.TypeIncome && p.Type.String != types.TypeExpense {
		err_src.Errors = append(err_src.Errors, "account.transaction.invalid_type")
	}
	if p.Amount.Valid && !p.Amount.Decimal.IsPositive() {
		err_src.Errors = append(err_src.Errors, "account.transaction.non_positive_amount")
	}
	if p.Date.Valid {
		if _, err := time.Parse(dateLayout, p.Date.String); err != nil {
			err_src.Errors = append(err_src.Errors, "account.transaction.invalid_date")
		}
	}
	if p.Payment.Valid {
		switch p.Payment.String {
		case types.PaymentCash, types.PaymentCreditCard, types.PaymentDebitCard:
		default:
			err_src.Errors = append(err_src.Errors, "account.transaction.invalid_payment_method")
		}
	}
}

func (p UpdateTransactionParams) Changes() models.TransactionUpdate {
	changes := models.TransactionUpdate{
		Type:        p.Type,
		Amount:      p.Amount,
		Description: p.Description,
		CategoryID:  p.CategoryID,
		Payment:     p.Payment,
	}

	if p.Date.Valid {
		date, _ := time.Parse(dateLayout, p.Date.String)
		changes.Date = null.TimeFrom(date)
	}

	return changes
}
