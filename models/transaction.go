package models

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/gookit/validate"
	"github.com/shopspring/decimal"
	"github.com/volatiletech/null"
	"gorm.io/gorm"

	"fintrack/config"
	"fintrack/controllers/entities"
	"fintrack/types"
)

type Transaction struct {
	ID          uint64                `json:"id" gorm:"primaryKey"`
	UserID      uint64                `json:"user_id" validate:"required"`
	CategoryID  uint64                `json:"category_id" validate:"required"`
	Type        types.TransactionType `json:"type" validate:"required|VaildateType"`
	Amount      decimal.Decimal       `json:"amount" gorm:"type:decimal(10,2)" validate:"VaildateAmount"`
	Description null.String           `json:"description"`
	Date        time.Time             `json:"date" gorm:"type:date"`
	Payment     types.PaymentMethod   `json:"payment_method" gorm:"column:payment_method" validate:"required|VaildatePayment"`
	CreatedAt   time.Time             `json:"created_at"`
	UpdatedAt   time.Time             `json:"updated_at"`
}

func (t Transaction) Messages() map[string]string {
	invalid_message := "account.transaction.invalid_{field}"

	return validate.MS{
		"required":        invalid_message,
		"VaildateType":    "account.transaction.invalid_type",
		"VaildateAmount":  "account.transaction.non_positive_amount",
		"VaildatePayment": "account.transaction.invalid_payment_method",
	}
}

func (t Transaction) VaildateType(Type types.TransactionType) bool {
	return Type == types.TypeIncome || Type == types.TypeExpense
}

func (t Transaction) VaildateAmount(Amount decimal.Decimal) bool {
	return Amount.IsPositive()
}

func (t Transaction) VaildatePayment(Payment types.PaymentMethod) bool {
	return Payment == types.PaymentCash || Payment == types.PaymentCreditCard || Payment == types.PaymentDebitCard
}

func (t *Transaction) Category() *Category {
	var category Category

	config.DataBase.First(&category, "id = ?", t.CategoryID)

	return &category
}

func (t *Transaction) User() *User {
	var user User

	config.DataBase.First(&user, "id = ?", t.UserID)

	return &user
}

// LedgerTotals walks the user's full transaction set and sums incomes and
// expenses with decimal arithmetic. The deliberate O(n) scan is what makes
// recomputation idempotent regardless of how the ledger got into its state.
func LedgerTotals(tx *gorm.DB, userID uint64) (decimal.Decimal, decimal.Decimal, error) {
	var ledger []Transaction

	if err := tx.Where("user_id = ?", userID).Find(&ledger).Error; err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	income := decimal.Zero
	expenses := decimal.Zero
	for _, entry := range ledger {
		switch entry.Type {
		case types.TypeIncome:
			income = income.Add(entry.Amount)
		case types.TypeExpense:
			expenses = expenses.Add(entry.Amount)
		}
	}

	return income, expenses, nil
}

// CreateTransaction commits a new ledger entry and the owner's recomputed
// balance as one atomic unit. The user row is locked first, so the spending
// check below always sees the balance as of the previous committed mutation:
// two concurrent expenses cannot both spend the same funds.
func CreateTransaction(t *Transaction) error {
	err := config.DataBase.Transaction(func(tx *gorm.DB) error {
		var user User
		if err := Lock(tx).First(&user, "id = ?", t.UserID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if _, err := FindVisibleCategory(tx, t.CategoryID, t.UserID); err != nil {
			return err
		}

		if t.Type == types.TypeExpense && t.Amount.GreaterThan(user.Balance) {
			return ErrInsufficientFunds
		}

		if err := tx.Create(t).Error; err != nil {
			return err
		}

		if err := user.UpdateBalance(tx); err != nil {
			return fmt.Errorf("%w: %v", ErrRecomputation, err)
		}

		return nil
	})

	if err == nil {
		InvalidateAnalytics(t.UserID)
	}

	return err
}

// TransactionUpdate carries the fields of a partial edit. Absent fields keep
// their current value.
type TransactionUpdate struct {
	Type        null.String
	Amount      decimal.NullDecimal
	Description null.String
	Date        null.Time
	CategoryID  null.Uint64
	Payment     null.String
}

// UpdateTransaction edits an owned ledger entry and recomputes the balance in
// the same transaction. The spending check is not re-run here: editing
// history is allowed to drive the recomputed balance negative.
func UpdateTransaction(id uint64, userID uint64, changes TransactionUpdate) (*Transaction, error) {
	var transaction Transaction

	err := config.DataBase.Transaction(func(tx *gorm.DB) error {
		var user User
		if err := Lock(tx).First(&user, "id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if err := tx.Where("id = ? AND user_id = ?", id, userID).First(&transaction).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if changes.CategoryID.Valid {
			if _, err := FindVisibleCategory(tx, changes.CategoryID.Uint64, userID); err != nil {
				return err
			}
			transaction.CategoryID = changes.CategoryID.Uint64
		}

		if changes.Type.Valid {
			transaction.Type = changes.Type.String
		}
		if changes.Amount.Valid {
			transaction.Amount = changes.Amount.Decimal
		}
		if changes.Description.Valid {
			transaction.Description = changes.Description
		}
		if changes.Date.Valid {
			transaction.Date = changes.Date.Time
		}
		if changes.Payment.Valid {
			transaction.Payment = changes.Payment.String
		}

		if err := tx.Save(&transaction).Error; err != nil {
			return err
		}

		if err := user.UpdateBalance(tx); err != nil {
			return fmt.Errorf("%w: %v", ErrRecomputation, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	InvalidateAnalytics(userID)

	return &transaction, nil
}

// DeleteTransaction removes an owned ledger entry and recomputes the balance
// atomically. Recomputation is unconditional, deleting an income entry can
// leave the balance negative.
func DeleteTransaction(id uint64, userID uint64) error {
	err := config.DataBase.Transaction(func(tx *gorm.DB) error {
		var user User
		if err := Lock(tx).First(&user, "id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		var transaction Transaction
		if err := tx.Where("id = ? AND user_id = ?", id, userID).First(&transaction).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if err := tx.Delete(&transaction).Error; err != nil {
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

func FindTransaction(id uint64, userID uint64) (*Transaction, error) {
	var transaction Transaction

	err := config.DataBase.Where("id = ? AND user_id = ?", id, userID).First(&transaction).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &transaction, nil
}

func SummaryFor(userID uint64) (entities.SummaryEntity, error) {
	income, expenses, err := LedgerTotals(config.DataBase, userID)
	if err != nil {
		return entities.SummaryEntity{}, err
	}

	return entities.SummaryEntity{
		TotalIncome:   income,
		TotalExpenses: expenses,
		Balance:       income.Sub(expenses),
	}, nil
}

// ExpensesByCategory sums OUT amounts per category name, largest first.
func ExpensesByCategory(userID uint64) ([]entities.CategoryTotalEntity, error) {
	var expenses []Transaction

	err := config.DataBase.Where("user_id = ? AND type = ?", userID, types.TypeExpense).Find(&expenses).Error
	if err != nil {
		return nil, err
	}

	names := make(map[uint64]string)
	for _, category := range VisibleCategories(userID) {
		names[category.ID] = category.Name
	}

	totals := make(map[string]decimal.Decimal)
	for _, entry := range expenses {
		name, ok := names[entry.CategoryID]
		if !ok {
			name = "uncategorized"
		}
		totals[name] = totals[name].Add(entry.Amount)
	}

	result := make([]entities.CategoryTotalEntity, 0, len(totals))
	for name, total := range totals {
		result = append(result, entities.CategoryTotalEntity{Category: name, Total: total})
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].Total.Equal(result[j].Total) {
			return result[i].Total.GreaterThan(result[j].Total)
		}
		return result[i].Category < result[j].Category
	})

	return result, nil
}

// MonthlyTotals buckets the ledger by calendar month and type.
func MonthlyTotals(userID uint64) ([]entities.MonthlyTotalEntity, error) {
	var ledger []Transaction

	if err := config.DataBase.Where("user_id = ?", userID).Find(&ledger).Error; err != nil {
		return nil, err
	}

	type bucket struct {
		month string
		kind  types.TransactionType
	}

	totals := make(map[bucket]decimal.Decimal)
	for _, entry := range ledger {
		key := bucket{month: entry.Date.Format("2006-01"), kind: entry.Type}
		totals[key] = totals[key].Add(entry.Amount)
	}

	result := make([]entities.MonthlyTotalEntity, 0, len(totals))
	for key, total := range totals {
		result = append(result, entities.MonthlyTotalEntity{Month: key.month, Type: key.kind, Total: total})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Month != result[j].Month {
			return result[i].Month < result[j].Month
		}
		return result[i].Type < result[j].Type
	})

	return result, nil
}

func AnalyticsCacheKey(userID uint64) string {
	return "fintrack:analytics:" + strconv.FormatUint(userID, 10)
}

// InvalidateAnalytics drops the cached analytics payload after a ledger
// mutation. Cache misses fall through to the database, so failures here only
// cost freshness of a non-core read.
func InvalidateAnalytics(userID uint64) {
	if config.Redis == nil {
		return
	}

	if err := config.Redis.DeleteKey(AnalyticsCacheKey(userID)); err != nil {
		config.Logger.Warnf("analytics cache invalidation failed for user %d: %v", userID, err)
	}
}

func (t *Transaction) ToJSON() entities.TransactionEntity {
	return entities.TransactionEntity{
		ID:           t.ID,
		Type:         t.Type,
		Amount:       t.Amount,
		Description:  t.Description,
		Date:         t.Date.Format("2006-01-02"),
		CategoryID:   t.CategoryID,
		CategoryName: t.Category().Name,
		Payment:      t.Payment,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}
