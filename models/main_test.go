package models

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"fintrack/config"
	"fintrack/types"
)

func setupTestDB(t *testing.T) {
	t.Helper()

	config.NewLoggerService()

	dsn := fmt.Sprintf("file:models_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	config.DataBase = db
	require.NoError(t, Migrate())
}

func createTestUser(t *testing.T, username string) *User {
	t.Helper()

	digest, err := HashPassword("password123")
	require.NoError(t, err)

	user := &User{
		Username:       username,
		Email:          username + "@example.com",
		PasswordDigest: digest,
		UserType:       types.UserTypePersonal,
	}
	require.NoError(t, config.DataBase.Create(user).Error)

	return user
}

func createTestCategory(t *testing.T, user *User, name string) *Category {
	t.Helper()

	category := &Category{Name: name, UserID: null.Uint64From(user.ID)}
	require.NoError(t, config.DataBase.Create(category).Error)

	return category
}

func createGlobalCategory(t *testing.T, name string) *Category {
	t.Helper()

	category := &Category{Name: name}
	require.NoError(t, config.DataBase.Create(category).Error)

	return category
}

func newEntry(user *User, category *Category, kind types.TransactionType, amount string, payment types.PaymentMethod) *Transaction {
	value, _ := decimal.NewFromString(amount)

	return &Transaction{
		UserID:     user.ID,
		CategoryID: category.ID,
		Type:       kind,
		Amount:     value,
		Date:       time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		Payment:    payment,
	}
}

func reloadBalance(t *testing.T, userID uint64) decimal.Decimal {
	t.Helper()

	user, err := FindUserByID(userID)
	require.NoError(t, err)

	return user.Balance
}

func dec(t *testing.T, value string) decimal.Decimal {
	t.Helper()

	d, err := decimal.NewFromString(value)
	require.NoError(t, err)

	return d
}
