package models

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"fintrack/config"
)

// Lock appends FOR UPDATE to the running transaction. sqlite, which backs the
// test suite, serializes writers on its own and rejects the clause.
func Lock(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}

	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

func Migrate() error {
	return config.DataBase.AutoMigrate(&User{}, &Category{}, &Transaction{})
}
