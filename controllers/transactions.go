package controllers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"fintrack/config"
	"fintrack/controllers/auth"
	"fintrack/controllers/entities"
	"fintrack/controllers/helpers"
	"fintrack/controllers/queries"
	"fintrack/models"
	"fintrack/types"
)

func GetTransactions(c *fiber.Ctx) error {
	CurrentUser := auth.GetCurrentUser(c)

	if CurrentUser == nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"jwt.decode_and_verify"},
		})
	}

	params := new(queries.TransactionFilters)
	if err := c.QueryParser(params); err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_query"},
		})
	}

	err_src := new(helpers.Errors)
	helpers.Vaildate(params, err_src)
	if err_src.Size() > 0 {
		return c.Status(422).JSON(err_src)
	}

	if len(params.OrderBy) == 0 {
		params.OrderBy = types.OrderByDesc
	}

	tx := config.DataBase.Order("date "+params.OrderBy).Where("user_id = ?", CurrentUser.ID)

	if len(params.Type) > 0 {
		tx = tx.Where("type = ?", params.Type)
	}

	if params.Category > 0 {
		tx = tx.Where("category_id = ?", params.Category)
	}

	if len(params.Payment) > 0 {
		tx = tx.Where("payment_method = ?", params.Payment)
	}

	if len(params.StartDate) > 0 {
		start_date, _ := time.Parse("2006-01-02", params.StartDate)
		tx = tx.Where("date >= ?", start_date)
	}

	if len(params.EndDate) > 0 {
		end_date, _ := time.Parse("2006-01-02", params.EndDate)
		tx = tx.Where("date <= ?", end_date)
	}

	if params.Limit == 0 {
		params.Limit = 100
	}

	if params.Page == 0 {
		params.Page = 1
	}

	tx = tx.Offset(params.Page*params.Limit - params.Limit).Limit(params.Limit)

	var transactions []models.Transaction
	tx.Find(&transactions)

	transactions_json := make([]entities.TransactionEntity, 0)
	for _, transaction := range transactions {
		transactions_json = append(transactions_json, transaction.ToJSON())
	}

	return c.Status(200).JSON(transactions_json)
}

func GetTransactionByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"account.transaction.invalid_id"},
		})
	}

	CurrentUser := auth.GetCurrentUser(c)

	if CurrentUser == nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"jwt.decode_and_verify"},
		})
	}

	transaction, err := models.FindTransaction(uint64(id), CurrentUser.ID)
	if err != nil {
		return transactionErrorResponse(c, err)
	}

	return c.Status(200).JSON(transaction.ToJSON())
}

func CreateTransaction(c *fiber.Ctx) error {
	CurrentUser := auth.GetCurrentUser(c)

	if CurrentUser == nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"jwt.decode_and_verify"},
		})
	}

	err_src := new(helpers.Errors)
	payload := new(helpers.CreateTransactionParams)

	if err := c.BodyParser(payload); err != nil {
		c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_message_body"},
		})

		return err
	}

	helpers.Vaildate(payload, err_src)
	if err_src.Size() > 0 {
		return c.Status(422).JSON(err_src)
	}

	transaction := payload.BuildTransaction(CurrentUser)
	if err := models.CreateTransaction(transaction); err != nil {
		return transactionErrorResponse(c, err)
	}

	return c.Status(201).JSON(transaction.ToJSON())
}

func UpdateTransaction(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"account.transaction.invalid_id"},
		})
	}

	CurrentUser := auth.GetCurrentUser(c)

	if CurrentUser == nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"jwt.decode_and_verify"},
		})
	}

	err_src := new(helpers.Errors)
	payload := new(helpers.UpdateTransactionParams)

	if err := c.BodyParser(payload); err != nil {
		c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_message_body"},
		})

		return err
	}

	payload.Check(err_src)
	if err_src.Size() > 0 {
		return c.Status(422).JSON(err_src)
	}

	transaction, err := models.UpdateTransaction(uint64(id), CurrentUser.ID, payload.Changes())
	if err != nil {
		return transactionErrorResponse(c, err)
	}

	return c.Status(200).JSON(transaction.ToJSON())
}

func DeleteTransaction(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"account.transaction.invalid_id"},
		})
	}

	CurrentUser := auth.GetCurrentUser(c)

	if CurrentUser == nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"jwt.decode_and_verify"},
		})
	}

	if err := models.DeleteTransaction(uint64(id), CurrentUser.ID); err != nil {
		return transactionErrorResponse(c, err)
	}

	return c.SendStatus(204)
}

func GetSummary(c *fiber.Ctx) error {
	CurrentUser := auth.GetCurrentUser(c)

	if CurrentUser == nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"jwt.decode_and_verify"},
		})
	}

	summary, err := models.SummaryFor(CurrentUser.ID)
	if err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.internal_error"},
		})
	}

	return c.Status(200).JSON(summary)
}

func GetExpensesByCategory(c *fiber.Ctx) error {
	CurrentUser := auth.GetCurrentUser(c)

	if CurrentUser == nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"jwt.decode_and_verify"},
		})
	}

	totals, err := models.ExpensesByCategory(CurrentUser.ID)
	if err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.internal_error"},
		})
	}

	return c.Status(200).JSON(totals)
}

func transactionErrorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, models.ErrInsufficientFunds):
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"account.transaction.insufficient_balance"},
		})
	case errors.Is(err, models.ErrNotFound):
		return c.Status(404).JSON(helpers.Errors{
			Errors: []string{"account.transaction.doesnt_exist"},
		})
	case errors.Is(err, models.ErrRecomputation):
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"account.balance.recomputation_failed"},
		})
	default:
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.internal_error"},
		})
	}
}
