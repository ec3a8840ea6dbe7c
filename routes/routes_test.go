package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"fintrack/config"
	"fintrack/models"
)

func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()

	t.Setenv("JWT_SECRET", "test-secret")
	config.NewLoggerService()

	dsn := fmt.Sprintf("file:routes_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	config.DataBase = db
	require.NoError(t, models.Migrate())

	return SetupRouter()
}

func jsonRequest(t *testing.T, method string, target string, payload interface{}, token string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}

	req := httptest.NewRequest(method, target, &body)
	req.Header.Set("Content-Type", "application/json")
	if len(token) > 0 {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return req
}

func decodeBody(t *testing.T, resp *http.Response, dest interface{}) {
	t.Helper()

	raw, err := ioutil.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, dest))
}

func registerUser(t *testing.T, app *fiber.App, username string) (token string, user map[string]interface{}) {
	t.Helper()

	resp, err := app.Test(jsonRequest(t, "POST", "/api/auth/register", fiber.Map{
		"username": username,
		"email":    username + "@example.com",
		"password": "password123",
	}, ""), 5000)
	require.NoError(t, err)
	require.Equal(t, 201, resp.StatusCode)

	var body map[string]interface{}
	decodeBody(t, resp, &body)

	return body["access"].(string), body["user"].(map[string]interface{})
}

func createCategory(t *testing.T, app *fiber.App, token string, name string) uint64 {
	t.Helper()

	resp, err := app.Test(jsonRequest(t, "POST", "/api/categories", fiber.Map{"name": name}, token), 5000)
	require.NoError(t, err)
	require.Equal(t, 201, resp.StatusCode)

	var body map[string]interface{}
	decodeBody(t, resp, &body)

	return uint64(body["id"].(float64))
}

func TestRegisterLoginAndMe(t *testing.T) {
	app := setupTestApp(t)

	token, user := registerUser(t, app, "alice")
	assert.Equal(t, "alice", user["username"])
	assert.Equal(t, "0", user["balance"])

	// Login accepts the email address as identifier.
	resp, err := app.Test(jsonRequest(t, "POST", "/api/auth/login", fiber.Map{
		"username": "alice@example.com",
		"password": "password123",
	}, ""), 5000)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	resp, err = app.Test(jsonRequest(t, "GET", "/api/users/me", nil, token), 5000)
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	var me map[string]interface{}
	decodeBody(t, resp, &me)
	assert.Equal(t, "alice", me["username"])
}

func TestLoginRejectsBadPassword(t *testing.T) {
	app := setupTestApp(t)
	registerUser(t, app, "alice")

	resp, err := app.Test(jsonRequest(t, "POST", "/api/auth/login", fiber.Map{
		"username": "alice",
		"password": "not-the-password",
	}, ""), 5000)
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)

	var body map[string][]string
	decodeBody(t, resp, &body)
	assert.Contains(t, body["errors"], "account.session.invalid_credentials")
}

func TestRefreshTokenFlow(t *testing.T) {
	app := setupTestApp(t)

	resp, err := app.Test(jsonRequest(t, "POST", "/api/auth/register", fiber.Map{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "password123",
	}, ""), 5000)
	require.NoError(t, err)
	require.Equal(t, 201, resp.StatusCode)

	var tokens map[string]interface{}
	decodeBody(t, resp, &tokens)

	resp, err = app.Test(jsonRequest(t, "POST", "/api/auth/refresh", fiber.Map{
		"refresh": tokens["refresh"],
	}, ""), 5000)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	// The access token is not accepted in place of the refresh token.
	resp, err = app.Test(jsonRequest(t, "POST", "/api/auth/refresh", fiber.Map{
		"refresh": tokens["access"],
	}, ""), 5000)
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestAuthenticationRequired(t *testing.T) {
	app := setupTestApp(t)

	resp, err := app.Test(jsonRequest(t, "GET", "/api/users/me", nil, ""), 5000)
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)

	resp, err = app.Test(jsonRequest(t, "GET", "/api/users/me", nil, "not-a-jwt"), 5000)
	require.NoError(t, err)
	assert.Equal(t, 422, resp.StatusCode)
}

func TestUpdateMeIgnoresBalance(t *testing.T) {
	app := setupTestApp(t)
	token, _ := registerUser(t, app, "alice")

	resp, err := app.Test(jsonRequest(t, "PUT", "/api/users/me", fiber.Map{
		"username": "alice2",
		"balance":  "9999",
	}, token), 5000)
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	var me map[string]interface{}
	decodeBody(t, resp, &me)
	assert.Equal(t, "alice2", me["username"])
	assert.Equal(t, "0", me["balance"])
}

func TestCategoryEndpoints(t *testing.T) {
	app := setupTestApp(t)
	token, _ := registerUser(t, app, "alice")

	id := createCategory(t, app, token, "Books")

	resp, err := app.Test(jsonRequest(t, "GET", "/api/categories", nil, token), 5000)
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	var list []map[string]interface{}
	decodeBody(t, resp, &list)
	require.Len(t, list, 1)
	assert.Equal(t, "Books", list[0]["name"])

	// Global categories are visible but read-only.
	global := &models.Category{Name: "Salary"}
	require.NoError(t, config.DataBase.Create(global).Error)

	resp, err = app.Test(jsonRequest(t, "PUT", fmt.Sprintf("/api/categories/%d", global.ID), fiber.Map{
		"name": "Wages",
	}, token), 5000)
	require.NoError(t, err)
	assert.Equal(t, 403, resp.StatusCode)

	resp, err = app.Test(jsonRequest(t, "DELETE", fmt.Sprintf("/api/categories/%d", id), nil, token), 5000)
	require.NoError(t, err)
	assert.Equal(t, 204, resp.StatusCode)
}

func TestTransactionFlow(t *testing.T) {
	app := setupTestApp(t)
	token, _ := registerUser(t, app, "alice")
	category := createCategory(t, app, token, "Salary")

	resp, err := app.Test(jsonRequest(t, "POST", "/api/transactions", fiber.Map{
		"type":           "IN",
		"amount":         "500",
		"category":       category,
		"payment_method": "cash",
		"date":           "2025-06-15",
	}, token), 5000)
	require.NoError(t, err)
	require.Equal(t, 201, resp.StatusCode)

	resp, err = app.Test(jsonRequest(t, "GET", "/api/users/me", nil, token), 5000)
	require.NoError(t, err)

	var me map[string]interface{}
	decodeBody(t, resp, &me)
	assert.Equal(t, "500", me["balance"])

	// An expense over the balance is rejected with the guard code.
	resp, err = app.Test(jsonRequest(t, "POST", "/api/transactions", fiber.Map{
		"type":           "OUT",
		"amount":         "600",
		"category":       category,
		"payment_method": "debit_card",
	}, token), 5000)
	require.NoError(t, err)
	require.Equal(t, 422, resp.StatusCode)

	var body map[string][]string
	decodeBody(t, resp, &body)
	assert.Contains(t, body["errors"], "account.transaction.insufficient_balance")

	resp, err = app.Test(jsonRequest(t, "GET", "/api/transactions/summary", nil, token), 5000)
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	var summary map[string]interface{}
	decodeBody(t, resp, &summary)
	assert.Equal(t, "500", summary["total_income"])
	assert.Equal(t, "500", summary["balance"])
}

func TestTransactionFilters(t *testing.T) {
	app := setupTestApp(t)
	token, _ := registerUser(t, app, "alice")
	category := createCategory(t, app, token, "Misc")

	for _, entry := range []fiber.Map{
		{"type": "IN", "amount": "100", "category": category, "payment_method": "cash", "date": "2025-01-10"},
		{"type": "OUT", "amount": "40", "category": category, "payment_method": "debit_card", "date": "2025-02-10"},
	} {
		resp, err := app.Test(jsonRequest(t, "POST", "/api/transactions", entry, token), 5000)
		require.NoError(t, err)
		require.Equal(t, 201, resp.StatusCode)
	}

	resp, err := app.Test(jsonRequest(t, "GET", "/api/transactions?type=OUT", nil, token), 5000)
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	var list []map[string]interface{}
	decodeBody(t, resp, &list)
	require.Len(t, list, 1)
	assert.Equal(t, "OUT", list[0]["type"])

	resp, err = app.Test(jsonRequest(t, "GET", "/api/transactions?start_date=2025-02-01", nil, token), 5000)
	require.NoError(t, err)

	decodeBody(t, resp, &list)
	require.Len(t, list, 1)
	assert.Equal(t, "2025-02-10", list[0]["date"])

	resp, err = app.Test(jsonRequest(t, "GET", "/api/transactions?type=bogus", nil, token), 5000)
	require.NoError(t, err)
	assert.Equal(t, 422, resp.StatusCode)
}

func TestAnalyticsEndpoint(t *testing.T) {
	app := setupTestApp(t)
	token, _ := registerUser(t, app, "alice")
	category := createCategory(t, app, token, "Food")

	for _, entry := range []fiber.Map{
		{"type": "IN", "amount": "1000", "category": category, "payment_method": "cash", "date": "2025-01-05"},
		{"type": "OUT", "amount": "200", "category": category, "payment_method": "cash", "date": "2025-01-20"},
	} {
		resp, err := app.Test(jsonRequest(t, "POST", "/api/transactions", entry, token), 5000)
		require.NoError(t, err)
		require.Equal(t, 201, resp.StatusCode)
	}

	resp, err := app.Test(jsonRequest(t, "GET", "/api/analytics", nil, token), 5000)
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	var analytics struct {
		ByCategory []map[string]interface{} `json:"by_category"`
		ByDate     []map[string]interface{} `json:"by_date"`
	}
	decodeBody(t, resp, &analytics)

	require.Len(t, analytics.ByCategory, 1)
	assert.Equal(t, "Food", analytics.ByCategory[0]["category"])
	assert.Equal(t, "200", analytics.ByCategory[0]["total"])
	require.Len(t, analytics.ByDate, 2)
}
