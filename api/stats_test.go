package api

import (
	"net/http/httptest"
	"testing"

	"kakeibo/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsHandler_Categories_MonthWindow(t *testing.T) {
	ledger := newTestLedger(t)
	ledger.AddExpense(models.Expense{Amount: 1500, Category: "食費", Date: "2024-06-01"})
	ledger.AddExpense(models.Expense{Amount: 2000, Category: "食費", Date: "2024-06-15"})
	ledger.AddExpense(models.Expense{Amount: 500, Category: "交通費", Date: "2024-07-01"})

	router := gin.New()
	router.GET("/statistics/categories", NewStatsHandler(ledger).Categories)

	// 2024-06 の食費合計は 1500 + 2000 = 3500
	req := httptest.NewRequest("GET", "/statistics/categories?month=2024-06", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, 200, w.Code)

	resp := decodeResponse(t, w)
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(3500), data["total_amount"])

	stats := data["category_stats"].([]interface{})
	require.Len(t, stats, 1)
	top := stats[0].(map[string]interface{})
	assert.Equal(t, "食費", top["category"])
	assert.Equal(t, float64(3500), top["total"])
	assert.InDelta(t, 100.0, top["percentage"].(float64), 1e-9)
}

func TestStatsHandler_Categories_AllTime(t *testing.T) {
	ledger := newTestLedger(t)
	ledger.AddExpense(models.Expense{Amount: 3000, Category: "食費", Date: "2024-06-01"})
	ledger.AddExpense(models.Expense{Amount: 1000, Category: "交通費", Date: "2024-05-01"})

	router := gin.New()
	router.GET("/statistics/categories", NewStatsHandler(ledger).Categories)

	req := httptest.NewRequest("GET", "/statistics/categories", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, 200, w.Code)

	resp := decodeResponse(t, w)
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(4000), data["total_amount"])

	// 金額降順
	stats := data["category_stats"].([]interface{})
	require.Len(t, stats, 2)
	assert.Equal(t, "食費", stats[0].(map[string]interface{})["category"])
	assert.InDelta(t, 75.0, stats[0].(map[string]interface{})["percentage"].(float64), 1e-9)
}

func TestStatsHandler_Calendar(t *testing.T) {
	ledger := newTestLedger(t)
	ledger.AddExpense(models.Expense{Amount: 1500, Category: "食費", Date: "2024-06-01"})
	ledger.AddExpense(models.Expense{Amount: 800, Category: "交通費", Date: "2024-06-01"})
	ledger.AddExpense(models.Expense{Amount: 12000, Category: "住居費", Date: "2024-06-25"})
	ledger.AddExpense(models.Expense{Amount: 500, Category: "食費", Date: "2024-07-01"}) // 対象外の月

	router := gin.New()
	router.GET("/statistics/calendar", NewStatsHandler(ledger).Calendar)

	req := httptest.NewRequest("GET", "/statistics/calendar?month=2024-06", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, 200, w.Code)

	resp := decodeResponse(t, w)
	data := resp["data"].(map[string]interface{})
	days := data["days"].([]interface{})
	require.Len(t, days, 2)

	// 日付昇順
	first := days[0].(map[string]interface{})
	assert.Equal(t, "2024-06-01", first["date"])
	assert.Equal(t, float64(2300), first["total"])
	assert.Equal(t, "marked", first["tier"])

	// しきい値超えは heavy
	second := days[1].(map[string]interface{})
	assert.Equal(t, "2024-06-25", second["date"])
	assert.Equal(t, "heavy", second["tier"])
}
