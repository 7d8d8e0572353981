package api

import (
	"bytes"
	"net/http/httptest"
	"testing"

	"kakeibo/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryHandler_List(t *testing.T) {
	ledger := newTestLedger(t)

	router := gin.New()
	router.GET("/categories", NewCategoryHandler(ledger).List)

	req := httptest.NewRequest("GET", "/categories", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, 200, w.Code)

	resp := decodeResponse(t, w)
	list := resp["data"].([]interface{})
	assert.Len(t, list, len(models.DefaultCategories()))
	assert.Equal(t, "食費", list[0])
}

func TestCategoryHandler_CreateAndDelete(t *testing.T) {
	ledger := newTestLedger(t)

	h := NewCategoryHandler(ledger)
	router := gin.New()
	router.POST("/categories", h.Create)
	router.DELETE("/categories/:name", h.Delete)

	doPost := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest("POST", "/categories", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	// 追加
	assert.Equal(t, 200, doPost(`{"name":"ペット"}`).Code)
	assert.True(t, ledger.HasCategory("ペット"))

	// 重複と空文字は 400
	assert.Equal(t, 400, doPost(`{"name":"ペット"}`).Code)
	assert.Equal(t, 400, doPost(`{"name":""}`).Code)

	// 削除してもカテゴリを参照する支出・予算は残る
	ledger.AddExpense(models.Expense{Amount: 3000, Category: "ペット", Date: "2024-06-01"})
	ledger.UpsertBudget(models.Budget{Category: "ペット", Amount: 5000})

	req := httptest.NewRequest("DELETE", "/categories/ペット", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, 200, w.Code)
	assert.False(t, ledger.HasCategory("ペット"))
	assert.Len(t, ledger.Expenses(), 1)
	assert.Len(t, ledger.Budgets(), 1)

	// 存在しないカテゴリの削除は 404
	req = httptest.NewRequest("DELETE", "/categories/ペット", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, 404, w.Code)
}
