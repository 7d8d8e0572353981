package service

import (
	"testing"

	"kakeibo/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleExpenses() []models.Expense {
	return []models.Expense{
		{ID: 1, Amount: 1500, Category: "食費", Date: "2024-06-01"},
		{ID: 2, Amount: 2000, Category: "食費", Date: "2024-06-15"},
		{ID: 3, Amount: 800, Category: "交通費", Date: "2024-06-15"},
		{ID: 4, Amount: 12000, Category: "住居費", Date: "2024-05-31"},
		{ID: 5, Amount: 300, Category: "食費", Date: "2024-05-01"},
	}
}

func TestCategoryTotals(t *testing.T) {
	totals := CategoryTotals(sampleExpenses())

	assert.Equal(t, int64(3800), totals["食費"])
	assert.Equal(t, int64(800), totals["交通費"])
	assert.Equal(t, int64(12000), totals["住居費"])

	// カテゴリ別合計の総和は全支出の総和と一致する（漏れも二重計上もない）
	var sum int64
	for _, v := range totals {
		sum += v
	}
	var want int64
	for _, e := range sampleExpenses() {
		want += e.Amount
	}
	assert.Equal(t, want, sum)
}

func TestMonthCategoryTotals(t *testing.T) {
	totals, grand := MonthCategoryTotals(sampleExpenses(), "2024-06")

	// 2024-06 の食費は 1500 + 2000
	assert.Equal(t, int64(3500), totals["食費"])
	assert.Equal(t, int64(800), totals["交通費"])
	// 前月分は含まれない
	_, ok := totals["住居費"]
	assert.False(t, ok)
	assert.Equal(t, int64(4300), grand)
}

func TestMonthCategoryTotals_EmptyMonth(t *testing.T) {
	totals, grand := MonthCategoryTotals(sampleExpenses(), "2023-01")
	assert.Empty(t, totals)
	assert.Zero(t, grand)
}

func TestDailyTotals(t *testing.T) {
	totals := DailyTotals(sampleExpenses())

	require.Len(t, totals, 4)
	// 同じ日の支出は合算される
	assert.Equal(t, int64(2800), totals["2024-06-15"])
	assert.Equal(t, int64(1500), totals["2024-06-01"])
}

func TestDayTier(t *testing.T) {
	assert.Equal(t, DayTierNone, DayTier(0))
	assert.Equal(t, DayTierMarked, DayTier(1))
	assert.Equal(t, DayTierMarked, DayTier(HeavyDayThreshold))
	assert.Equal(t, DayTierHeavy, DayTier(HeavyDayThreshold+1))
}
