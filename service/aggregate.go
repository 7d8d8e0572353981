package service

import (
	"time"

	"kakeibo/models"
)

// HeavyDayThreshold カレンダー上で強調表示する1日あたりの支出額のしきい値
const HeavyDayThreshold = 10000

// 日別マーカーの段階
const (
	DayTierNone   = "none"
	DayTierMarked = "marked"
	DayTierHeavy  = "heavy"
)

// CurrentMonth 現在の月を YYYY-MM 形式で返す
func CurrentMonth() string {
	return time.Now().Format("2006-01")
}

// CategoryTotals 全期間のカテゴリ別合計
func CategoryTotals(expenses []models.Expense) map[string]int64 {
	totals := make(map[string]int64)
	for _, e := range expenses {
		totals[e.Category] += e.Amount
	}
	return totals
}

// MonthCategoryTotals 指定した月（YYYY-MM）のカテゴリ別合計と月間総額
func MonthCategoryTotals(expenses []models.Expense, month string) (map[string]int64, int64) {
	totals := make(map[string]int64)
	var grand int64
	for _, e := range expenses {
		if !e.InMonth(month) {
			continue
		}
		totals[e.Category] += e.Amount
		grand += e.Amount
	}
	return totals, grand
}

// DailyTotals 日付ごとの合計
func DailyTotals(expenses []models.Expense) map[string]int64 {
	totals := make(map[string]int64)
	for _, e := range expenses {
		totals[e.Date] += e.Amount
	}
	return totals
}

// DayTier 1日の合計額に対するカレンダーのマーカー段階
func DayTier(total int64) string {
	switch {
	case total > HeavyDayThreshold:
		return DayTierHeavy
	case total > 0:
		return DayTierMarked
	default:
		return DayTierNone
	}
}
