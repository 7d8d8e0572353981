package models

import "strings"

// DateLayout 支出日付のフォーマット（時刻は持たない）
const DateLayout = "2006-01-02"

// Expense 支出レコード
type Expense struct {
	ID       int64  `json:"id"`       // 作成時に採番（ミリ秒タイムスタンプ）、変更不可
	Amount   int64  `json:"amount"`   // 金額（通貨最小単位、正の整数）
	Category string `json:"category"` // カテゴリ名
	Memo     string `json:"memo"`     // メモ（空可）
	Date     string `json:"date"`     // 日付 YYYY-MM-DD
}

// InMonth 指定した月（YYYY-MM）に属するか
func (e Expense) InMonth(month string) bool {
	return strings.HasPrefix(e.Date, month)
}

// Matches メモ・カテゴリ名に対するキーワード部分一致
func (e Expense) Matches(keyword string) bool {
	if keyword == "" {
		return true
	}
	return strings.Contains(e.Memo, keyword) || strings.Contains(e.Category, keyword)
}
