package models

// 永続化ストアのキー
// 各キーには対応するコレクションの JSON 配列スナップショットを保存する
const (
	KeyExpenses   = "kakeibo:expenses"
	KeyBudgets    = "kakeibo:budgets"
	KeyCategories = "kakeibo:categories"
)
