package models

// Budget カテゴリごとの月次予算
// カテゴリ名が一意キー（同一カテゴリの予算は常に1件）
type Budget struct {
	Category string `json:"category"` // 対象カテゴリ名
	Amount   int64  `json:"amount"`   // 月次上限額（正の整数）
}
