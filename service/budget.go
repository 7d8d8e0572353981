package service

import "kakeibo/models"

// NearBudgetRatio このレシオを超えたら「残りわずか」扱い
const NearBudgetRatio = 0.8

// 予算ステータス
const (
	StatusUnder = "under" // 余裕あり（ratio ≤ 0.8）
	StatusNear  = "near"  // 残りわずか（0.8 < ratio ≤ 1）
	StatusOver  = "over"  // 予算超過（ratio > 1）
)

// BudgetProgress カテゴリ予算に対する当月の消化状況
type BudgetProgress struct {
	Category  string  `json:"category"`  // 対象カテゴリ
	Cap       int64   `json:"cap"`       // 月次上限額
	Spent     int64   `json:"spent"`     // 当月の支出合計
	Ratio     float64 `json:"ratio"`     // 消化率 spent/cap（cap=0 のときは 0）
	Remaining int64   `json:"remaining"` // 残額 cap-spent（マイナスになり得る）
	Status    string  `json:"status"`    // under / near / over
}

// Progress 予算と当月のカテゴリ別合計から消化状況を計算する。副作用なし
func Progress(b models.Budget, monthTotals map[string]int64) BudgetProgress {
	spent := monthTotals[b.Category]

	var ratio float64
	if b.Amount > 0 {
		ratio = float64(spent) / float64(b.Amount)
	}

	status := StatusUnder
	switch {
	case ratio > 1:
		status = StatusOver
	case ratio > NearBudgetRatio:
		status = StatusNear
	}

	return BudgetProgress{
		Category:  b.Category,
		Cap:       b.Amount,
		Spent:     spent,
		Ratio:     ratio,
		Remaining: b.Amount - spent,
		Status:    status,
	}
}
