package api

import (
	"sort"
	"strings"

	"kakeibo/service"
	"kakeibo/store"

	"github.com/gin-gonic/gin"
)

// StatsHandler 集計処理
type StatsHandler struct {
	ledger *store.Ledger
}

// NewStatsHandler 集計処理を作成
func NewStatsHandler(ledger *store.Ledger) *StatsHandler {
	return &StatsHandler{ledger: ledger}
}

// CategoryStat 円グラフ用のカテゴリ別集計1件
type CategoryStat struct {
	Category   string  `json:"category"`
	Total      int64   `json:"total"`
	Percentage float64 `json:"percentage"` // 総額に対する割合（%）
}

// DayStat カレンダー用の日別集計1件
type DayStat struct {
	Date  string `json:"date"`
	Total int64  `json:"total"`
	Tier  string `json:"tier"` // marked / heavy
}

// Categories カテゴリ別集計を取得
// @Summary カテゴリ別集計を取得
// @Description 円グラフ用のカテゴリ別支出合計を金額降順で取得する。month を指定するとその月分、省略すると全期間
// @Tags 統計
// @Produce json
// @Param month query string false "対象の月 (2024-06)。省略時は全期間"
// @Success 200 {object} Response "取得成功"
// @Router /api/v1/statistics/categories [get]
func (h *StatsHandler) Categories(c *gin.Context) {
	month := c.Query("month")

	var (
		totals map[string]int64
		grand  int64
	)
	if month != "" {
		totals, grand = service.MonthCategoryTotals(h.ledger.Expenses(), month)
	} else {
		totals = service.CategoryTotals(h.ledger.Expenses())
		for _, v := range totals {
			grand += v
		}
	}

	stats := make([]CategoryStat, 0, len(totals))
	for category, total := range totals {
		stat := CategoryStat{Category: category, Total: total}
		if grand > 0 {
			stat.Percentage = float64(total) / float64(grand) * 100
		}
		stats = append(stats, stat)
	}
	// 金額降順、同額はカテゴリ名順で安定させる
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Total != stats[j].Total {
			return stats[i].Total > stats[j].Total
		}
		return stats[i].Category < stats[j].Category
	})

	Success(c, gin.H{
		"month":          month,
		"total_amount":   grand,
		"category_stats": stats,
	})
}

// Calendar 日別集計を取得
// @Summary 日別集計を取得
// @Description カレンダー表示用に、指定した月の日別支出合計とマーカー段階を日付昇順で取得する。1日の合計が一定額を超えた日は heavy になる
// @Tags 統計
// @Produce json
// @Param month query string false "対象の月 (2024-06)。省略時は当月"
// @Success 200 {object} Response "取得成功"
// @Router /api/v1/statistics/calendar [get]
func (h *StatsHandler) Calendar(c *gin.Context) {
	month := c.Query("month")
	if month == "" {
		month = service.CurrentMonth()
	}

	totals := service.DailyTotals(h.ledger.Expenses())

	days := make([]DayStat, 0)
	for date, total := range totals {
		if !strings.HasPrefix(date, month) {
			continue
		}
		if total <= 0 {
			continue
		}
		days = append(days, DayStat{
			Date:  date,
			Total: total,
			Tier:  service.DayTier(total),
		})
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })

	Success(c, gin.H{
		"month": month,
		"days":  days,
	})
}
