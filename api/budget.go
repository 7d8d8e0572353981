package api

import (
	"strings"

	"kakeibo/models"
	"kakeibo/service"
	"kakeibo/store"

	"github.com/gin-gonic/gin"
)

// BudgetHandler 月次予算処理
type BudgetHandler struct {
	ledger *store.Ledger
}

// NewBudgetHandler 月次予算処理を作成
func NewBudgetHandler(ledger *store.Ledger) *BudgetHandler {
	return &BudgetHandler{ledger: ledger}
}

// UpsertBudgetRequest 予算設定リクエスト
type UpsertBudgetRequest struct {
	Category string `json:"category" binding:"required" example:"食費"`
	Amount   int64  `json:"amount" binding:"required,gt=0" example:"30000"`
}

// List 予算一覧を取得
// @Summary 予算一覧を取得
// @Description 設定済みのカテゴリ別月次予算の一覧を取得する
// @Tags 予算
// @Produce json
// @Success 200 {object} Response{data=[]models.Budget} "取得成功"
// @Router /api/v1/budgets [get]
func (h *BudgetHandler) List(c *gin.Context) {
	Success(c, h.ledger.Budgets())
}

// Upsert 予算を設定
// @Summary 予算を設定
// @Description カテゴリの月次予算を設定する。同じカテゴリに既に予算があれば上書きする
// @Tags 予算
// @Accept json
// @Produce json
// @Param request body UpsertBudgetRequest true "予算情報"
// @Success 200 {object} Response{data=models.Budget} "設定成功"
// @Failure 400 {object} Response "リクエストパラメータ不正"
// @Router /api/v1/budgets [put]
func (h *BudgetHandler) Upsert(c *gin.Context) {
	var req UpsertBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "パラメータが不正です"))
		return
	}

	req.Category = strings.TrimSpace(req.Category)
	if req.Category == "" {
		BadRequest(c, "カテゴリを選択してください")
		return
	}
	if !h.ledger.HasCategory(req.Category) {
		BadRequest(c, "無効なカテゴリです。先にカテゴリを登録してください")
		return
	}

	budget := models.Budget{Category: req.Category, Amount: req.Amount}
	h.ledger.UpsertBudget(budget)

	SuccessWithMessage(c, "設定しました", budget)
}

// Progress 予算の消化状況を取得
// @Summary 予算の消化状況を取得
// @Description 指定した月の支出実績と照らしたカテゴリ別予算の消化状況を取得する。month を省略すると当月
// @Tags 予算
// @Produce json
// @Param month query string false "対象の月 (2024-06)。省略時は当月"
// @Success 200 {object} Response{data=[]service.BudgetProgress} "取得成功"
// @Router /api/v1/budgets/progress [get]
func (h *BudgetHandler) Progress(c *gin.Context) {
	month := c.Query("month")
	if month == "" {
		month = service.CurrentMonth()
	}

	totals, _ := service.MonthCategoryTotals(h.ledger.Expenses(), month)

	budgets := h.ledger.Budgets()
	progress := make([]service.BudgetProgress, 0, len(budgets))
	for _, b := range budgets {
		progress = append(progress, service.Progress(b, totals))
	}

	Success(c, gin.H{
		"month": month,
		"list":  progress,
	})
}
