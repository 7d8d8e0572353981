package api

import (
	"strconv"
	"strings"
	"time"

	"kakeibo/models"
	"kakeibo/service"
	"kakeibo/store"

	"github.com/gin-gonic/gin"
)

// ExpenseHandler 支出レコード処理
type ExpenseHandler struct {
	ledger *store.Ledger
}

// NewExpenseHandler 支出レコード処理を作成
func NewExpenseHandler(ledger *store.Ledger) *ExpenseHandler {
	return &ExpenseHandler{ledger: ledger}
}

// CreateExpenseRequest 支出作成リクエスト
type CreateExpenseRequest struct {
	Amount   int64  `json:"amount" binding:"required,gt=0" example:"1500"`
	Category string `json:"category" binding:"required" example:"食費"`
	Memo     string `json:"memo" example:"コンビニでお菓子"`
	Date     string `json:"date" binding:"required" example:"2024-06-01"`
}

// UpdateExpenseRequest 支出更新リクエスト（変更可能な全フィールドを置き換える）
type UpdateExpenseRequest struct {
	Amount   int64  `json:"amount" binding:"required,gt=0" example:"1500"`
	Category string `json:"category" binding:"required" example:"食費"`
	Memo     string `json:"memo" example:"コンビニでお菓子"`
	Date     string `json:"date" binding:"required" example:"2024-06-01"`
}

// ExpenseListRequest 支出一覧リクエスト
type ExpenseListRequest struct {
	Page     int    `form:"page" example:"1"`
	PageSize int    `form:"page_size" example:"20"`
	Q        string `form:"q" example:"コンビニ"`
	Category string `form:"category" example:"食費"`
	Date     string `form:"date" example:"2024-06-01"`
	Month    string `form:"month" example:"2024-06"`
}

// validateExpenseFields 金額・カテゴリ・日付の共通バリデーション
// 問題があればユーザー向けメッセージを返す
func (h *ExpenseHandler) validateExpenseFields(amount int64, category, date string) (string, bool) {
	if amount <= 0 {
		return "金額は正の整数で入力してください", false
	}
	if category == "" {
		return "カテゴリを選択してください", false
	}
	if !h.ledger.HasCategory(category) {
		return "無効なカテゴリです。先にカテゴリを登録してください", false
	}
	if _, err := time.ParseInLocation(models.DateLayout, date, time.Local); err != nil {
		return "日付の形式が不正です。YYYY-MM-DD で指定してください", false
	}
	if date > time.Now().Format(models.DateLayout) {
		return "未来の日付は指定できません", false
	}
	return "", true
}

// Create 支出を登録
// @Summary 支出を登録
// @Description 新しい支出レコードを1件登録する
// @Tags 支出
// @Accept json
// @Produce json
// @Param request body CreateExpenseRequest true "支出情報"
// @Success 200 {object} Response{data=models.Expense} "登録成功"
// @Failure 400 {object} Response "リクエストパラメータ不正"
// @Router /api/v1/expenses [post]
func (h *ExpenseHandler) Create(c *gin.Context) {
	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "パラメータが不正です"))
		return
	}

	req.Category = strings.TrimSpace(req.Category)
	if msg, ok := h.validateExpenseFields(req.Amount, req.Category, req.Date); !ok {
		BadRequest(c, msg)
		return
	}

	expense := h.ledger.AddExpense(models.Expense{
		Amount:   req.Amount,
		Category: req.Category,
		Memo:     req.Memo,
		Date:     req.Date,
	})

	SuccessWithMessage(c, "登録しました", expense)
}

// List 支出一覧を取得
// @Summary 支出一覧を取得
// @Description 支出一覧を日付降順で取得する。キーワード・カテゴリ・日付・月での絞り込みとページングに対応
// @Tags 支出
// @Produce json
// @Param page query int false "ページ番号" default(1)
// @Param page_size query int false "1ページあたりの件数" default(20)
// @Param q query string false "キーワード（メモ・カテゴリ名の部分一致）"
// @Param category query string false "カテゴリで絞り込み"
// @Param date query string false "日付で絞り込み (2024-06-01)"
// @Param month query string false "月で絞り込み (2024-06)"
// @Success 200 {object} Response{data=PageResponse{list=[]models.Expense}} "取得成功"
// @Router /api/v1/expenses [get]
func (h *ExpenseHandler) List(c *gin.Context) {
	var req ExpenseListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "パラメータが不正です"))
		return
	}

	if req.Page <= 0 {
		req.Page = 1
	}
	if req.PageSize <= 0 {
		req.PageSize = 20
	}
	if req.PageSize > 100 {
		req.PageSize = 100
	}

	// 台帳の並び（日付降順）を維持したまま絞り込む
	filtered := make([]models.Expense, 0)
	for _, e := range h.ledger.Expenses() {
		if req.Category != "" && e.Category != req.Category {
			continue
		}
		if req.Date != "" && e.Date != req.Date {
			continue
		}
		if req.Month != "" && !e.InMonth(req.Month) {
			continue
		}
		if !e.Matches(req.Q) {
			continue
		}
		filtered = append(filtered, e)
	}

	total := len(filtered)
	start := (req.Page - 1) * req.PageSize
	if start > total {
		start = total
	}
	end := start + req.PageSize
	if end > total {
		end = total
	}

	Success(c, PageResponse{
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
		List:     filtered[start:end],
	})
}

// Get 支出を1件取得
// @Summary 支出を1件取得
// @Description ID を指定して支出レコードの詳細を取得する
// @Tags 支出
// @Produce json
// @Param id path int true "支出ID"
// @Success 200 {object} Response{data=models.Expense} "取得成功"
// @Failure 404 {object} Response "レコードが存在しない"
// @Router /api/v1/expenses/{id} [get]
func (h *ExpenseHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		BadRequest(c, "無効なIDです")
		return
	}

	expense, found := h.ledger.FindExpense(id)
	if !found {
		NotFound(c, "レコードが存在しません")
		return
	}

	Success(c, expense)
}

// Update 支出を更新
// @Summary 支出を更新
// @Description ID を指定して支出レコードを置き換える（ID は変更されない）
// @Tags 支出
// @Accept json
// @Produce json
// @Param id path int true "支出ID"
// @Param request body UpdateExpenseRequest true "支出情報"
// @Success 200 {object} Response{data=models.Expense} "更新成功"
// @Failure 400 {object} Response "リクエストパラメータ不正"
// @Failure 404 {object} Response "レコードが存在しない"
// @Router /api/v1/expenses/{id} [put]
func (h *ExpenseHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		BadRequest(c, "無効なIDです")
		return
	}

	var req UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "パラメータが不正です"))
		return
	}

	req.Category = strings.TrimSpace(req.Category)
	if msg, ok := h.validateExpenseFields(req.Amount, req.Category, req.Date); !ok {
		BadRequest(c, msg)
		return
	}

	expense := models.Expense{
		ID:       id,
		Amount:   req.Amount,
		Category: req.Category,
		Memo:     req.Memo,
		Date:     req.Date,
	}
	if !h.ledger.UpdateExpense(expense) {
		NotFound(c, "レコードが存在しません")
		return
	}

	SuccessWithMessage(c, "更新しました", expense)
}

// Delete 支出を削除
// @Summary 支出を削除
// @Description ID を指定して支出レコードを削除する
// @Tags 支出
// @Produce json
// @Param id path int true "支出ID"
// @Success 200 {object} Response "削除成功"
// @Failure 404 {object} Response "レコードが存在しない"
// @Router /api/v1/expenses/{id} [delete]
func (h *ExpenseHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		BadRequest(c, "無効なIDです")
		return
	}

	if !h.ledger.DeleteExpense(id) {
		NotFound(c, "レコードが存在しません")
		return
	}

	SuccessWithMessage(c, "削除しました", nil)
}

// SuggestCategory メモからカテゴリを推測
// @Summary メモからカテゴリを推測
// @Description メモの内容に含まれるキーワードからカテゴリを1件推測する。該当が無い場合や、推測したカテゴリが現在のカテゴリ集合に無い場合は空を返す
// @Tags 支出
// @Produce json
// @Param memo query string true "メモ"
// @Success 200 {object} Response "取得成功。category が空文字のときは推測なし"
// @Router /api/v1/expenses/suggest-category [get]
func (h *ExpenseHandler) SuggestCategory(c *gin.Context) {
	memo := c.Query("memo")

	category, ok := service.SuggestCategory(memo)
	// 推測したカテゴリが削除済みなら提案しない
	if !ok || !h.ledger.HasCategory(category) {
		category = ""
	}

	Success(c, gin.H{"category": category})
}
