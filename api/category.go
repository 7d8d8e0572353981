package api

import (
	"kakeibo/store"

	"github.com/gin-gonic/gin"
)

// CategoryHandler カテゴリ管理
type CategoryHandler struct {
	ledger *store.Ledger
}

// NewCategoryHandler カテゴリ管理を作成
func NewCategoryHandler(ledger *store.Ledger) *CategoryHandler {
	return &CategoryHandler{ledger: ledger}
}

// CategoryCreateRequest カテゴリ作成リクエスト
type CategoryCreateRequest struct {
	Name string `json:"name" binding:"required,min=1,max=50" example:"ペット"`
}

// List カテゴリ一覧を取得
// @Summary カテゴリ一覧を取得
// @Description 現在のカテゴリ一覧を登録順で取得する
// @Tags カテゴリ
// @Produce json
// @Success 200 {object} Response{data=[]string} "取得成功"
// @Router /api/v1/categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	Success(c, h.ledger.Categories())
}

// Create カテゴリを追加
// @Summary カテゴリを追加
// @Description カテゴリを末尾に追加する。空文字と重複は登録できない
// @Tags カテゴリ
// @Accept json
// @Produce json
// @Param request body CategoryCreateRequest true "カテゴリ情報"
// @Success 200 {object} Response{data=[]string} "追加成功"
// @Failure 400 {object} Response "名前が空か、既に存在する"
// @Router /api/v1/categories [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	var req CategoryCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "パラメータが不正です"))
		return
	}

	if err := h.ledger.AddCategory(req.Name); err != nil {
		BadRequest(c, err.Error())
		return
	}

	SuccessWithMessage(c, "追加しました", h.ledger.Categories())
}

// Delete カテゴリを削除
// @Summary カテゴリを削除
// @Description カテゴリを集合から外す。同名カテゴリを参照している既存の支出・予算はそのまま残る
// @Tags カテゴリ
// @Produce json
// @Param name path string true "カテゴリ名"
// @Success 200 {object} Response{data=[]string} "削除成功"
// @Failure 404 {object} Response "カテゴリが存在しない"
// @Router /api/v1/categories/{name} [delete]
func (h *CategoryHandler) Delete(c *gin.Context) {
	name := c.Param("name")

	if !h.ledger.RemoveCategory(name) {
		NotFound(c, "カテゴリが存在しません")
		return
	}

	SuccessWithMessage(c, "削除しました", h.ledger.Categories())
}
