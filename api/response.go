package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response 共通レスポンス構造
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// PageResponse ページングレスポンス構造
type PageResponse struct {
	Total    int         `json:"total"`
	Page     int         `json:"page"`
	PageSize int         `json:"page_size"`
	List     interface{} `json:"list"`
}

// Success 成功レスポンス
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    200,
		Message: "success",
		Data:    data,
	})
}

// SuccessWithMessage メッセージ付き成功レスポンス
func SuccessWithMessage(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    200,
		Message: message,
		Data:    data,
	})
}

// Error エラーレスポンス
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, Response{
		Code:    code,
		Message: message,
	})
}

// BadRequest 400 エラーレスポンス
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// InternalError 500 エラーレスポンス
func InternalError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, message)
}

// NotFound 404 エラーレスポンス
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}
