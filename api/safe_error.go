package api

import (
	"kakeibo/config"
)

// SafeErrorMessage release モードではクライアントに内部エラー詳細を出さない
func SafeErrorMessage(err error, fallback string) string {
	return config.SafeErrorMessage(err, fallback)
}
