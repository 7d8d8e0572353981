package router

import (
	"time"

	"kakeibo/api"
	"kakeibo/config"
	_ "kakeibo/docs"
	"kakeibo/middleware"
	"kakeibo/store"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter ルーティングを設定
func SetupRouter(cfg *config.Config, ledger *store.Ledger) *gin.Engine {
	// 実行モードを設定
	gin.SetMode(cfg.Server.Mode)

	r := gin.Default()

	// CORS ミドルウェア
	r.Use(CORSMiddleware())

	// Swagger ドキュメント
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	expenseHandler := api.NewExpenseHandler(ledger)
	categoryHandler := api.NewCategoryHandler(ledger)
	budgetHandler := api.NewBudgetHandler(ledger)
	statsHandler := api.NewStatsHandler(ledger)
	exportHandler := api.NewExportHandler(ledger)

	// API v1 ルートグループ（モバイルアプリ向け）
	v1 := r.Group("/api/v1")
	{
		// 支出
		expenses := v1.Group("/expenses")
		{
			expenses.GET("", expenseHandler.List)
			expenses.GET("/suggest-category", expenseHandler.SuggestCategory)
			expenses.GET("/:id", expenseHandler.Get)
		}

		// カテゴリ
		v1.GET("/categories", categoryHandler.List)

		// 予算
		budgets := v1.Group("/budgets")
		{
			budgets.GET("", budgetHandler.List)
			budgets.GET("/progress", budgetHandler.Progress)
		}

		// 統計（円グラフ・カレンダー用）
		statistics := v1.Group("/statistics")
		{
			statistics.GET("/categories", statsHandler.Categories)
			statistics.GET("/calendar", statsHandler.Calendar)
		}

		// エクスポート
		export := v1.Group("/export")
		{
			export.GET("/csv", exportHandler.ExportCSV)
			export.GET("/json", exportHandler.ExportJSON)
			export.GET("/excel", exportHandler.ExportExcel)
		}

		// 更新系は流量制限を掛ける
		writes := v1.Group("")
		writes.Use(middleware.WriteRateLimit(120, time.Minute))
		{
			writes.POST("/expenses", expenseHandler.Create)
			writes.PUT("/expenses/:id", expenseHandler.Update)
			writes.DELETE("/expenses/:id", expenseHandler.Delete)
			writes.POST("/categories", categoryHandler.Create)
			writes.DELETE("/categories/:name", categoryHandler.Delete)
			writes.PUT("/budgets", budgetHandler.Upsert)
		}
	}

	// ヘルスチェック
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	return r
}

// CORSMiddleware CORS ミドルウェア
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
