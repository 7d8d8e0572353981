package main

import (
	"flag"
	"log"
	"strings"

	"kakeibo/config"
	"kakeibo/database"
	"kakeibo/logging"
	"kakeibo/router"
	"kakeibo/store"
)

// @title 家計簿 API
// @version 1.0
// @description 個人向け家計簿アプリの API。支出の記録・検索、カテゴリ別集計、カレンダー集計、カテゴリ別の月次予算管理に対応
// @host localhost:8080
// @BasePath /

var (
	configFile  string
	port        string
	showVersion bool
)

func init() {
	flag.StringVar(&configFile, "config", "", "外部設定ファイルのパス（省略可）")
	flag.StringVar(&configFile, "c", "", "外部設定ファイルのパス（短縮形）")
	flag.StringVar(&port, "port", "", "待ち受けポート。例: 8080 または :8080")
	flag.StringVar(&port, "p", "", "待ち受けポート（短縮形）")
	flag.BoolVar(&showVersion, "version", false, "バージョン情報を表示")
	flag.BoolVar(&showVersion, "v", false, "バージョン情報を表示（短縮形）")
}

func main() {
	flag.Parse()

	if showVersion {
		log.Println("家計簿 API v1.0.0")
		return
	}

	// 設定を読み込む（組み込みデフォルト + 外部設定での上書き）
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		log.Fatalf("設定の読み込みに失敗: %v", err)
	}

	// コマンドライン引数でポートを上書き
	if port != "" {
		if !strings.HasPrefix(port, ":") {
			port = ":" + port
		}
		cfg.Server.Port = port
		log.Printf("コマンドラインで指定されたポート: %s", port)
	}

	// 設定内容を表示
	config.PrintConfig()

	// ロガーを初期化
	logging.Init(cfg.Server.Mode, cfg.Log.Level)

	// データベースを初期化
	if err := database.Init(cfg); err != nil {
		log.Fatalf("データベース初期化に失敗: %v", err)
	}

	// 台帳をストアから復元してから待ち受けを開始する
	// （読み込み完了前に変更操作を受け付けないため）
	ledger := store.NewLedger(database.NewKVStore())
	ledger.Load()
	defer ledger.Close()

	// ルーティングを設定
	r := router.SetupRouter(cfg, ledger)

	// サーバーを起動
	log.Printf("==========================================")
	log.Printf("  📒 家計簿 API を起動しました")
	log.Printf("==========================================")
	log.Printf("  Swagger:  http://localhost%s/swagger/index.html", cfg.Server.Port)
	log.Printf("  API:      http://localhost%s/api/v1/", cfg.Server.Port)
	log.Printf("==========================================")

	if err := r.Run(cfg.Server.Port); err != nil {
		log.Fatalf("サーバー起動に失敗: %v", err)
	}
}
