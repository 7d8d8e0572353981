package logging

import (
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/subosito/gotenv"
)

// Logger プロセス共通のロガー
var Logger = logrus.New()

// Init ロガーを初期化する
// mode が release のときは JSON 形式で出力する
func Init(mode, level string) {
	// .env があれば環境変数として読み込む（無ければ無視）
	_ = gotenv.Load()

	if mode == "release" {
		Logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	switch strings.ToLower(level) {
	case "debug":
		Logger.SetLevel(logrus.DebugLevel)
	case "info":
		Logger.SetLevel(logrus.InfoLevel)
	case "warning", "warn":
		Logger.SetLevel(logrus.WarnLevel)
	case "error":
		Logger.SetLevel(logrus.ErrorLevel)
	default:
		Logger.SetLevel(logrus.InfoLevel)
	}
}
