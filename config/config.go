package config

import (
	"bytes"
	"fmt"
	"log"
	"strings"

	"github.com/spf13/viper"
)

// Config アプリ設定
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Log      LogConfig      `mapstructure:"log"`
}

// ServerConfig サーバー設定
type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

// DatabaseConfig データベース設定
// driver は mysql / sqlite のいずれか。sqlite の場合は path のみ使用する
type DatabaseConfig struct {
	Driver   string `mapstructure:"driver"`
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	Charset  string `mapstructure:"charset"`
	Path     string `mapstructure:"path"`
}

// LogConfig ログ設定
type LogConfig struct {
	Level string `mapstructure:"level"`
}

var (
	// GlobalConfig グローバル設定インスタンス
	GlobalConfig *Config
)

// LoadConfig 設定を読み込む
// 優先順位: 環境変数 > 外部設定ファイル > 組み込みデフォルト設定
// configPath: 外部設定ファイルのパス（省略可）
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	// 1. まず組み込みのデフォルト設定を読み込む
	if err := v.ReadConfig(bytes.NewReader(DefaultConfigYAML)); err != nil {
		return nil, fmt.Errorf("組み込み設定の読み込みに失敗: %w", err)
	}

	// 2. 外部設定ファイルがあれば上書きマージ（任意）
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.MergeInConfig(); err != nil {
			log.Printf("警告: 指定された設定ファイル %s を読めません: %v", configPath, err)
		} else {
			log.Printf("外部設定ファイルをマージしました: %s", configPath)
		}
	} else {
		external := viper.New()
		external.SetConfigName("config")
		external.SetConfigType("yaml")
		external.AddConfigPath(".")
		external.AddConfigPath("./config")
		external.AddConfigPath("/etc/kakeibo")
		external.AddConfigPath("$HOME/.kakeibo")

		if err := external.ReadInConfig(); err == nil {
			if err := v.MergeConfigMap(external.AllSettings()); err != nil {
				log.Printf("警告: 外部設定のマージに失敗: %v", err)
			} else {
				log.Printf("外部設定ファイルをマージしました: %s", external.ConfigFileUsed())
			}
		}
	}

	// 3. 環境変数での上書き（KAKEIBO_SERVER_PORT など）
	v.SetEnvPrefix("KAKEIBO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("設定の解析に失敗: %w", err)
	}

	if cfg.Database.Driver == "" {
		cfg.Database.Driver = "sqlite"
	}

	GlobalConfig = &cfg

	return &cfg, nil
}

// PrintConfig 現在の設定を出力（機密情報は伏せる）
func PrintConfig() {
	if GlobalConfig == nil {
		return
	}
	log.Printf("現在の設定:")
	log.Printf("  サーバー: %s (モード: %s)", GlobalConfig.Server.Port, GlobalConfig.Server.Mode)
	if GlobalConfig.Database.Driver == "sqlite" {
		log.Printf("  データベース: sqlite (%s)", GlobalConfig.Database.Path)
	} else {
		log.Printf("  データベース: %s@%s:%s/%s",
			GlobalConfig.Database.Username,
			GlobalConfig.Database.Host,
			GlobalConfig.Database.Port,
			GlobalConfig.Database.DBName)
	}
	log.Printf("  ログレベル: %s", GlobalConfig.Log.Level)
}

// SafeErrorMessage release モードではクライアントに内部エラー詳細を返さない
func SafeErrorMessage(err error, fallback string) string {
	if err == nil {
		return fallback
	}
	if GlobalConfig != nil && GlobalConfig.Server.Mode == "release" {
		return fallback
	}
	return err.Error()
}
