package database

import (
	"errors"
	"fmt"
	"log"

	"kakeibo/config"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// KVEntry キー/バリュー形式のスナップショット1件
// 値には各コレクションの JSON 配列を文字列として保存する
type KVEntry struct {
	K string `gorm:"primaryKey;size:191"`
	V string `gorm:"type:longtext"`
}

// TableName テーブル名を設定
func (KVEntry) TableName() string {
	return "kv_entries"
}

// Init データベース接続を初期化
func Init(cfg *config.Config) error {
	var (
		dial gorm.Dialector
		err  error
	)

	switch cfg.Database.Driver {
	case "sqlite", "":
		// 端末ローカル保存。純 Go ドライバなので CGO 不要
		dial = sqlite.Open(cfg.Database.Path)
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=%s&parseTime=True&loc=Local",
			cfg.Database.Username,
			cfg.Database.Password,
			cfg.Database.Host,
			cfg.Database.Port,
			cfg.Database.DBName,
			cfg.Database.Charset,
		)
		dial = mysql.Open(dsn)
	default:
		return fmt.Errorf("未対応のデータベースドライバ: %s", cfg.Database.Driver)
	}

	DB, err = gorm.Open(dial, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return fmt.Errorf("データベース接続に失敗: %w", err)
	}

	if cfg.Database.Driver == "mysql" {
		sqlDB, err := DB.DB()
		if err != nil {
			return err
		}
		// コネクションプールの設定
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
	}

	// テーブルの自動マイグレーション
	if err := DB.AutoMigrate(&KVEntry{}); err != nil {
		return err
	}

	log.Println("データベース初期化成功")
	return nil
}

// Get キーに対応する値を取得する。未保存のキーは空文字列を返す
func Get(key string) (string, error) {
	var entry KVEntry
	if err := DB.First(&entry, "k = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("キー %s の読み込みに失敗: %w", key, err)
	}
	return entry.V, nil
}

// Set キーに値を保存する（UPSERT）
func Set(key, value string) error {
	entry := KVEntry{K: key, V: value}
	err := DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "k"}},
		DoUpdates: clause.AssignmentColumns([]string{"v"}),
	}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("キー %s の保存に失敗: %w", key, err)
	}
	return nil
}

// KVStore store.KV を満たすアダプタ
type KVStore struct{}

// NewKVStore KVStore を作成
func NewKVStore() *KVStore {
	return &KVStore{}
}

func (s *KVStore) Get(key string) (string, error) {
	return Get(key)
}

func (s *KVStore) Set(key, value string) error {
	return Set(key, value)
}
