package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	defer func() { GlobalConfig = nil }()

	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "kakeibo.db", cfg.Database.Path)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestSafeErrorMessage(t *testing.T) {
	fallback := "操作に失敗しました"
	testErr := errors.New("internal database error")

	// nil err は fallback を返す
	assert.Equal(t, fallback, SafeErrorMessage(nil, fallback))

	// release モードでは fallback を返し、エラー詳細を出さない
	GlobalConfig = &Config{Server: ServerConfig{Mode: "release"}}
	defer func() { GlobalConfig = nil }()
	assert.Equal(t, fallback, SafeErrorMessage(testErr, fallback))

	// debug モードでは err.Error() を返す
	GlobalConfig = &Config{Server: ServerConfig{Mode: "debug"}}
	assert.Equal(t, "internal database error", SafeErrorMessage(testErr, fallback))

	// GlobalConfig が nil なら err.Error() を返す（開発環境扱い）
	GlobalConfig = nil
	assert.Equal(t, "internal database error", SafeErrorMessage(testErr, fallback))
}
