package config

import _ "embed"

// DefaultConfigYAML 組み込みデフォルト設定
//
//go:embed default.yaml
var DefaultConfigYAML []byte
