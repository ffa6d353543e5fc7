package data

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadConfig は設定ファイルを読み込み、既定値に上書きした Config を返します。
// ファイルが存在しない場合は埋め込みの設定を使います。
func LoadConfig(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		raw, err = assets.ReadFile(assetConfig)
	}
	if err != nil {
		return Config{}, fmt.Errorf("設定ファイルの読み込みに失敗しました: %w", err)
	}
	cfg, err := ParseConfig(raw)
	if err != nil {
		return Config{}, err
	}
	applyEnvOverrides(&cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("設定ファイルが不正です: %w", err)
	}
	return cfg, nil
}

// ParseConfig は YAML を既定値の上にデコードします。
func ParseConfig(raw []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("設定ファイルのYAMLパースに失敗しました: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("設定ファイルが不正です: %w", err)
	}
	return cfg, nil
}

// applyEnvOverrides は環境変数による上書きを反映します。解釈できない値は無視します。
func applyEnvOverrides(cfg *Config) {
	cfg.Battle.Seed = envUint("MONBATTLE_SEED", cfg.Battle.Seed)
	cfg.Battle.Trainer = envBool("MONBATTLE_TRAINER", cfg.Battle.Trainer)
	if v := strings.TrimSpace(os.Getenv("MONBATTLE_LOG_LEVEL")); v != "" {
		cfg.Log.Level = v
	}
}

func envUint(key string, fallback uint64) uint64 {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.ParseUint(strings.TrimSpace(v), 10, 64)
	if err != nil {
		return fallback
	}
	return n
}

func envBool(key string, fallback bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return b
}
