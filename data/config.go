package data

import (
	"fmt"

	"monbattle-ebiten/core"
)

// Config はゲーム全体の設定を保持します。config.yaml から直接デシリアライズされます。
type Config struct {
	Battle  BattleConfig  `yaml:"battle" json:"battle"`
	Balance BalanceConfig `yaml:"balance" json:"balance"`
	Log     LogConfig     `yaml:"log" json:"log"`
	UI      UIConfig      `yaml:"ui" json:"ui"`
}

// BattleConfig は対戦の形式です。
type BattleConfig struct {
	Size    int          `yaml:"size" json:"size"`
	Trainer bool         `yaml:"trainer" json:"trainer"`
	Weather core.Weather `yaml:"weather" json:"weather"`
	// Seed が 0 の場合は起動時刻から乱数の種を決めます。
	Seed       uint64   `yaml:"seed" json:"seed"`
	AllyParty  []Member `yaml:"ally_party" json:"ally_party"`
	EnemyParty []Member `yaml:"enemy_party" json:"enemy_party"`
}

// Member はパーティの1体です。
type Member struct {
	Species string      `yaml:"species" json:"species"`
	Level   int         `yaml:"level" json:"level"`
	Gender  core.Gender `yaml:"gender,omitempty" json:"gender,omitempty"`
	Name    string      `yaml:"name,omitempty" json:"name,omitempty"`
}

// BalanceConfig はダメージ式などの定数です。
type BalanceConfig struct {
	CritMultiplier    float64 `yaml:"crit_multiplier" json:"crit_multiplier"`
	STABMultiplier    float64 `yaml:"stab_multiplier" json:"stab_multiplier"`
	MultiTargetFactor float64 `yaml:"multi_target_factor" json:"multi_target_factor"`
	BurnFactor        float64 `yaml:"burn_factor" json:"burn_factor"`
	RandomMin         float64 `yaml:"random_min" json:"random_min"`
	WeatherBoost      float64 `yaml:"weather_boost" json:"weather_boost"`
	WeatherWeaken     float64 `yaml:"weather_weaken" json:"weather_weaken"`
	TrainerExpFactor  float64 `yaml:"trainer_exp_factor" json:"trainer_exp_factor"`
	WeatherTurns      int     `yaml:"weather_turns" json:"weather_turns"`
	ThawChance        float64 `yaml:"thaw_chance" json:"thaw_chance"`
	FullParalysis     float64 `yaml:"full_paralysis" json:"full_paralysis"`
}

// LogConfig はログ出力の設定です。
type LogConfig struct {
	Level  string `yaml:"level" json:"level"`
	Format string `yaml:"format" json:"format"`
}

// UIConfig はデモ画面の設定です。
type UIConfig struct {
	Width         int `yaml:"width" json:"width"`
	Height        int `yaml:"height" json:"height"`
	MessageFrames int `yaml:"message_frames" json:"message_frames"`
}

// DefaultConfig は設定ファイルが無い場合に使う既定値です。
func DefaultConfig() Config {
	return Config{
		Battle: BattleConfig{
			Size:    1,
			Weather: core.WeatherNone,
		},
		Balance: DefaultBalance(),
		Log:     LogConfig{Level: "info", Format: "console"},
		UI:      UIConfig{Width: 640, Height: 480, MessageFrames: 45},
	}
}

// DefaultBalance は本家準拠の定数です。
func DefaultBalance() BalanceConfig {
	return BalanceConfig{
		CritMultiplier:    1.5,
		STABMultiplier:    1.5,
		MultiTargetFactor: 0.75,
		BurnFactor:        0.5,
		RandomMin:         0.85,
		WeatherBoost:      1.5,
		WeatherWeaken:     0.5,
		TrainerExpFactor:  1.5,
		WeatherTurns:      5,
		ThawChance:        0.2,
		FullParalysis:     0.25,
	}
}

// Validate は設定値の範囲をチェックします。エラーには問題のあるキーが含まれます。
func (c Config) Validate() error {
	if c.Battle.Size < 1 || c.Battle.Size > 3 {
		return fmt.Errorf("battle.size は 1〜3 で指定してください: %d", c.Battle.Size)
	}
	switch c.Battle.Weather {
	case core.WeatherNone, core.WeatherSun, core.WeatherRain, core.WeatherSandstorm, core.WeatherHail:
	default:
		return fmt.Errorf("battle.weather が不正です: %q", c.Battle.Weather)
	}
	for _, m := range append(append([]Member{}, c.Battle.AllyParty...), c.Battle.EnemyParty...) {
		if m.Level < core.MinLevel || m.Level > core.MaxLevel {
			return fmt.Errorf("battle.party.level は 1〜100 で指定してください: %s Lv%d", m.Species, m.Level)
		}
	}
	b := c.Balance
	checks := []struct {
		key string
		v   float64
	}{
		{"balance.crit_multiplier", b.CritMultiplier},
		{"balance.stab_multiplier", b.STABMultiplier},
		{"balance.multi_target_factor", b.MultiTargetFactor},
		{"balance.burn_factor", b.BurnFactor},
		{"balance.random_min", b.RandomMin},
		{"balance.weather_boost", b.WeatherBoost},
		{"balance.weather_weaken", b.WeatherWeaken},
		{"balance.trainer_exp_factor", b.TrainerExpFactor},
	}
	for _, chk := range checks {
		if chk.v <= 0 {
			return fmt.Errorf("%s は正の値で指定してください: %v", chk.key, chk.v)
		}
	}
	if b.RandomMin > 1 {
		return fmt.Errorf("balance.random_min は 1 以下で指定してください: %v", b.RandomMin)
	}
	if b.ThawChance < 0 || b.ThawChance > 1 || b.FullParalysis < 0 || b.FullParalysis > 1 {
		return fmt.Errorf("balance.thaw_chance / balance.full_paralysis は 0〜1 で指定してください")
	}
	if b.WeatherTurns < 0 {
		return fmt.Errorf("balance.weather_turns は 0 以上で指定してください: %d", b.WeatherTurns)
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if c.Log.Format != "console" && c.Log.Format != "json" {
		return fmt.Errorf("log.format は console か json で指定してください: %q", c.Log.Format)
	}
	return nil
}
