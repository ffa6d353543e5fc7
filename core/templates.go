package core

// --- Static templates (immutable, shared by reference) ---

// LearnsetEntry は指定レベルで覚える技です。
type LearnsetEntry struct {
	Level int    `yaml:"level" json:"level"`
	Move  string `yaml:"move" json:"move"`
}

// Species は種族のテンプレートです。
type Species struct {
	ID        string          `yaml:"id" json:"id"`
	Name      string          `yaml:"name" json:"name"`
	Primary   Type            `yaml:"primary" json:"primary"`
	Secondary Type            `yaml:"secondary,omitempty" json:"secondary,omitempty"`
	Base      BaseStats       `yaml:"base" json:"base"`
	Growth    GrowthGroup     `yaml:"growth" json:"growth"`
	BaseExp   int             `yaml:"base_exp" json:"base_exp"`
	CatchRate int             `yaml:"catch_rate" json:"catch_rate"`
	Ability   string          `yaml:"ability" json:"ability"`
	Learnset  []LearnsetEntry `yaml:"learnset" json:"learnset"`
}

// Types は第1・第2タイプを返します。第2タイプが未設定の場合は TypeNone になります。
func (s *Species) Types() [2]Type {
	second := s.Secondary
	if second == "" {
		second = TypeNone
	}
	return [2]Type{s.Primary, second}
}

// StatChange は技によるランク変化です。
type StatChange struct {
	Stat   Stat `yaml:"stat" json:"stat"`
	Stages int  `yaml:"stages" json:"stages"`
	Self   bool `yaml:"self,omitempty" json:"self,omitempty"`
}

// MoveTemplate は技のテンプレートです。
// Accuracy が 0 の技は必ず命中し、MaxUses が 0 の技は回数無制限です。
type MoveTemplate struct {
	ID       string       `yaml:"id" json:"id"`
	Name     string       `yaml:"name" json:"name"`
	Type     Type         `yaml:"type" json:"type"`
	Category Category     `yaml:"category" json:"category"`
	Power    int          `yaml:"power" json:"power"`
	Accuracy int          `yaml:"accuracy" json:"accuracy"`
	Target   TargetMode   `yaml:"target" json:"target"`
	MaxUses  int          `yaml:"max_uses" json:"max_uses"`
	Behavior MoveBehavior `yaml:"behavior" json:"behavior"`

	// 振る舞いごとのパラメータ
	Status         Status       `yaml:"status,omitempty" json:"status,omitempty"`
	Chance         int          `yaml:"chance,omitempty" json:"chance,omitempty"`
	StatChanges    []StatChange `yaml:"stat_changes,omitempty" json:"stat_changes,omitempty"`
	DrainRatio     float64      `yaml:"drain_ratio,omitempty" json:"drain_ratio,omitempty"`
	RecoilRatio    float64      `yaml:"recoil_ratio,omitempty" json:"recoil_ratio,omitempty"`
	HealRatio      float64      `yaml:"heal_ratio,omitempty" json:"heal_ratio,omitempty"`
	Weather        Weather      `yaml:"weather,omitempty" json:"weather,omitempty"`
	BallMultiplier float64      `yaml:"ball_multiplier,omitempty" json:"ball_multiplier,omitempty"`
}

// IsDamaging は威力を持つ攻撃技かどうかを返します。
func (m *MoveTemplate) IsDamaging() bool {
	return m.Category != CategoryStatus
}

// AbilityTemplate は特性のテンプレートです。
type AbilityTemplate struct {
	ID          string          `yaml:"id" json:"id"`
	Name        string          `yaml:"name" json:"name"`
	Behavior    AbilityBehavior `yaml:"behavior" json:"behavior"`
	Type        Type            `yaml:"type,omitempty" json:"type,omitempty"`
	Weather     Weather         `yaml:"weather,omitempty" json:"weather,omitempty"`
	Description string          `yaml:"description,omitempty" json:"description,omitempty"`
}
