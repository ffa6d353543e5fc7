package core

// --- Enums and Constants ---

type Type string
type Status string
type Category string
type TargetMode string
type Weather string
type Outcome string
type Trigger string
type GrowthGroup string
type Gender string
type Sound string
type Side int

const (
	SideAlly  Side = 0
	SideEnemy Side = 1
)

// Opposite は相手側の陣営を返します。
func (s Side) Opposite() Side {
	if s == SideAlly {
		return SideEnemy
	}
	return SideAlly
}

func (s Side) String() string {
	if s == SideAlly {
		return "ally"
	}
	return "enemy"
}

const (
	TypeNone     Type = "None"
	TypeNormal   Type = "Normal"
	TypeGrass    Type = "Grass"
	TypeWater    Type = "Water"
	TypeFire     Type = "Fire"
	TypeElectric Type = "Electric"
	TypeGround   Type = "Ground"
	TypeFlying   Type = "Flying"
	TypeIce      Type = "Ice"
	TypeRock     Type = "Rock"
	TypePoison   Type = "Poison"
	TypeBug      Type = "Bug"
	TypeSteel    Type = "Steel"
)

// Types は相性表に載っている全タイプです。
var Types = []Type{
	TypeNormal, TypeGrass, TypeWater, TypeFire, TypeElectric, TypeGround,
	TypeFlying, TypeIce, TypeRock, TypePoison, TypeBug, TypeSteel,
}

// Valid reports whether t is a chart type or TypeNone.
func (t Type) Valid() bool {
	if t == TypeNone || t == "" {
		return true
	}
	for _, known := range Types {
		if t == known {
			return true
		}
	}
	return false
}

const (
	StatusNone      Status = "None"
	StatusBurned    Status = "Burned"
	StatusPoisoned  Status = "Poisoned"
	StatusToxic     Status = "Toxic"
	StatusFrozen    Status = "Frozen"
	StatusParalyzed Status = "Paralyzed"
	StatusSleeping  Status = "Sleeping"
	StatusFainted   Status = "Fainted"
)

// IsAilment は治療可能な状態異常かどうかを返します。
func (s Status) IsAilment() bool {
	switch s {
	case StatusBurned, StatusPoisoned, StatusToxic, StatusFrozen, StatusParalyzed, StatusSleeping:
		return true
	}
	return false
}

// Noun は実況用の状態異常名です。
func (s Status) Noun() string {
	switch s {
	case StatusBurned:
		return "burn"
	case StatusPoisoned, StatusToxic:
		return "poison"
	case StatusFrozen:
		return "freeze"
	case StatusParalyzed:
		return "paralysis"
	case StatusSleeping:
		return "sleep"
	}
	return "condition"
}

const (
	CategoryPhysical Category = "Physical"
	CategorySpecial  Category = "Special"
	CategoryStatus   Category = "Status"
)

const (
	TargetSelf     TargetMode = "Self"
	TargetSingle   TargetMode = "Single"
	TargetAdjacent TargetMode = "Adjacent"
	TargetAllies   TargetMode = "Allies"
	TargetEnemies  TargetMode = "Enemies"
	TargetAll      TargetMode = "All"
)

// NeedsTarget は主対象の指定が必要な範囲かどうかを返します。
func (m TargetMode) NeedsTarget() bool {
	return m == TargetSingle || m == TargetAdjacent
}

const (
	WeatherNone      Weather = "None"
	WeatherSun       Weather = "Sun"
	WeatherRain      Weather = "Rain"
	WeatherSandstorm Weather = "Sandstorm"
	WeatherHail      Weather = "Hail"
)

const (
	OutcomeUndecided Outcome = "Undecided"
	OutcomeWin       Outcome = "Win"
	OutcomeLoss      Outcome = "Loss"
	OutcomeEscaped   Outcome = "Escaped"
	OutcomeCaptured  Outcome = "Captured"
)

// Decided は勝敗が確定しているかどうかを返します。
func (o Outcome) Decided() bool {
	return o != OutcomeUndecided && o != ""
}

const (
	TriggerStartOfTurn Trigger = "StartOfTurn"
	TriggerEndOfTurn   Trigger = "EndOfTurn"
	TriggerOnDeath     Trigger = "OnDeath"
)

const (
	GrowthErratic     GrowthGroup = "Erratic"
	GrowthFast        GrowthGroup = "Fast"
	GrowthMediumFast  GrowthGroup = "MediumFast"
	GrowthMediumSlow  GrowthGroup = "MediumSlow"
	GrowthSlow        GrowthGroup = "Slow"
	GrowthFluctuating GrowthGroup = "Fluctuating"
)

const (
	GenderMale       Gender = "Male"
	GenderFemale     Gender = "Female"
	GenderGenderless Gender = "Genderless"
)

const (
	SoundHit              Sound = "Hit"
	SoundNotVeryEffective Sound = "NotVeryEffective"
	SoundSuperEffective   Sound = "SuperEffective"
	SoundLevelUp          Sound = "LevelUp"
)

const (
	MinStage = -6
	MaxStage = 6
	MinLevel = 1
	MaxLevel = 100
	MaxMoves = 4
	MaxStat  = 999
)
