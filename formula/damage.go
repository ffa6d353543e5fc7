package formula

import (
	"math"

	"monbattle-ebiten/core"
)

// BaseDamage は補正前のダメージ量を求めます。
// floor(((2*level/5+2) * power * attack/defense)/50 + 2)
func BaseDamage(level, power, attack, defense int) int {
	if power <= 0 {
		return 0
	}
	defense = max(defense, 1)
	l := 2*float64(level)/5 + 2
	return int(math.Floor(l*float64(power)*float64(attack)/float64(defense)/50 + 2))
}

// Modifiers はダメージ式の各倍率です。ゼロ値ではなく NewModifiers から作成してください。
type Modifiers struct {
	MultiTarget   float64
	Weather       float64
	Critical      float64
	Random        float64
	STAB          float64
	Effectiveness float64
	Burn          float64
}

// NewModifiers はすべての倍率が 1.0 の Modifiers を返します。
func NewModifiers() Modifiers {
	return Modifiers{MultiTarget: 1, Weather: 1, Critical: 1, Random: 1, STAB: 1, Effectiveness: 1, Burn: 1}
}

// Product は全倍率の積です。
func (m Modifiers) Product() float64 {
	return m.MultiTarget * m.Weather * m.Critical * m.Random * m.STAB * m.Effectiveness * m.Burn
}

// FinalDamage は補正を掛けたダメージを求め、相手の残りHPで頭打ちにします。
// 相性が 0 でない限り最低 1 ダメージを与えます。
func FinalDamage(base int, mods Modifiers, targetHealth int) int {
	dmg := int(math.Floor(float64(base) * mods.Product()))
	if mods.Effectiveness > 0 && dmg < 1 {
		dmg = 1
	}
	return core.Clamp(dmg, 0, max(targetHealth, 0))
}

// WeatherFactor は天候による技タイプの倍率です。
func WeatherFactor(w core.Weather, moveType core.Type, boost, weaken float64) float64 {
	switch {
	case w == core.WeatherSun && moveType == core.TypeFire,
		w == core.WeatherRain && moveType == core.TypeWater:
		return boost
	case w == core.WeatherSun && moveType == core.TypeWater,
		w == core.WeatherRain && moveType == core.TypeFire:
		return weaken
	}
	return 1
}
