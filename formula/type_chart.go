package formula

import "monbattle-ebiten/core"

// typeChart は攻撃タイプ -> 防御タイプの倍率です。載っていない組み合わせは等倍です。
var typeChart = map[core.Type]map[core.Type]float64{
	core.TypeNormal: {core.TypeRock: 0.5, core.TypeSteel: 0.5},
	core.TypeGrass: {
		core.TypeGrass: 0.5, core.TypeWater: 2, core.TypeFire: 0.5, core.TypeGround: 2, core.TypeFlying: 0.5,
		core.TypeRock: 2, core.TypePoison: 0.5, core.TypeBug: 0.5, core.TypeSteel: 0.5,
	},
	core.TypeWater: {core.TypeGrass: 0.5, core.TypeWater: 0.5, core.TypeFire: 2, core.TypeGround: 2, core.TypeRock: 2},
	core.TypeFire: {
		core.TypeGrass: 2, core.TypeWater: 0.5, core.TypeFire: 0.5, core.TypeIce: 2, core.TypeRock: 0.5,
		core.TypeBug: 2, core.TypeSteel: 2,
	},
	core.TypeElectric: {core.TypeGrass: 0.5, core.TypeWater: 2, core.TypeElectric: 0.5, core.TypeGround: 0, core.TypeFlying: 2},
	core.TypeGround: {
		core.TypeGrass: 0.5, core.TypeFire: 2, core.TypeElectric: 2, core.TypeFlying: 0, core.TypeRock: 2,
		core.TypePoison: 2, core.TypeBug: 0.5, core.TypeSteel: 2,
	},
	core.TypeFlying: {core.TypeGrass: 2, core.TypeElectric: 0.5, core.TypeRock: 0.5, core.TypeBug: 2, core.TypeSteel: 0.5},
	core.TypeIce: {
		core.TypeGrass: 2, core.TypeWater: 0.5, core.TypeFire: 0.5, core.TypeGround: 2, core.TypeFlying: 2,
		core.TypeIce: 0.5, core.TypeSteel: 0.5,
	},
	core.TypeRock:   {core.TypeFire: 2, core.TypeGround: 0.5, core.TypeFlying: 2, core.TypeIce: 2, core.TypeBug: 2, core.TypeSteel: 0.5},
	core.TypePoison: {core.TypeGrass: 2, core.TypeGround: 0.5, core.TypeRock: 0.5, core.TypePoison: 0.5, core.TypeSteel: 0},
	core.TypeBug:    {core.TypeGrass: 2, core.TypeFire: 0.5, core.TypeFlying: 0.5, core.TypePoison: 0.5, core.TypeSteel: 0.5},
	core.TypeSteel:  {core.TypeWater: 0.5, core.TypeFire: 0.5, core.TypeElectric: 0.5, core.TypeIce: 2, core.TypeRock: 2, core.TypeSteel: 0.5},
}

// Matchup は単一タイプ同士の倍率です。TypeNone が絡む場合は等倍です。
func Matchup(attack, defend core.Type) float64 {
	if attack == core.TypeNone || defend == core.TypeNone || defend == "" {
		return 1
	}
	if m, ok := typeChart[attack][defend]; ok {
		return m
	}
	return 1
}

// Effectiveness は攻撃タイプと防御側の2タイプの倍率の積です。
func Effectiveness(attack core.Type, defender [2]core.Type) float64 {
	return Matchup(attack, defender[0]) * Matchup(attack, defender[1])
}
