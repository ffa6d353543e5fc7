package system

import (
	"testing"

	"monbattle-ebiten/core"
	"monbattle-ebiten/data"
	"monbattle-ebiten/domain"
	"monbattle-ebiten/formula"
)

// strike は威力80・命中100の無属性物理技です。
func strike(mode core.TargetMode) *domain.Move {
	return domain.NewMove(&core.MoveTemplate{
		ID: "strike", Name: "Strike", Type: core.TypeNormal, Category: core.CategoryPhysical,
		Power: 80, Accuracy: 100, Target: mode, MaxUses: 20, Behavior: core.MoveDamage,
	}, DamageMove{})
}

// level50Pair は攻撃100の炎タイプと防御100の水タイプを用意します。無属性技はどちらとも一致せず等倍です。
func level50Pair() (user, target *domain.Combatant) {
	user = newMon("Cindrel", core.TypeFire, 50)
	user.Stats.Attack = 100
	target = newMon("Aquill", core.TypeWater, 50)
	target.Stats.Defense = 100
	target.Stats.HP, target.Health = 500, 500
	return user, target
}

func TestDamageCalculatorDeterministic(t *testing.T) {
	user, target := level50Pair()

	// floor((22*80*100/100)/50 + 2) = 37
	dc := NewDamageCalculator(data.DefaultBalance(), &scriptedRand{def: 1.0}, nopLogger{})
	res := dc.Calculate(DamageInput{Move: strike(core.TargetSingle), User: user, Target: target, TargetCount: 1, Weather: core.WeatherNone})
	if res.Critical {
		t.Fatal("roll 1.0 must not crit")
	}
	if res.Base != 37 || res.Damage != 37 {
		t.Errorf("damage = %d (base %d), want 37", res.Damage, res.Base)
	}
	if res.Effectiveness != 1 || res.Modifiers.STAB != 1 || res.Modifiers.Product() != 1 {
		t.Errorf("modifiers = %+v", res.Modifiers)
	}

	crit := NewDamageCalculator(data.DefaultBalance(), &scriptedRand{floats: []float64{0}, def: 1.0}, nopLogger{})
	if res := crit.Calculate(DamageInput{Move: strike(core.TargetSingle), User: user, Target: target, TargetCount: 1}); !res.Critical || res.Damage != 55 {
		t.Errorf("critical damage = %d (crit %v), want 55", res.Damage, res.Critical)
	}
}

func TestDamageCalculatorMultiTargetFactor(t *testing.T) {
	user, target := level50Pair()
	tests := []struct {
		mode  core.TargetMode
		count int
		want  int
	}{
		{core.TargetAdjacent, 1, 37},
		{core.TargetAdjacent, 2, 27},
		{core.TargetEnemies, 2, 37},
		{core.TargetAll, 3, 37},
	}
	for _, tt := range tests {
		dc := NewDamageCalculator(data.DefaultBalance(), &scriptedRand{def: 1.0}, nopLogger{})
		res := dc.Calculate(DamageInput{Move: strike(tt.mode), User: user, Target: target, TargetCount: tt.count})
		if res.Damage != tt.want {
			t.Errorf("%s x%d: damage = %d (mult %v), want %d", tt.mode, tt.count, res.Damage, res.Modifiers.MultiTarget, tt.want)
		}
	}
}

func TestDamageCalculatorClampsToHealth(t *testing.T) {
	user := newMon("Cindrel", core.TypeFire, 50)
	target := newMon("Aquill", core.TypeWater, 50)
	target.Health = 3
	dc := NewDamageCalculator(data.DefaultBalance(), &scriptedRand{def: 1.0}, nopLogger{})
	if res := dc.Calculate(DamageInput{Move: tackle(), User: user, Target: target, TargetCount: 1}); res.Damage != 3 {
		t.Errorf("damage = %d, want the remaining 3", res.Damage)
	}
}

func TestCatchAbortsOnFirstFailure(t *testing.T) {
	target := newMon("Fluffwing", core.TypeNormal, 20)
	r := &scriptedRand{floats: []float64{0.10, 0.90, 0.10, 0.10}}
	res := NewCatchCalculator(r, nopLogger{}).Attempt(target, 1.0)

	want := formula.ShakeChance(formula.CatchRate(target.MaxHealth(), target.Health, 45, 1.0, core.StatusNone))
	if res.Chance != want {
		t.Errorf("chance = %v, want %v", res.Chance, want)
	}
	if res.Shakes != 1 || res.Caught {
		t.Errorf("shakes %d caught %v", res.Shakes, res.Caught)
	}
	if len(r.floats) != 2 {
		t.Errorf("consumed %d rolls, want 2", 4-len(r.floats))
	}

	lucky := NewCatchCalculator(&scriptedRand{def: 0}, nopLogger{}).Attempt(target, 1.0)
	if !lucky.Caught || lucky.Shakes != formula.CatchTrials {
		t.Errorf("all rolls 0: shakes %d caught %v", lucky.Shakes, lucky.Caught)
	}
}

func TestHitCalculator(t *testing.T) {
	user := newMon("Sproutle", core.TypeGrass, 10)
	target := newMon("Fluffwing", core.TypeNormal, 10)

	hc := NewHitCalculator(&scriptedRand{floats: []float64{0.99}}, nopLogger{})
	if !hc.Check(tackle(), user, target) {
		t.Error("accuracy 100 must hit a 0.99 roll")
	}

	target.Stages[core.StatEvasion] = 6
	hc = NewHitCalculator(&scriptedRand{floats: []float64{0.5}}, nopLogger{})
	if hc.Check(tackle(), user, target) {
		t.Error("+6 evasion (x1/3) must dodge a 0.5 roll")
	}

	hc = NewHitCalculator(&scriptedRand{floats: []float64{0.99}}, nopLogger{})
	if !hc.Check(runAway(), user, user) {
		t.Error("self-targeted moves always hit")
	}

	// Allies 範囲の技は使用者自身にも命中判定を行う
	cheer := domain.NewMove(&core.MoveTemplate{
		ID: "cheer", Name: "Cheer", Type: core.TypeNormal, Category: core.CategoryStatus,
		Accuracy: 50, Target: core.TargetAllies, Behavior: core.MoveDamage,
	}, DamageMove{})
	hc = NewHitCalculator(&scriptedRand{floats: []float64{0.9}}, nopLogger{})
	if hc.Check(cheer, user, user) {
		t.Error("accuracy 50 must miss the user on a 0.9 roll")
	}
	sure := domain.NewMove(&core.MoveTemplate{
		ID: "sure", Name: "Sure", Type: core.TypeNormal, Category: core.CategoryStatus,
		Accuracy: 0, Target: core.TargetAllies, Behavior: core.MoveDamage,
	}, DamageMove{})
	hc = NewHitCalculator(&scriptedRand{floats: []float64{0.99}}, nopLogger{})
	if !hc.Check(sure, user, target) {
		t.Error("accuracy 0 always hits")
	}
}
