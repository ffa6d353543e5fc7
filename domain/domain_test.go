package domain

import (
	"testing"

	"monbattle-ebiten/core"
)

func testSpecies() *core.Species {
	return &core.Species{
		ID: "sproutle", Name: "Sproutle", Primary: core.TypeGrass, Secondary: core.TypePoison,
		Base:   core.BaseStats{HP: 45, Attack: 49, Defense: 49, SpAttack: 65, SpDefense: 65, Speed: 45},
		Growth: core.GrowthMediumSlow, BaseExp: 64, CatchRate: 45,
	}
}

func TestCombatantHealthClamp(t *testing.T) {
	c := NewCombatant(testSpecies(), 50, core.SideAlly)
	if c.Health != c.MaxHealth() || c.MaxHealth() != 105 {
		t.Fatalf("new combatant health = %d/%d", c.Health, c.MaxHealth())
	}
	if got := c.Damage(500); got != 105 || c.Health != 0 {
		t.Errorf("Damage(500) applied %d, health %d", got, c.Health)
	}
	if got := c.Heal(30); got != 30 {
		t.Errorf("Heal(30) applied %d", got)
	}
	if got := c.Heal(500); got != 75 || c.Health != c.MaxHealth() {
		t.Errorf("Heal overflow applied %d, health %d", got, c.Health)
	}
	c.SetHealth(-4)
	if c.Health != 0 {
		t.Errorf("SetHealth(-4) = %d", c.Health)
	}
}

func TestCombatantStageClamp(t *testing.T) {
	c := NewCombatant(testSpecies(), 10, core.SideAlly)
	if got := c.ModifyStage(core.StatAttack, 4); got != 4 {
		t.Errorf("first raise = %d", got)
	}
	if got := c.ModifyStage(core.StatAttack, 4); got != 2 {
		t.Errorf("second raise must clamp at +6, applied %d", got)
	}
	if got := c.ModifyStage(core.StatAttack, 1); got != 0 {
		t.Errorf("raise at +6 applied %d", got)
	}
	if got := c.ModifyStage(core.StatEvasion, -9); got != -6 {
		t.Errorf("drop must clamp at -6, applied %d", got)
	}
	c.ResetStages()
	if c.Stages[core.StatAttack] != 0 || c.Stages[core.StatEvasion] != 0 {
		t.Errorf("stages not reset: %v", c.Stages)
	}
}

func TestEffectiveSpeedParalysis(t *testing.T) {
	c := NewCombatant(testSpecies(), 50, core.SideAlly)
	full := c.EffectiveSpeed()
	c.Status = core.StatusParalyzed
	if got := c.EffectiveSpeed(); got != full/2 {
		t.Errorf("paralysed speed = %v, want %v", got, full/2)
	}
}

func TestCombatantNewHasLevelExp(t *testing.T) {
	c := NewCombatant(testSpecies(), 10, core.SideAlly)
	if c.Exp != 560 { // 6/5*1000 - 1500 + 1000 - 140
		t.Errorf("exp at level 10 = %d", c.Exp)
	}
	if !c.HasType(core.TypePoison) || c.HasType(core.TypeFire) || c.HasType(core.TypeNone) {
		t.Error("HasType mismatch")
	}
}

func TestMoveUses(t *testing.T) {
	limited := NewMove(&core.MoveTemplate{ID: "tackle", Power: 40, MaxUses: 2}, nil)
	limited.Spend()
	limited.Spend()
	limited.Spend()
	if limited.Uses != 0 || limited.Usable() {
		t.Errorf("uses = %d usable = %v", limited.Uses, limited.Usable())
	}
	limited.Refill()
	if limited.Uses != 2 {
		t.Errorf("refill = %d", limited.Uses)
	}
	unlimited := NewMove(&core.MoveTemplate{ID: "struggle", Power: 50}, nil)
	unlimited.Spend()
	if !unlimited.Usable() || unlimited.Uses != 0 {
		t.Errorf("unlimited move changed: uses %d", unlimited.Uses)
	}
}

func newEffect(kind core.EffectKind) *Effect {
	return &Effect{Kind: kind, Turn: 1, Trigger: core.TriggerEndOfTurn}
}

func TestEffectRegistryRejectsDuplicates(t *testing.T) {
	var r EffectRegistry
	user := NewCombatant(testSpecies(), 5, core.SideAlly)
	target := NewCombatant(testSpecies(), 5, core.SideEnemy)

	if _, ok := r.Add(Binding{Effect: newEffect(core.EffectLeechSeed), User: user, Target: target}); !ok {
		t.Fatal("first add rejected")
	}
	if _, ok := r.Add(Binding{Effect: newEffect(core.EffectLeechSeed), User: user, Target: target}); ok {
		t.Error("duplicate live binding accepted")
	}
	if r.Count() != 1 {
		t.Errorf("live count = %d", r.Count())
	}
	// 対象が違えば別の効果として扱う
	if _, ok := r.Add(Binding{Effect: newEffect(core.EffectLeechSeed), User: target, Target: user}); !ok {
		t.Error("binding with different user/target rejected")
	}
	// 対象が nil の効果は重複判定の対象外
	r.Add(Binding{Effect: newEffect(core.EffectWeather), User: user})
	if _, ok := r.Add(Binding{Effect: newEffect(core.EffectWeather), User: user}); !ok {
		t.Error("nil-target binding rejected")
	}
}

func TestEffectRegistryTombstones(t *testing.T) {
	var r EffectRegistry
	a := NewCombatant(testSpecies(), 5, core.SideAlly)
	b := NewCombatant(testSpecies(), 5, core.SideEnemy)
	first, _ := r.Add(Binding{Effect: newEffect(core.EffectBurn), User: a, Target: b})
	second, _ := r.Add(Binding{Effect: newEffect(core.EffectPoison), User: a, Target: a})

	if !r.Remove(first) {
		t.Fatal("remove failed")
	}
	if r.Remove(first) {
		t.Error("removing a tombstone twice must report false")
	}
	if r.Len() != 2 {
		t.Errorf("tombstones must keep their slot, len = %d", r.Len())
	}
	if _, ok := r.At(first); ok {
		t.Error("tombstone still readable")
	}
	if got, ok := r.At(second); !ok || got.Effect.Kind != core.EffectPoison {
		t.Error("second slot moved")
	}
	// 墓標になった組み合わせは再登録でき、新しいインデックスが割り当てられる
	idx, ok := r.Add(Binding{Effect: newEffect(core.EffectBurn), User: a, Target: b})
	if !ok || idx != 2 {
		t.Errorf("re-add idx = %d ok = %v", idx, ok)
	}
	var seen []int
	for i := range r.Live() {
		seen = append(seen, i)
	}
	if len(seen) != 2 || seen[0] != second || seen[1] != 2 {
		t.Errorf("Live() = %v", seen)
	}
}

func TestEffectExpired(t *testing.T) {
	e := &Effect{Turn: 1, Duration: 2}
	if e.Expired() {
		t.Error("turn 1 of 2 expired")
	}
	e.Turn = 3
	if !e.Expired() {
		t.Error("turn 3 of 2 not expired")
	}
	indefinite := &Effect{Turn: 99}
	if indefinite.Expired() {
		t.Error("indefinite effect expired")
	}
	indefinite.Expire()
	if !indefinite.Expired() {
		t.Error("Expire() ignored")
	}
}
