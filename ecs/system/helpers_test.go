package system

import (
	"iter"
	"strings"
	"testing"

	"monbattle-ebiten/core"
	"monbattle-ebiten/domain"
)

// scriptedRand は決められた値を順に返す乱数です。使い切った後は既定値を返します。
type scriptedRand struct {
	floats []float64
	ints   []int
	def    float64
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return r.def
	}
	f := r.floats[0]
	r.floats = r.floats[1:]
	return f
}

func (r *scriptedRand) IntN(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return min(v, n-1)
}

var noAbility = &core.AbilityTemplate{ID: "no_ability", Name: "No Ability", Behavior: core.AbilityNone}

func newMon(name string, primary core.Type, level int) *domain.Combatant {
	s := &core.Species{
		ID:        strings.ToLower(name),
		Name:      name,
		Primary:   primary,
		Secondary: core.TypeNone,
		Base:      core.BaseStats{HP: 60, Attack: 60, Defense: 60, SpAttack: 60, SpDefense: 60, Speed: 60},
		Growth:    core.GrowthMediumFast,
		BaseExp:   64,
		CatchRate: 45,
	}
	c := domain.NewCombatant(s, level, core.SideAlly)
	c.Ability = domain.NewAbility(noAbility, domain.AbilityHooks{})
	return c
}

func tackle() *domain.Move {
	return domain.NewMove(&core.MoveTemplate{
		ID: "tackle", Name: "Tackle", Type: core.TypeNormal, Category: core.CategoryPhysical,
		Power: 40, Accuracy: 100, Target: core.TargetSingle, MaxUses: 35, Behavior: core.MoveDamage,
	}, DamageMove{})
}

func runAway() *domain.Move {
	return domain.NewMove(&core.MoveTemplate{
		ID: "run_away", Name: "Run", Type: core.TypeNormal, Category: core.CategoryStatus,
		Target: core.TargetSelf, Behavior: core.MoveEscape,
	}, EscapeMove{})
}

func newTestBattle(t *testing.T, allies, enemies []*domain.Combatant, opts Options) *Battle {
	t.Helper()
	if opts.Rand == nil {
		opts.Rand = &scriptedRand{def: 0.5}
	}
	b, err := NewBattle(allies, enemies, opts)
	if err != nil {
		t.Fatalf("NewBattle: %v", err)
	}
	return b
}

func collect(seq iter.Seq[domain.Step]) []domain.Step {
	var out []domain.Step
	for s := range seq {
		out = append(out, s)
	}
	return out
}

func texts(steps []domain.Step) []string {
	var out []string
	for _, s := range steps {
		if m, ok := s.(domain.MessageStep); ok {
			out = append(out, m.Text)
		}
	}
	return out
}

func hasText(steps []domain.Step, substr string) bool {
	for _, txt := range texts(steps) {
		if strings.Contains(txt, substr) {
			return true
		}
	}
	return false
}

func mustTurn(t *testing.T, b *Battle, cmds ...domain.Command) []domain.Step {
	t.Helper()
	seq, err := b.Turn(cmds)
	if err != nil {
		t.Fatalf("Turn: %v", err)
	}
	return collect(seq)
}
