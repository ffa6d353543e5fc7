package system

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"monbattle-ebiten/core"
	"monbattle-ebiten/data"
	"monbattle-ebiten/domain"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func TestResolveTargets(t *testing.T) {
	user := newMon("User", core.TypeNormal, 10)
	ally := newMon("Ally", core.TypeNormal, 10)
	e0 := newMon("E0", core.TypeNormal, 10)
	e1 := newMon("E1", core.TypeNormal, 10)
	e2 := newMon("E2", core.TypeNormal, 10)
	allies := []*domain.Combatant{user, ally}
	enemies := []*domain.Combatant{e0, e1, e2}

	same := func(got []*domain.Combatant, want ...*domain.Combatant) bool {
		if len(got) != len(want) {
			return false
		}
		for i := range want {
			if got[i] != want[i] {
				return false
			}
		}
		return true
	}

	if got := ResolveTargets(core.TargetSelf, user, e0, allies, enemies); !same(got, user) {
		t.Errorf("Self = %v", got)
	}
	if got := ResolveTargets(core.TargetSingle, user, e1, allies, enemies); !same(got, e1) {
		t.Errorf("Single = %v", got)
	}
	if got := ResolveTargets(core.TargetAdjacent, user, e0, allies, enemies); !same(got, e0, e1) {
		t.Errorf("Adjacent at the edge = %v", got)
	}
	if got := ResolveTargets(core.TargetAdjacent, user, e1, allies, enemies); !same(got, e0, e1, e2) {
		t.Errorf("Adjacent in the middle = %v", got)
	}
	if got := ResolveTargets(core.TargetAll, user, nil, allies, enemies); len(got) != 5 {
		t.Errorf("All = %d targets", len(got))
	}

	e2.Damage(e2.Health)
	if got := ResolveTargets(core.TargetSingle, user, e2, allies, enemies); len(got) != 0 {
		t.Errorf("Single on a fainted target = %v", got)
	}
	if got := ResolveTargets(core.TargetAdjacent, user, e1, allies, enemies); !same(got, e0, e1) {
		t.Errorf("Adjacent must drop the fainted neighbour, got %v", got)
	}
	if got := ResolveTargets(core.TargetEnemies, user, nil, allies, enemies); !same(got, e0, e1) {
		t.Errorf("Enemies = %v", got)
	}
	if got := ResolveTargets(core.TargetAllies, user, nil, allies, enemies); !same(got, user, ally) {
		t.Errorf("Allies = %v", got)
	}
	outsider := newMon("Outsider", core.TypeNormal, 10)
	if got := ResolveTargets(core.TargetSingle, user, outsider, allies, enemies); len(got) != 0 {
		t.Errorf("Single on an inactive combatant = %v", got)
	}
}

func TestStrategyRegistryIsClosed(t *testing.T) {
	reg := NewStrategyRegistry()
	for _, b := range core.MoveBehaviors {
		if _, err := reg.Move(b); err != nil {
			t.Errorf("move behavior %s: %v", b, err)
		}
	}
	for _, b := range core.AbilityBehaviors {
		if _, err := reg.Ability(b); err != nil {
			t.Errorf("ability behavior %s: %v", b, err)
		}
	}
	for _, k := range core.EffectKinds {
		if _, ok := reg.Effect(k); !ok {
			t.Errorf("effect kind %s has no definition", k)
		}
	}
	if _, err := reg.Move("teleport"); !errors.Is(err, ErrUnknownBehavior) {
		t.Errorf("unknown move behavior: err = %v", err)
	}
	if _, err := reg.Ability("levitate"); !errors.Is(err, ErrUnknownBehavior) {
		t.Errorf("unknown ability behavior: err = %v", err)
	}
}

func TestCombatantFactory(t *testing.T) {
	gd, err := data.DefaultGameData()
	if err != nil {
		t.Fatal(err)
	}
	f := NewCombatantFactory(gd, NewStrategyRegistry())
	party, err := f.Party([]data.Member{
		{Species: "sproutle", Level: 12},
		{Species: "cindrel", Level: 11, Name: "Ember"},
	}, core.SideAlly)
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range party {
		if c.Ability == nil || c.Ability.Strategy == nil {
			t.Errorf("%s has no ability strategy", c.Name)
		}
		if len(c.Moves) == 0 || len(c.Moves) > core.MaxMoves {
			t.Errorf("%s knows %d moves", c.Name, len(c.Moves))
		}
		for _, m := range c.Moves {
			if m.Strategy == nil || m.Uses != m.Template.MaxUses {
				t.Errorf("%s: move %s not bound", c.Name, m.Template.ID)
			}
		}
	}
	if party[1].Name != "Ember" {
		t.Errorf("nickname = %q", party[1].Name)
	}
	if _, err := f.Combatant(data.Member{Species: "missingno", Level: 5}, core.SideEnemy); !errors.Is(err, data.ErrUnknownReference) {
		t.Errorf("unknown species: err = %v", err)
	}
	if ball, err := f.Move("poke_ball"); err != nil || !isFieldAction(ball) {
		t.Errorf("poke_ball: %v", err)
	}
}

func TestChangeStageNarration(t *testing.T) {
	a := newMon("Sproutle", core.TypeGrass, 10)
	e := newMon("Fluffwing", core.TypeNormal, 10)
	b := newTestBattle(t, []*domain.Combatant{a}, []*domain.Combatant{e}, Options{})

	var applied []int
	steps := collect(b.sequence(func(r *resolver) {
		applied = append(applied, r.ChangeStage(a, core.StatAttack, 2))
		applied = append(applied, r.ChangeStage(a, core.StatAttack, 6))
		applied = append(applied, r.ChangeStage(a, core.StatAttack, 1))
		applied = append(applied, r.ChangeStage(e, core.StatDefense, -1))
	}))
	want := []int{2, 4, 0, -1}
	for i := range want {
		if applied[i] != want[i] {
			t.Errorf("change %d applied %d, want %d", i, applied[i], want[i])
		}
	}
	got := texts(steps)
	wantText := []string{
		"Sproutle's attack rose sharply!",
		"Sproutle's attack rose drastically!",
		"Sproutle's attack won't go any higher!",
		"Foe Fluffwing's defense fell!",
	}
	if len(got) != len(wantText) {
		t.Fatalf("narration = %q", got)
	}
	for i := range wantText {
		if got[i] != wantText[i] {
			t.Errorf("narration[%d] = %q, want %q", i, got[i], wantText[i])
		}
	}
}

func TestInflictStatus(t *testing.T) {
	fire := newMon("Cindrel", core.TypeFire, 10)
	grass := newMon("Sproutle", core.TypeGrass, 10)
	b := newTestBattle(t, []*domain.Combatant{grass}, []*domain.Combatant{fire}, Options{})

	collect(b.sequence(func(r *resolver) {
		if r.InflictStatus(fire, core.StatusBurned) {
			t.Error("fire types cannot be burned")
		}
		if !r.InflictStatus(grass, core.StatusBurned) {
			t.Error("burn on a grass type failed")
		}
		if r.InflictStatus(grass, core.StatusPoisoned) {
			t.Error("a statused combatant cannot get a second status")
		}
	}))
	if _, ok := b.Effects().Find(core.EffectBurn, grass, grass); !ok {
		t.Fatal("burn binding missing")
	}

	collect(b.sequence(func(r *resolver) { r.CureStatus(grass) }))
	if grass.Status != core.StatusNone {
		t.Errorf("status after cure = %s", grass.Status)
	}
	if _, ok := b.Effects().Find(core.EffectBurn, grass, grass); ok {
		t.Error("cure must remove the burn binding")
	}
}

func TestIntimidateOnStart(t *testing.T) {
	a := newMon("Sproutle", core.TypeGrass, 10)
	e := newMon("Growlite", core.TypeNormal, 10)
	e.Ability = domain.NewAbility(&core.AbilityTemplate{ID: "intimidate", Name: "Intimidate", Behavior: core.AbilityIntimidate}, IntimidateAbility{})
	b := newTestBattle(t, []*domain.Combatant{a}, []*domain.Combatant{e}, Options{})

	seq, err := b.Start()
	if err != nil {
		t.Fatal(err)
	}
	steps := collect(seq)
	if a.Stages[core.StatAttack] != -1 {
		t.Errorf("attack stage = %d, want -1", a.Stages[core.StatAttack])
	}
	if !hasText(steps, "A wild Growlite appeared!") {
		t.Errorf("missing appearance narration in %q", texts(steps))
	}
	if _, err := b.Start(); err == nil {
		t.Error("second Start must fail")
	}
}

type recordingPresenter struct {
	calls []string
}

func (p *recordingPresenter) Print(string) { p.calls = append(p.calls, "print") }
func (p *recordingPresenter) NotifyUpdateHealth() { p.calls = append(p.calls, "health") }
func (p *recordingPresenter) NotifyUpdateExp(bool) { p.calls = append(p.calls, "exp") }
func (p *recordingPresenter) NotifyTurnFinished(core.Outcome) { p.calls = append(p.calls, "finished") }
func (p *recordingPresenter) NotifySwitchPerformed(_, _ *domain.Combatant) { p.calls = append(p.calls, "switched") }
func (p *recordingPresenter) UpdateMoveTargets() { p.calls = append(p.calls, "targets") }
func (p *recordingPresenter) RegisterSwitch(*domain.Combatant) { p.calls = append(p.calls, "register") }
func (p *recordingPresenter) PlaySound(core.Sound) { p.calls = append(p.calls, "sound") }

func TestDriveDispatchesInOrder(t *testing.T) {
	a := newMon("Sproutle", core.TypeGrass, 10)
	a.Moves = []*domain.Move{tackle()}
	e := newMon("Fluffwing", core.TypeNormal, 10)
	e.Stats.HP, e.Health = 500, 500
	b := newTestBattle(t, []*domain.Combatant{a}, []*domain.Combatant{e}, Options{})

	seq, err := b.Turn([]domain.Command{{Actor: a, Move: a.Moves[0], Target: e}, {Actor: e}})
	if err != nil {
		t.Fatal(err)
	}
	p := &recordingPresenter{}
	Drive(seq, p)
	want := []string{"print", "sound", "health", "finished"}
	if len(p.calls) != len(want) {
		t.Fatalf("calls = %v", p.calls)
	}
	for i := range want {
		if p.calls[i] != want[i] {
			t.Errorf("call %d = %s, want %s", i, p.calls[i], want[i])
		}
	}
}

func TestAIChoosesValidCommands(t *testing.T) {
	a := newMon("Sproutle", core.TypeGrass, 10)
	a.Moves = []*domain.Move{tackle()}
	e := newMon("Fluffwing", core.TypeNormal, 10)
	e.Moves = []*domain.Move{tackle()}
	for _, trainer := range []bool{false, true} {
		b := newTestBattle(t, []*domain.Combatant{a}, []*domain.Combatant{e}, Options{Trainer: trainer})
		cmds := append(b.ChooseCommands(core.SideAlly), b.ChooseCommands(core.SideEnemy)...)
		if len(cmds) != 2 {
			t.Fatalf("commands = %d", len(cmds))
		}
		if cmds[1].Move != e.Moves[0] || cmds[1].Target != a {
			t.Errorf("enemy command = %+v", cmds[1])
		}
		if _, err := b.validateCommands(cmds); err != nil {
			t.Errorf("AI commands rejected: %v", err)
		}
	}
}

func TestBattleLogsOnlyThroughInjectedLogger(t *testing.T) {
	var global, injected bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&global).Level(zerolog.TraceLevel)
	t.Cleanup(func() { log.Logger = prev })

	a := newMon("Sproutle", core.TypeGrass, 10)
	a.Moves = []*domain.Move{tackle()}
	e := newMon("Fluffwing", core.TypeNormal, 10)
	e.Moves = []*domain.Move{tackle()}
	b := newTestBattle(t, []*domain.Combatant{a}, []*domain.Combatant{e}, Options{
		Weather: core.WeatherRain,
		Log:     zerolog.New(&injected).Level(zerolog.DebugLevel),
	})
	if cmds := b.ChooseCommandsWith(core.SideEnemy, "no_such_personality"); len(cmds) != 1 || cmds[0].Move == nil {
		t.Errorf("fallback personality commands = %+v", cmds)
	}

	if global.Len() != 0 {
		t.Errorf("global logger received: %s", global.String())
	}
	out := injected.String()
	if !strings.Contains(out, `"weather":"Rain"`) || !strings.Contains(out, `"personality":"no_such_personality"`) {
		t.Errorf("injected log = %s", out)
	}
}
