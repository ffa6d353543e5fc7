package system

import (
	"iter"

	"monbattle-ebiten/core"
	"monbattle-ebiten/domain"
	"monbattle-ebiten/formula"
)

// stepSink は Step を消費側に渡します。
// 消費側が途中でやめた場合は以降の Step を捨て、処理は最後まで黙って進みます。
type stepSink struct {
	yield  func(domain.Step) bool
	halted bool
}

func (s *stepSink) emit(step domain.Step) {
	if s.halted || s.yield == nil {
		return
	}
	if !s.yield(step) {
		s.halted = true
	}
}

// resolver は1つの Step 列を生成する間の戦闘です。domain.BattleContext を実装します。
type resolver struct {
	*Battle
	out *stepSink

	cmds map[*domain.Combatant]domain.Command
	// order はこのターンの行動順です。ターン外の処理では nil になります。
	order []*domain.Combatant
}

var _ domain.BattleContext = (*resolver)(nil)

// sequence は run を1度だけ実行する Step 列を作成します。2回目以降の反復は何も生成しません。
func (b *Battle) sequence(run func(r *resolver)) iter.Seq[domain.Step] {
	used := false
	return func(yield func(domain.Step) bool) {
		if used {
			return
		}
		used = true
		run(&resolver{Battle: b, out: &stepSink{yield: yield}})
	}
}

// silent は Step を捨てる resolver です。ターン外から効果を操作するときに使います。
func (b *Battle) silent() *resolver {
	return &resolver{Battle: b, out: &stepSink{halted: true}}
}

// AddEffect はターン外から効果を登録します。実況は捨てられます。
func (b *Battle) AddEffect(kind core.EffectKind, user, target *domain.Combatant) bool {
	return b.silent().AddEffect(kind, user, target)
}

// --- 通知 ---

func (r *resolver) Print(msg string) { r.out.emit(domain.MessageStep{Text: msg}) }

func (r *resolver) Say(id string, params map[string]any) {
	r.Print(r.messages.FormatMessage(id, params))
}

func (r *resolver) UpdateHealth() { r.out.emit(domain.HealthUpdateStep{}) }

func (r *resolver) UpdateExp(levelFilled bool) {
	r.out.emit(domain.ExpUpdateStep{LevelFilled: levelFilled})
}

func (r *resolver) PlaySound(s core.Sound) { r.out.emit(domain.SoundStep{Sound: s}) }

// --- 効果 ---

func (r *resolver) AddEffect(kind core.EffectKind, user, target *domain.Combatant) bool {
	return r.addEffect(kind, user, target, -1) != nil
}

// addEffect は効果を登録し、OnCreation を呼びます。duration が負なら定義の持続ターン数を使います。
func (r *resolver) addEffect(kind core.EffectKind, user, target *domain.Combatant, duration int) *domain.Effect {
	if target != nil && !target.IsAlive() {
		return nil
	}
	def, ok := r.registry.Effect(kind)
	if !ok {
		r.log.Warn().Str("kind", string(kind)).Msg("未登録の効果です")
		return nil
	}
	e := &domain.Effect{
		Kind:            kind,
		Strategy:        def.Strategy,
		Turn:            1,
		Duration:        def.Duration,
		Trigger:         def.Trigger,
		EndsOnSwitchOut: def.EndsOnSwitchOut,
	}
	if duration >= 0 {
		e.Duration = duration
	}
	idx, ok := r.effects.Add(domain.Binding{Effect: e, User: user, Target: target})
	if !ok {
		return nil
	}
	r.logger.LogEffect(string(kind), "add", idx)
	e.Strategy.OnCreation(r, e, user, target)
	return e
}

func (r *resolver) removeEffect(i int) {
	b, ok := r.effects.At(i)
	if !ok {
		return
	}
	r.effects.Remove(i)
	r.logger.LogEffect(string(b.Effect.Kind), "remove", i)
}

// removeEffects は match に一致する生存中の効果をすべて取り除きます。OnDeletion は呼びません。
func (r *resolver) removeEffects(match func(domain.Binding) bool) {
	for i, b := range r.effects.Live() {
		if match(b) {
			r.removeEffect(i)
		}
	}
}

func (r *resolver) StartWeather(w core.Weather, user *domain.Combatant, turns int) {
	r.removeEffects(func(b domain.Binding) bool { return b.Effect.Kind == core.EffectWeather })
	r.field().Weather = w
	if w == core.WeatherNone {
		return
	}
	if turns < 0 {
		turns = r.balance.WeatherTurns
	}
	r.Say("weather_start_"+string(w), nil)
	r.addEffect(core.EffectWeather, user, nil, turns)
}

func (r *resolver) ClearWeather() { r.field().Weather = core.WeatherNone }

// --- 個体の状態 ---

func (r *resolver) DealDamage(m *domain.Move, user, target *domain.Combatant, targetCount int) int {
	res := r.damage.Calculate(DamageInput{
		Move:        m,
		User:        user,
		Target:      target,
		TargetCount: targetCount,
		Weather:     r.Weather(),
	})
	user.LastMoveCrit = res.Critical
	dealt := target.Damage(res.Damage)
	r.UpdateHealth()
	return dealt
}

// statusImmune はタイプによる状態異常の無効を判定します。
func statusImmune(c *domain.Combatant, s core.Status) bool {
	switch s {
	case core.StatusBurned:
		return c.HasType(core.TypeFire)
	case core.StatusPoisoned, core.StatusToxic:
		return c.HasType(core.TypePoison) || c.HasType(core.TypeSteel)
	case core.StatusFrozen:
		return c.HasType(core.TypeIce)
	case core.StatusParalyzed:
		return c.HasType(core.TypeElectric)
	}
	return false
}

func (r *resolver) InflictStatus(target *domain.Combatant, s core.Status) bool {
	if !s.IsAilment() || !target.IsAlive() || target.Status != core.StatusNone || statusImmune(target, s) {
		return false
	}
	target.Status = s
	r.Say("status_"+string(s), map[string]any{"name": target.Label()})
	if kind, ok := core.StatusEffect(s); ok {
		r.addEffect(kind, target, target, -1)
	}
	return true
}

func (r *resolver) CureStatus(target *domain.Combatant) {
	s := target.Status
	if !s.IsAilment() {
		return
	}
	target.Status = core.StatusNone
	r.removeEffects(func(b domain.Binding) bool {
		if b.Target != target {
			return false
		}
		for _, st := range []core.Status{core.StatusBurned, core.StatusPoisoned, core.StatusToxic, core.StatusSleeping} {
			if kind, _ := core.StatusEffect(st); kind == b.Effect.Kind {
				return true
			}
		}
		return false
	})
	r.Say("status_cured", map[string]any{"name": target.Label(), "status": s.Noun()})
}

func (r *resolver) ChangeStage(target *domain.Combatant, s core.Stat, delta int) int {
	if !target.IsAlive() || delta == 0 {
		return 0
	}
	applied := target.ModifyStage(s, delta)
	params := map[string]any{"name": target.Label(), "stat": s.String()}
	var id string
	switch {
	case applied == 0 && delta > 0:
		id = "stat_no_higher"
	case applied == 0:
		id = "stat_no_lower"
	case applied >= 3:
		id = "stat_rose_drastically"
	case applied == 2:
		id = "stat_rose_sharply"
	case applied == 1:
		id = "stat_rose"
	case applied == -1:
		id = "stat_fell"
	case applied == -2:
		id = "stat_fell_harshly"
	default:
		id = "stat_fell_severely"
	}
	r.Say(id, params)
	return applied
}

func (r *resolver) AttemptCatch(target *domain.Combatant, ball float64) bool {
	res := r.catch.Attempt(target, ball)
	for i := 1; i <= res.Shakes && i < formula.CatchTrials; i++ {
		r.Say("ball_shake", map[string]any{"count": i})
	}
	if res.Caught {
		r.Say("caught", map[string]any{"name": target.Name})
		return true
	}
	r.Say("broke_free", map[string]any{"name": target.Name})
	return false
}
