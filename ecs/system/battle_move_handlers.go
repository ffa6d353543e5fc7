package system

import (
	"monbattle-ebiten/core"
	"monbattle-ebiten/domain"
)

// --- DamageMove ---

// DamageMove は通常の攻撃技です。テンプレートに状態異常と確率があれば追加効果として与えます。
type DamageMove struct{ domain.MoveHooks }

func (DamageMove) Execute(ctx domain.BattleContext, m *domain.Move, user, target *domain.Combatant, targetCount int) {
	ctx.DealDamage(m, user, target, targetCount)
}

func (DamageMove) OnHit(ctx domain.BattleContext, m *domain.Move, user, target *domain.Combatant) {
	inflictSecondary(ctx, m, target)
}

// inflictSecondary は攻撃技の追加効果の状態異常を確率で与えます。
func inflictSecondary(ctx domain.BattleContext, m *domain.Move, target *domain.Combatant) {
	tmpl := m.Template
	if !tmpl.Status.IsAilment() || tmpl.Chance <= 0 || !target.IsAlive() {
		return
	}
	if ctx.Rand().IntN(100) < tmpl.Chance {
		ctx.InflictStatus(target, tmpl.Status)
	}
}

// --- DrainMove ---

// DrainMove は与えたダメージの一部を回復する攻撃技です。
type DrainMove struct{ domain.MoveHooks }

func (DrainMove) Execute(ctx domain.BattleContext, m *domain.Move, user, target *domain.Combatant, targetCount int) {
	dealt := ctx.DealDamage(m, user, target, targetCount)
	if dealt == 0 || user.Health == user.MaxHealth() {
		return
	}
	user.Heal(max(1, int(float64(dealt)*m.Template.DrainRatio)))
	ctx.UpdateHealth()
	ctx.Say("drained", map[string]any{"name": target.Label()})
}

// --- RecoilMove ---

// RecoilMove は与えたダメージの一部を反動として受ける攻撃技です。
type RecoilMove struct{ domain.MoveHooks }

func (RecoilMove) Execute(ctx domain.BattleContext, m *domain.Move, user, target *domain.Combatant, targetCount int) {
	dealt := ctx.DealDamage(m, user, target, targetCount)
	if dealt == 0 {
		return
	}
	user.Damage(max(1, int(float64(dealt)*m.Template.RecoilRatio)))
	ctx.UpdateHealth()
	ctx.Say("recoil", map[string]any{"name": user.Label()})
}

// --- StatChangeMove ---

// StatChangeMove はランクを変化させる変化技です。
type StatChangeMove struct{ domain.MoveHooks }

func (StatChangeMove) Execute(ctx domain.BattleContext, m *domain.Move, user, target *domain.Combatant, _ int) {
	for _, sc := range m.Template.StatChanges {
		who := target
		if sc.Self {
			who = user
		}
		ctx.ChangeStage(who, sc.Stat, sc.Stages)
	}
}

// --- AilmentMove ---

// AilmentMove は状態異常を与える変化技です。
type AilmentMove struct{ domain.MoveHooks }

func (AilmentMove) Execute(ctx domain.BattleContext, m *domain.Move, user, target *domain.Combatant, _ int) {
	if !ctx.InflictStatus(target, m.Template.Status) {
		ctx.Say("move_failed", nil)
	}
}

// --- LeechSeedMove ---

// LeechSeedMove は毎ターン対象の体力を吸い取る種を植え付けます。くさタイプには効きません。
type LeechSeedMove struct{ domain.MoveHooks }

func (LeechSeedMove) Execute(ctx domain.BattleContext, m *domain.Move, user, target *domain.Combatant, _ int) {
	if target.HasType(core.TypeGrass) {
		ctx.Say("no_effect", map[string]any{"name": target.Label()})
		return
	}
	if !ctx.AddEffect(core.EffectLeechSeed, user, target) {
		ctx.Say("already_seeded", map[string]any{"name": target.Label()})
	}
}

// --- HealMove ---

// HealMove は最大HPの一定割合を回復します。
type HealMove struct{ domain.MoveHooks }

func (HealMove) Execute(ctx domain.BattleContext, m *domain.Move, user, target *domain.Combatant, _ int) {
	if target.Health >= target.MaxHealth() {
		ctx.Say("hp_full", map[string]any{"name": target.Label()})
		return
	}
	target.Heal(max(1, int(float64(target.MaxHealth())*m.Template.HealRatio)))
	ctx.UpdateHealth()
	ctx.Say("healed", map[string]any{"name": target.Label()})
}

// --- DestinyBondMove ---

// DestinyBondMove は次のターンが終わるまでに倒されたとき、倒した相手を道連れにします。
type DestinyBondMove struct{ domain.MoveHooks }

func (DestinyBondMove) Execute(ctx domain.BattleContext, m *domain.Move, user, _ *domain.Combatant, _ int) {
	if !ctx.AddEffect(core.EffectDestinyBond, user, nil) {
		ctx.Say("move_failed", nil)
	}
}

// --- WeatherMove ---

// WeatherMove は天候を変えます。同じ天候のときは失敗します。
type WeatherMove struct{ domain.MoveHooks }

func (WeatherMove) Execute(ctx domain.BattleContext, m *domain.Move, user, _ *domain.Combatant, _ int) {
	if ctx.Weather() == m.Template.Weather {
		ctx.Say("move_failed", nil)
		return
	}
	ctx.StartWeather(m.Template.Weather, user, -1)
}

// --- CaptureMove ---

// CaptureMove はボールを投げて野生の個体の捕獲を試みます。トレーナー戦では弾かれます。
type CaptureMove struct{ domain.MoveHooks }

func (CaptureMove) OnUse(ctx domain.BattleContext, m *domain.Move, _, _ *domain.Combatant) {
	ctx.Say("ball_thrown", map[string]any{"ball": m.Template.Name})
}

func (CaptureMove) Execute(ctx domain.BattleContext, m *domain.Move, _, target *domain.Combatant, _ int) {
	if ctx.IsTrainerBattle() {
		ctx.Say("ball_blocked", nil)
		return
	}
	if ctx.AttemptCatch(target, m.Template.BallMultiplier) {
		ctx.SetForcedOutcome(core.OutcomeCaptured)
	}
}

// --- EscapeMove ---

// EscapeMove は野生の個体との対戦から逃げます。
type EscapeMove struct{ domain.MoveHooks }

func (EscapeMove) Execute(ctx domain.BattleContext, _ *domain.Move, _, _ *domain.Combatant, _ int) {
	if ctx.IsTrainerBattle() {
		ctx.Say("cant_escape", nil)
		return
	}
	ctx.Say("escaped", nil)
	ctx.SetForcedOutcome(core.OutcomeEscaped)
}
