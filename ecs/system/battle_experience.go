package system

import (
	"monbattle-ebiten/core"
	"monbattle-ebiten/domain"
	"monbattle-ebiten/formula"
)

// awardExperience は倒された victim と対面した、まだ戦える個体に経験値を分配します。
func (r *resolver) awardExperience(victim *domain.Combatant) {
	var gainers []*domain.Combatant
	for _, o := range victim.Opponents {
		if o.IsAlive() && o.Side != victim.Side {
			gainers = append(gainers, o)
		}
	}
	if len(gainers) == 0 {
		return
	}
	factor := 1.0
	if r.trainer {
		factor = r.balance.TrainerExpFactor
	}
	for _, g := range gainers {
		amount := formula.KillExp(factor, victim.Species.BaseExp, victim.Level, len(gainers), g.Level)
		g.Exp += amount
		r.Say("exp_gained", map[string]any{"name": g.Name, "amount": amount})

		filled := false
		for g.Level < core.MaxLevel && formula.LevelForExp(g.Species.Growth, g.Exp) > g.Level {
			r.levelUp(g)
			filled = true
		}
		r.logger.LogExpAward(g.Name, amount, g.Exp, g.Level)
		r.UpdateExp(filled)
	}
}

// levelUp はレベルを1つ上げ、能力値を再計算し、覚える技があれば覚えます。
func (r *resolver) levelUp(g *domain.Combatant) {
	g.Level++
	g.Recalculate()
	r.PlaySound(core.SoundLevelUp)
	r.Say("level_up", map[string]any{"name": g.Name, "level": g.Level})
	r.UpdateHealth()
	if r.game == nil {
		return
	}
	for _, t := range r.game.MovesLearnedAt(g.Species, g.Level) {
		if g.KnowsMove(t.ID) || len(g.Moves) >= core.MaxMoves {
			continue
		}
		s, err := r.registry.Move(t.Behavior)
		if err != nil {
			r.log.Warn().Err(err).Str("move", t.ID).Msg("技を覚えられません")
			continue
		}
		g.Moves = append(g.Moves, domain.NewMove(t, s))
		r.Say("move_learned", map[string]any{"name": g.Name, "move": t.Name})
	}
}
