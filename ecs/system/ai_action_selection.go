package system

import (
	"monbattle-ebiten/core"
	"monbattle-ebiten/domain"
	"monbattle-ebiten/formula"
)

// AIMoveSelectionStrategyFunc はAIの技選択アルゴリズムです。
type AIMoveSelectionStrategyFunc func(actor *domain.Combatant, usable []*domain.Move, foes []*domain.Combatant, rand domain.Rand) *domain.Move

// AIPersonality はAIの性格です。技の選び方と対象の選び方の組み合わせです。
type AIPersonality struct {
	MoveSelectionStrategy AIMoveSelectionStrategyFunc
	TargetingStrategy     TargetingStrategy
}

// PersonalityRegistry はAIの性格の一覧です。
// 野生の個体は "wild"、トレーナーの個体は "trainer" を使います。
var PersonalityRegistry = map[string]AIPersonality{
	"wild":    {MoveSelectionStrategy: SelectRandomMove, TargetingStrategy: RandomTarget{}},
	"trainer": {MoveSelectionStrategy: SelectMostEffectiveMove, TargetingStrategy: WeakestTarget{}},
	"brute":   {MoveSelectionStrategy: SelectHighestPowerMove, TargetingStrategy: FirstTarget{}},
}

// ChooseCommands は side の場に出ている個体すべての行動を決めます。
// 対戦の種類に応じた性格が使われます。
func (b *Battle) ChooseCommands(side core.Side) []domain.Command {
	id := "wild"
	if b.trainer {
		id = "trainer"
	}
	return b.ChooseCommandsWith(side, id)
}

// ChooseCommandsWith は性格 personalityID で side の行動を決めます。
func (b *Battle) ChooseCommandsWith(side core.Side, personalityID string) []domain.Command {
	personality, ok := PersonalityRegistry[personalityID]
	if !ok {
		b.log.Warn().Str("personality", personalityID).Msg("AIの性格がレジストリに見つかりません。wild を使用します")
		personality = PersonalityRegistry["wild"]
	}
	actives := b.Actives(side)
	cmds := make([]domain.Command, 0, len(actives))
	for _, actor := range actives {
		cmds = append(cmds, aiSelectAction(actor, aliveOnly(b.Opponents(actor)), personality, b.rand))
	}
	return cmds
}

// aiSelectAction は1体分の行動を決めます。ひんしの個体や技の無い個体は何もしません。
func aiSelectAction(actor *domain.Combatant, foes []*domain.Combatant, p AIPersonality, rand domain.Rand) domain.Command {
	cmd := domain.Command{Actor: actor}
	if !actor.IsAlive() || len(actor.Moves) == 0 {
		return cmd
	}

	// 1. 技の選択
	var usable []*domain.Move
	for _, m := range actor.Moves {
		if m.Usable() {
			usable = append(usable, m)
		}
	}
	if len(usable) == 0 {
		// 残り回数の尽きた技を選び、エンジンに失敗を実況させる
		cmd.Move = actor.Moves[0]
		return cmd
	}
	cmd.Move = p.MoveSelectionStrategy(actor, usable, foes, rand)

	// 2. 対象の選択
	if cmd.Move != nil && cmd.Move.Template.Target.NeedsTarget() && len(foes) > 0 {
		cmd.Target = p.TargetingStrategy.SelectTarget(foes, rand)
	}
	return cmd
}

// --- AI技選択戦略 ---

// SelectRandomMove は使える技から無作為に選びます。
func SelectRandomMove(_ *domain.Combatant, usable []*domain.Move, _ []*domain.Combatant, rand domain.Rand) *domain.Move {
	if len(usable) == 0 {
		return nil
	}
	return usable[rand.IntN(len(usable))]
}

// SelectHighestPowerMove は威力が最も高い技を選びます。同じ威力なら先の技を選びます。
func SelectHighestPowerMove(_ *domain.Combatant, usable []*domain.Move, _ []*domain.Combatant, _ domain.Rand) *domain.Move {
	var best *domain.Move
	maxPower := -1
	for _, m := range usable {
		if m.Power > maxPower {
			maxPower = m.Power
			best = m
		}
	}
	return best
}

// SelectMostEffectiveMove は先頭の相手に対する 威力 * タイプ一致 * 相性 が最大の技を選びます。
// 攻撃技が無い場合は無作為に選びます。
func SelectMostEffectiveMove(actor *domain.Combatant, usable []*domain.Move, foes []*domain.Combatant, rand domain.Rand) *domain.Move {
	if len(foes) == 0 {
		return SelectRandomMove(actor, usable, foes, rand)
	}
	var best *domain.Move
	bestScore := 0.0
	for _, m := range usable {
		if !m.Template.IsDamaging() {
			continue
		}
		score := float64(m.Power) * formula.Effectiveness(m.Template.Type, foes[0].Types())
		if actor.HasType(m.Template.Type) {
			score *= 1.5
		}
		if score > bestScore {
			bestScore = score
			best = m
		}
	}
	if best == nil {
		return SelectRandomMove(actor, usable, foes, rand)
	}
	return best
}

// --- AIターゲット選択戦略 ---

// RandomTarget は無作為に対象を選びます。
type RandomTarget struct{}

func (RandomTarget) SelectTarget(candidates []*domain.Combatant, rand domain.Rand) *domain.Combatant {
	if len(candidates) == 0 {
		return nil
	}
	return candidates[rand.IntN(len(candidates))]
}

// WeakestTarget は残りHPの割合が最も低い対象を選びます。
type WeakestTarget struct{}

func (WeakestTarget) SelectTarget(candidates []*domain.Combatant, _ domain.Rand) *domain.Combatant {
	var best *domain.Combatant
	bestRatio := 2.0
	for _, c := range candidates {
		ratio := float64(c.Health) / float64(max(c.MaxHealth(), 1))
		if ratio < bestRatio {
			bestRatio = ratio
			best = c
		}
	}
	return best
}

// FirstTarget は位置が最も左の対象を選びます。
type FirstTarget struct{}

func (FirstTarget) SelectTarget(candidates []*domain.Combatant, _ domain.Rand) *domain.Combatant {
	if len(candidates) == 0 {
		return nil
	}
	return candidates[0]
}
