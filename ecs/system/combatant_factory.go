package system

import (
	"fmt"

	"monbattle-ebiten/core"
	"monbattle-ebiten/data"
	"monbattle-ebiten/domain"
)

// CombatantFactory はゲームデータから個体を生成し、振る舞いを結び付けます。
type CombatantFactory struct {
	game     *data.GameData
	registry *StrategyRegistry
}

// NewCombatantFactory は新しい CombatantFactory を作成します。
func NewCombatantFactory(game *data.GameData, registry *StrategyRegistry) *CombatantFactory {
	return &CombatantFactory{game: game, registry: registry}
}

// Combatant はパーティ設定の1体から個体を生成します。技はそのレベルまでに覚えた最後の4つです。
func (f *CombatantFactory) Combatant(m data.Member, side core.Side) (*domain.Combatant, error) {
	species, ok := f.game.Species[m.Species]
	if !ok {
		return nil, fmt.Errorf("%w: species %q", data.ErrUnknownReference, m.Species)
	}
	c := domain.NewCombatant(species, m.Level, side)
	if m.Name != "" {
		c.Name = m.Name
	}
	if m.Gender != "" {
		c.Gender = m.Gender
	}

	abilityTmpl, ok := f.game.Abilities[species.Ability]
	if !ok {
		return nil, fmt.Errorf("%w: ability %q of %s", data.ErrUnknownReference, species.Ability, species.ID)
	}
	as, err := f.registry.Ability(abilityTmpl.Behavior)
	if err != nil {
		return nil, err
	}
	c.Ability = domain.NewAbility(abilityTmpl, as)

	for _, t := range f.game.InitialMoves(species, c.Level) {
		mv, err := f.bind(t)
		if err != nil {
			return nil, err
		}
		c.Moves = append(c.Moves, mv)
	}
	return c, nil
}

// Party はパーティ設定全体から個体を生成します。
func (f *CombatantFactory) Party(members []data.Member, side core.Side) ([]*domain.Combatant, error) {
	out := make([]*domain.Combatant, 0, len(members))
	for i, m := range members {
		c, err := f.Combatant(m, side)
		if err != nil {
			return nil, fmt.Errorf("party member %d: %w", i, err)
		}
		out = append(out, c)
	}
	return out, nil
}

// Move は技IDから振る舞いを結び付けた技を生成します。ボールや逃走の行動にも使います。
func (f *CombatantFactory) Move(id string) (*domain.Move, error) {
	t, err := f.game.Move(id)
	if err != nil {
		return nil, err
	}
	return f.bind(t)
}

func (f *CombatantFactory) bind(t *core.MoveTemplate) (*domain.Move, error) {
	s, err := f.registry.Move(t.Behavior)
	if err != nil {
		return nil, err
	}
	return domain.NewMove(t, s), nil
}
