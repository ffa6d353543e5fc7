package system

import (
	"monbattle-ebiten/core"
	"monbattle-ebiten/domain"
)

// ResolveTargets は対象モードから実際の対象を求めます。
// allies は user 側、enemies は相手側の場に出ている個体です (位置順)。
// 結果が空の場合、技は失敗します。
func ResolveTargets(mode core.TargetMode, user, primary *domain.Combatant, allies, enemies []*domain.Combatant) []*domain.Combatant {
	switch mode {
	case core.TargetSelf:
		return []*domain.Combatant{user}
	case core.TargetSingle:
		if primary != nil && primary.IsAlive() && (contains(allies, primary) || contains(enemies, primary)) {
			return []*domain.Combatant{primary}
		}
		return nil
	case core.TargetAdjacent:
		return adjacent(primary, allies, enemies)
	case core.TargetAllies:
		return aliveOnly(allies)
	case core.TargetEnemies:
		return aliveOnly(enemies)
	case core.TargetAll:
		return aliveOnly(append(append([]*domain.Combatant{}, allies...), enemies...))
	}
	return nil
}

// adjacent は primary と、同じ側で隣の位置にいる個体を返します。
func adjacent(primary *domain.Combatant, allies, enemies []*domain.Combatant) []*domain.Combatant {
	if primary == nil {
		return nil
	}
	row := enemies
	idx := indexOf(enemies, primary)
	if idx < 0 {
		row = allies
		idx = indexOf(allies, primary)
	}
	if idx < 0 {
		return nil
	}
	var out []*domain.Combatant
	for i := idx - 1; i <= idx+1; i++ {
		if i >= 0 && i < len(row) && row[i].IsAlive() {
			out = append(out, row[i])
		}
	}
	return out
}

func indexOf(cs []*domain.Combatant, c *domain.Combatant) int {
	for i, x := range cs {
		if x == c {
			return i
		}
	}
	return -1
}

func contains(cs []*domain.Combatant, c *domain.Combatant) bool { return indexOf(cs, c) >= 0 }
