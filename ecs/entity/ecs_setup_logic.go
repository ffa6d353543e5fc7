package entity

import (
	"sort"

	"monbattle-ebiten/core"
	"monbattle-ebiten/domain"
	"monbattle-ebiten/ecs/component"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
	"github.com/yohamta/donburi/query"
)

// SpawnParty はパーティの全員をエンティティとして登録し、先頭から size 体を場に出します。
// 生成したエンティティを個体ごとに返します。
func SpawnParty(world donburi.World, side core.Side, party []*domain.Combatant, size int) map[*domain.Combatant]donburi.Entity {
	out := make(map[*domain.Combatant]donburi.Entity, len(party))
	for i, c := range party {
		c.Side = side
		ent := world.Create(component.MemberComponent, component.SideTag(side))
		entry := world.Entry(ent)
		component.MemberComponent.SetValue(entry, component.Member{Combatant: c, PartyIndex: i})
		if i < size {
			donburi.Add(entry, component.ActiveComponent, &component.ActiveSlot{Index: i})
		}
		out[c] = ent
	}
	return out
}

// Actives は side の場に出ている個体を位置順に返します。ひんしの個体も含みます。
func Actives(world donburi.World, side core.Side) []*domain.Combatant {
	type slotted struct {
		c    *domain.Combatant
		slot int
	}
	var found []slotted
	query.NewQuery(filter.Contains(component.MemberComponent, component.ActiveComponent, component.SideTag(side))).
		Each(world, func(entry *donburi.Entry) {
			found = append(found, slotted{
				c:    component.MemberComponent.Get(entry).Combatant,
				slot: component.ActiveComponent.Get(entry).Index,
			})
		})
	sort.Slice(found, func(i, j int) bool { return found[i].slot < found[j].slot })
	out := make([]*domain.Combatant, len(found))
	for i, s := range found {
		out[i] = s.c
	}
	return out
}

// Reserves は side の控えをパーティ順に返します。
func Reserves(world donburi.World, side core.Side) []*domain.Combatant {
	return members(world, filter.And(
		filter.Contains(component.MemberComponent, component.SideTag(side)),
		filter.Not(filter.Contains(component.ActiveComponent)),
	))
}

// Party は side の全員をパーティ順に返します。
func Party(world donburi.World, side core.Side) []*domain.Combatant {
	return members(world, filter.Contains(component.MemberComponent, component.SideTag(side)))
}

func members(world donburi.World, f filter.LayoutFilter) []*domain.Combatant {
	var found []component.Member
	query.NewQuery(f).Each(world, func(entry *donburi.Entry) {
		found = append(found, *component.MemberComponent.Get(entry))
	})
	sort.Slice(found, func(i, j int) bool { return found[i].PartyIndex < found[j].PartyIndex })
	out := make([]*domain.Combatant, len(found))
	for i, m := range found {
		out[i] = m.Combatant
	}
	return out
}

// IsActive は entry が場に出ているかどうかを返します。
func IsActive(entry *donburi.Entry) bool {
	return entry.HasComponent(component.ActiveComponent)
}

// Swap は場に出ている out と控えの in を入れ替えます。
// in は out の位置に入り、out は in のパーティ内の並び順を引き継ぎます。
func Swap(outEntry, inEntry *donburi.Entry) {
	slot := component.ActiveComponent.Get(outEntry).Index
	outEntry.RemoveComponent(component.ActiveComponent)
	donburi.Add(inEntry, component.ActiveComponent, &component.ActiveSlot{Index: slot})

	outMember := component.MemberComponent.Get(outEntry)
	inMember := component.MemberComponent.Get(inEntry)
	outMember.PartyIndex, inMember.PartyIndex = inMember.PartyIndex, outMember.PartyIndex
}
