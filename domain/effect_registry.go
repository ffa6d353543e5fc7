package domain

import (
	"iter"

	"monbattle-ebiten/core"
)

type effectSlot struct {
	binding Binding
	live    bool
}

// EffectRegistry は有効な効果を登録順に保持します。
// 取り除かれた効果のスロットは墓標として残り、インデックスは詰められません。
// そのため、ターン処理中にインデックスで走査しているループは追加・削除の影響を受けません。
type EffectRegistry struct {
	slots []effectSlot
}

// Len は墓標を含むスロット数です。
func (r *EffectRegistry) Len() int { return len(r.slots) }

// At はインデックス i の効果を返します。墓標か範囲外なら ok=false です。
func (r *EffectRegistry) At(i int) (Binding, bool) {
	if i < 0 || i >= len(r.slots) || !r.slots[i].live {
		return Binding{}, false
	}
	return r.slots[i].binding, true
}

// Find は (kind, user, target) が一致する有効な効果のインデックスを返します。
func (r *EffectRegistry) Find(kind core.EffectKind, user, target *Combatant) (int, bool) {
	for i, s := range r.slots {
		if s.live && s.binding.Effect.Kind == kind && s.binding.User == user && s.binding.Target == target {
			return i, true
		}
	}
	return -1, false
}

// Add は効果を末尾に登録し、そのインデックスを返します。
// 同じ種類・使用者・(nil でない) 対象の有効な効果が既にあれば登録せず ok=false を返します。
func (r *EffectRegistry) Add(b Binding) (int, bool) {
	if b.Target != nil {
		if _, dup := r.Find(b.Effect.Kind, b.User, b.Target); dup {
			return -1, false
		}
	}
	r.slots = append(r.slots, effectSlot{binding: b, live: true})
	return len(r.slots) - 1, true
}

// Remove はインデックス i を墓標にします。既に墓標なら false を返します。
func (r *EffectRegistry) Remove(i int) bool {
	if i < 0 || i >= len(r.slots) || !r.slots[i].live {
		return false
	}
	r.slots[i].live = false
	return true
}

// Live は有効な効果を登録順に列挙します。
func (r *EffectRegistry) Live() iter.Seq2[int, Binding] {
	return func(yield func(int, Binding) bool) {
		for i := 0; i < len(r.slots); i++ {
			if !r.slots[i].live {
				continue
			}
			if !yield(i, r.slots[i].binding) {
				return
			}
		}
	}
}

// Count は有効な効果の数です。
func (r *EffectRegistry) Count() int {
	n := 0
	for _, s := range r.slots {
		if s.live {
			n++
		}
	}
	return n
}
