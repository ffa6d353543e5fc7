package component

// ECSのCに相当するコンポーネント定義を集約します。
// 戦闘に参加する全個体 (控えを含む) が1エンティティになり、場の状態は単一のエンティティが持ちます。

import (
	"monbattle-ebiten/core"
	"monbattle-ebiten/domain"

	"github.com/yohamta/donburi"
)

// Member は個体への参照と、パーティ内の並び順です。
type Member struct {
	Combatant  *domain.Combatant
	PartyIndex int
}

// ActiveSlot は場に出ている個体の位置です。0 が左端になります。
type ActiveSlot struct {
	Index int
}

// Field は場全体の状態です。
type Field struct {
	Weather core.Weather
	Turn    int
	Outcome core.Outcome
	// Forced は捕獲・逃走によって強制された勝敗です。Undecided の場合は通常の判定を使います。
	Forced core.Outcome
}

// --- Componentの型定義 ---
var (
	MemberComponent = donburi.NewComponentType[Member]()
	ActiveComponent = donburi.NewComponentType[ActiveSlot]()
	FieldComponent  = donburi.NewComponentType[Field]()

	// 陣営のタグ
	AllyTag  = donburi.NewComponentType[struct{}]()
	EnemyTag = donburi.NewComponentType[struct{}]()
)

// SideTag は陣営に対応するタグを返します。
func SideTag(side core.Side) *donburi.ComponentType[struct{}] {
	if side == core.SideAlly {
		return AllyTag
	}
	return EnemyTag
}
