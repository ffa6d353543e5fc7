package entity

import (
	"monbattle-ebiten/core"
	"monbattle-ebiten/ecs/component"

	"github.com/rs/zerolog"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
	"github.com/yohamta/donburi/query"
)

var fieldQuery = query.NewQuery(filter.Contains(component.FieldComponent))

// EnsureFieldEntity は場の状態を持つエンティティが存在することを保証します。
// 存在しない場合は weather を初期天候として作成します。
func EnsureFieldEntity(world donburi.World, weather core.Weather, logger zerolog.Logger) *donburi.Entry {
	if entry, ok := fieldQuery.First(world); ok {
		return entry
	}
	if weather == "" {
		weather = core.WeatherNone
	}
	logger.Debug().Str("weather", string(weather)).Msg("場の状態エンティティを作成します")
	entry := world.Entry(world.Create(component.FieldComponent))
	component.FieldComponent.SetValue(entry, component.Field{
		Weather: weather,
		Outcome: core.OutcomeUndecided,
		Forced:  core.OutcomeUndecided,
	})
	return entry
}

// GetField はワールドの場の状態を返します。EnsureFieldEntity で作成済みであることを前提とします。
func GetField(world donburi.World) *component.Field {
	entry, ok := fieldQuery.First(world)
	if !ok {
		panic("場の状態エンティティがワールドに見つかりません")
	}
	return component.FieldComponent.Get(entry)
}
