package ui

import (
	"monbattle-ebiten/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/noppikinatta/bamenn"
)

// Scene は bamenn のシーケンスに載せる画面です。
type Scene interface {
	ebiten.Game
}

// SceneManagerはbamennのシーケンスと共有リソースを管理します
type SceneManager struct {
	Sequence  *bamenn.Sequence
	resources *SharedResources
}

// NewSceneManager はタイトル画面から始まるシーンマネージャを作成します。
func NewSceneManager(res *SharedResources) *SceneManager {
	m := &SceneManager{resources: res}
	m.Sequence = bamenn.NewSequence(NewTitleScene(res, m))
	return m
}

// GoTo... メソッド群は、各シーンから呼び出され、指定されたシーンに遷移させます

func (m *SceneManager) GoToTitleScene() {
	m.Sequence.Switch(NewTitleScene(m.resources, m))
}

// GoToBattleScene は設定ファイルのパーティで新しい対戦を始めます。
// 対戦を組み立てられない場合はタイトル画面に留まります。
func (m *SceneManager) GoToBattleScene() {
	scene, err := NewBattleScene(m.resources, m)
	if err != nil {
		m.resources.Log.Error().Err(err).Msg("バトルシーンへの切り替えに失敗しました")
		return
	}
	m.Sequence.Switch(scene)
}

func (m *SceneManager) GoToResultScene(outcome core.Outcome, history []string) {
	m.Sequence.Switch(NewResultScene(m.resources, m, outcome, history))
}
