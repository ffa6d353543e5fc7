package data

import (
	"embed"
	"fmt"
	"io/fs"
)

//go:embed assets
var assets embed.FS

// Assets は埋め込みアセットのファイルシステムです。
func Assets() fs.FS { return assets }

// DefaultGameData は埋め込みの種族・技・特性データを読み込みます。
func DefaultGameData() (*GameData, error) {
	species, err := assets.ReadFile(assetSpecies)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", assetSpecies, err)
	}
	moves, err := assets.ReadFile(assetMoves)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", assetMoves, err)
	}
	abilities, err := assets.ReadFile(assetAbilities)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", assetAbilities, err)
	}
	return LoadGameData(species, moves, abilities)
}

// DefaultMessages は埋め込みのメッセージテンプレートを読み込みます。
func DefaultMessages() (*MessageManager, error) {
	raw, err := assets.ReadFile(assetMessages)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", assetMessages, err)
	}
	return NewMessageManager(raw)
}
