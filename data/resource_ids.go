package data

// 埋め込みアセットのパスです。
const (
	assetConfig    = "assets/config.yaml"
	assetSpecies   = "assets/species.yaml"
	assetMoves     = "assets/moves.yaml"
	assetAbilities = "assets/abilities.yaml"
	assetMessages  = "assets/messages.json"
)

// AssetPaths は外部から読み込むデータファイルの一覧です。
// 埋め込みファイルシステム (Assets) 上のパスと同じ名前を使います。
type AssetPaths struct {
	Config    string
	Species   string
	Moves     string
	Abilities string
	Messages  string
}

// DefaultAssetPaths は埋め込みアセットのパスです。
func DefaultAssetPaths() AssetPaths {
	return AssetPaths{
		Config:    assetConfig,
		Species:   assetSpecies,
		Moves:     assetMoves,
		Abilities: assetAbilities,
		Messages:  assetMessages,
	}
}
