package main

import (
	"flag"
	"io/fs"
	"os"

	"monbattle-ebiten/data"
	"monbattle-ebiten/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "config.yaml", "設定ファイルのパス (無ければ埋め込みの設定を使います)")
	assetDir := flag.String("assets", "", "種族・技・特性・メッセージを読み込むディレクトリ (空なら埋め込みデータ)")
	flag.Parse()

	config, err := data.LoadConfig(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("設定の読み込みに失敗しました")
	}
	logger := data.NewLogger(config.Log, os.Stderr)

	var assets fs.FS = data.Assets()
	paths := data.DefaultAssetPaths()
	if *assetDir != "" {
		assets = os.DirFS(*assetDir)
		paths = data.AssetPaths{
			Species:   "species.yaml",
			Moves:     "moves.yaml",
			Abilities: "abilities.yaml",
			Messages:  "messages.json",
		}
	}

	res, err := ui.NewSharedResources(config, assets, paths, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("ゲームデータの読み込みに失敗しました")
	}

	// bamennのシーケンスがebiten.Gameとして動きます
	manager := ui.NewSceneManager(res)

	ebiten.SetWindowSize(config.UI.Width, config.UI.Height)
	ebiten.SetWindowTitle("Monbattle")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(manager.Sequence); err != nil {
		logger.Fatal().Err(err).Msg("ゲームループが異常終了しました")
	}
}
