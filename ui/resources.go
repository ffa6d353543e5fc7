package ui

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"monbattle-ebiten/data"
	"monbattle-ebiten/ecs/system"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	resource "github.com/quasilyte/ebitengine-resource"
	"github.com/rs/zerolog"
	"golang.org/x/image/font/basicfont"
)

// ローダーに登録するデータファイルのIDです。
const (
	_ resource.RawID = iota
	RawSpeciesYAML
	RawMovesYAML
	RawAbilitiesYAML
	RawMessagesJSON
)

// SharedResources はシーン間で共有するデータと出力先です。
type SharedResources struct {
	Config   data.Config
	Game     *data.GameData
	Messages *data.MessageManager
	Registry *system.StrategyRegistry
	Factory  *system.CombatantFactory
	Font     text.Face
	Sounds   *SoundBank
	Log      zerolog.Logger
}

// NewSharedResources は assets からゲームデータを読み込み、共有リソースを作成します。
// paths は assets 上のファイル名です。
func NewSharedResources(cfg data.Config, assets fs.FS, paths data.AssetPaths, logger zerolog.Logger) (*SharedResources, error) {
	audioContext := audio.NewContext(sampleRate)
	loader := resource.NewLoader(audioContext)

	var openErr error
	loader.OpenAssetFunc = func(path string) io.ReadCloser {
		raw, err := fs.ReadFile(assets, path)
		if err != nil {
			openErr = errors.Join(openErr, fmt.Errorf("failed to open %s: %w", path, err))
			return io.NopCloser(bytes.NewReader(nil))
		}
		return io.NopCloser(bytes.NewReader(raw))
	}
	loader.RawRegistry.Assign(map[resource.RawID]resource.RawInfo{
		RawSpeciesYAML:   {Path: paths.Species},
		RawMovesYAML:     {Path: paths.Moves},
		RawAbilitiesYAML: {Path: paths.Abilities},
		RawMessagesJSON:  {Path: paths.Messages},
	})

	species := loader.LoadRaw(RawSpeciesYAML).Data
	moves := loader.LoadRaw(RawMovesYAML).Data
	abilities := loader.LoadRaw(RawAbilitiesYAML).Data
	messages := loader.LoadRaw(RawMessagesJSON).Data
	if openErr != nil {
		return nil, openErr
	}

	game, err := data.LoadGameData(species, moves, abilities)
	if err != nil {
		return nil, err
	}
	mm, err := data.NewMessageManager(messages)
	if err != nil {
		return nil, err
	}
	mm.SetLogger(logger)
	registry := system.NewStrategyRegistry()

	logger.Info().Int("species", len(game.Species)).Int("moves", len(game.Moves)).
		Int("abilities", len(game.Abilities)).Int("messages", mm.Len()).Msg("ゲームデータを読み込みました")

	return &SharedResources{
		Config:   cfg,
		Game:     game,
		Messages: mm,
		Registry: registry,
		Factory:  system.NewCombatantFactory(game, registry),
		Font:     text.NewGoXFace(basicfont.Face7x13),
		Sounds:   NewSoundBank(audioContext),
		Log:      logger,
	}, nil
}
