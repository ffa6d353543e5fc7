// dataschema はゲームデータと設定ファイルの JSON Schema を書き出します。
// エディタの補完や外部ツールでの検証に使います。
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"monbattle-ebiten/data"

	"github.com/invopop/jsonschema"
	"github.com/rs/zerolog/log"
)

// schemaTargets は出力ファイル名と対応する型です。
var schemaTargets = []struct {
	file string
	v    any
}{
	{"config.schema.json", &data.Config{}},
	{"species.schema.json", &data.SpeciesFile{}},
	{"moves.schema.json", &data.MovesFile{}},
	{"abilities.schema.json", &data.AbilitiesFile{}},
}

func main() {
	out := flag.String("out", "schema", "出力先のディレクトリ")
	flag.Parse()
	data.NewLogger(data.LogConfig{Level: "info", Format: "console"}, os.Stderr)

	if err := os.MkdirAll(*out, 0o755); err != nil {
		log.Fatal().Err(err).Str("dir", *out).Msg("出力先を作成できませんでした")
	}
	r := &jsonschema.Reflector{AllowAdditionalProperties: true}
	for _, t := range schemaTargets {
		path := filepath.Join(*out, t.file)
		if err := writeSchema(r, t.v, path); err != nil {
			log.Fatal().Err(err).Str("file", path).Msg("スキーマの書き出しに失敗しました")
		}
		log.Info().Str("file", path).Msg("スキーマを書き出しました")
	}
}

// writeSchema は一時ファイルに書いてから置き換えます。
func writeSchema(r *jsonschema.Reflector, v any, path string) error {
	raw, err := json.MarshalIndent(r.Reflect(v), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal schema: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, append(raw, '\n'), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
