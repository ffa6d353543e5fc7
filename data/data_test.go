package data

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"monbattle-ebiten/core"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func TestDefaultGameDataLoads(t *testing.T) {
	gd, err := DefaultGameData()
	if err != nil {
		t.Fatalf("DefaultGameData: %v", err)
	}
	for id, s := range gd.Species {
		if _, ok := gd.Abilities[s.Ability]; !ok {
			t.Errorf("species %s references unknown ability %s", id, s.Ability)
		}
		if s.Secondary == "" {
			t.Errorf("species %s secondary type not normalised", id)
		}
	}
	sproutle := gd.Species["sproutle"]
	if sproutle == nil {
		t.Fatal("sproutle missing")
	}
	moves := gd.InitialMoves(sproutle, 12)
	if len(moves) != core.MaxMoves {
		t.Fatalf("InitialMoves len = %d", len(moves))
	}
	if moves[0].ID != "leech_seed" || moves[3].ID != "sleep_powder" {
		t.Errorf("InitialMoves = %s..%s", moves[0].ID, moves[3].ID)
	}
	if got := gd.MovesLearnedAt(sproutle, 15); len(got) != 1 || got[0].ID != "razor_leaf" {
		t.Errorf("MovesLearnedAt(15) = %v", got)
	}
	growl := gd.Moves["growl"]
	if len(growl.StatChanges) != 1 || growl.StatChanges[0].Stat != core.StatAttack || growl.StatChanges[0].Stages != -1 {
		t.Errorf("growl stat changes = %+v", growl.StatChanges)
	}
	if gd.Moves["focus_energy"].StatChanges[0].Stat != core.StatCrit {
		t.Error("stat names with spaces/underscores not decoded")
	}
}

func TestLoadGameDataRejectsUnknownBehavior(t *testing.T) {
	moves := []byte(`moves:
  - {id: zap, name: Zap, type: Electric, category: Special, power: 40, accuracy: 100, target: Single, behavior: teleport}
`)
	_, err := LoadGameData([]byte("species: []"), moves, []byte("abilities: []"))
	if !errors.Is(err, ErrUnknownBehavior) {
		t.Fatalf("err = %v, want ErrUnknownBehavior", err)
	}

	abilities := []byte(`abilities:
  - {id: odd, name: Odd, behavior: telepathy}
`)
	_, err = LoadGameData([]byte("species: []"), []byte("moves: []"), abilities)
	if !errors.Is(err, ErrUnknownBehavior) {
		t.Fatalf("err = %v, want ErrUnknownBehavior", err)
	}
}

func TestLoadGameDataRejectsBrokenReferences(t *testing.T) {
	species := []byte(`species:
  - id: lonely
    name: Lonely
    primary: Normal
    base: {hp: 10, attack: 10, defense: 10, sp_attack: 10, sp_defense: 10, speed: 10}
    growth: Fast
    ability: missing
`)
	_, err := LoadGameData(species, []byte("moves: []"), []byte("abilities: []"))
	if !errors.Is(err, ErrUnknownReference) {
		t.Fatalf("err = %v, want ErrUnknownReference", err)
	}

	dup := []byte(`moves:
  - {id: tackle, name: Tackle, type: Normal, category: Physical, power: 40, accuracy: 100, target: Single, behavior: damage}
  - {id: tackle, name: Tackle, type: Normal, category: Physical, power: 40, accuracy: 100, target: Single, behavior: damage}
`)
	_, err = LoadGameData([]byte("species: []"), dup, []byte("abilities: []"))
	if !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("err = %v, want ErrDuplicateID", err)
	}
}

func TestLoadGameDataRejectsBadYAML(t *testing.T) {
	if _, err := LoadGameData([]byte("species: [::"), []byte("moves: []"), []byte("abilities: []")); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte("battle:\n  size: 2\n  trainer: true\nlog:\n  level: debug\n"))
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.Battle.Size != 2 || !cfg.Battle.Trainer || cfg.Log.Level != "debug" {
		t.Errorf("cfg = %+v", cfg.Battle)
	}
	if cfg.Balance.MultiTargetFactor != 0.75 || cfg.Log.Format != "console" {
		t.Error("defaults were not kept for omitted keys")
	}

	cases := map[string]string{
		"battle:\n  size: 4\n":                  "battle.size",
		"battle:\n  weather: Fog\n":             "battle.weather",
		"balance:\n  random_min: 1.5\n":         "balance.random_min",
		"balance:\n  stab_multiplier: 0\n":      "balance.stab_multiplier",
		"log:\n  level: chatty\n":               "log.level",
		"log:\n  format: xml\n":                 "log.format",
		"battle:\n  ally_party: [{species: a, level: 0}]\n": "level",
	}
	for raw, key := range cases {
		_, err := ParseConfig([]byte(raw))
		if err == nil || !strings.Contains(err.Error(), key) {
			t.Errorf("ParseConfig(%q) err = %v, want mention of %s", raw, err, key)
		}
	}
}

func TestLoadConfigFallsBackToEmbedded(t *testing.T) {
	t.Setenv("MONBATTLE_SEED", "42")
	t.Setenv("MONBATTLE_TRAINER", "true")
	cfg, err := LoadConfig("does-not-exist.yaml")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Battle.Seed != 42 || !cfg.Battle.Trainer {
		t.Errorf("env overrides not applied: %+v", cfg.Battle)
	}
	if len(cfg.Battle.AllyParty) == 0 || len(cfg.Battle.EnemyParty) == 0 {
		t.Error("embedded parties missing")
	}
}

func TestMessageManager(t *testing.T) {
	mm, err := NewMessageManager([]byte(`[{"id":"hello","text":"{user} used {move}!"}]`))
	if err != nil {
		t.Fatal(err)
	}
	got := mm.FormatMessage("hello", map[string]any{"user": "Sproutle", "move": "Vine Whip"})
	if got != "Sproutle used Vine Whip!" {
		t.Errorf("FormatMessage = %q", got)
	}
	if got := mm.FormatMessage("hello", map[string]any{"user": "X"}); got != "X used {move}!" {
		t.Errorf("missing param = %q", got)
	}
	if got := mm.FormatMessage("unknown", nil); got != "unknown" {
		t.Errorf("unknown id = %q", got)
	}
	if _, err := NewMessageManager([]byte(`[{"id":"a","text":"1"},{"id":"a","text":"2"}]`)); !errors.Is(err, ErrDuplicateID) {
		t.Errorf("duplicate ids err = %v", err)
	}
	if _, err := NewMessageManager(nil); err == nil {
		t.Error("nil data accepted")
	}
}

func TestDefaultMessagesCoverWeather(t *testing.T) {
	mm, err := DefaultMessages()
	if err != nil {
		t.Fatal(err)
	}
	for _, w := range []core.Weather{core.WeatherSun, core.WeatherRain, core.WeatherSandstorm, core.WeatherHail} {
		for _, prefix := range []string{"weather_", "weather_start_", "weather_end_"} {
			if _, ok := mm.GetRawMessage(prefix + string(w)); !ok {
				t.Errorf("missing message %s%s", prefix, w)
			}
		}
	}
}

func TestNewLoggerFormats(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LogConfig{Level: "debug", Format: "json"}, &buf)
	NewBattleLogger(logger, "b-1").LogHitCheck("A", "B", 0.9, 0.5, true)
	out := buf.String()
	if !strings.Contains(out, `"battle_id":"b-1"`) || !strings.Contains(out, `"hit":true`) {
		t.Errorf("json log line = %s", out)
	}

	buf.Reset()
	logger = NewLogger(LogConfig{Level: "error", Format: "json"}, &buf)
	NewBattleLogger(logger, "b-2").LogExpAward("A", 10, 20, 3)
	if buf.Len() != 0 {
		t.Errorf("info line written at error level: %s", buf.String())
	}
}

func TestLoadingWritesNothingToGlobalLogger(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf).Level(zerolog.TraceLevel)
	t.Cleanup(func() { log.Logger = prev })

	if _, err := DefaultGameData(); err != nil {
		t.Fatal(err)
	}
	mm, err := DefaultMessages()
	if err != nil {
		t.Fatal(err)
	}
	mm.FormatMessage("no_such_message", nil)
	if buf.Len() != 0 {
		t.Errorf("global logger received: %s", buf.String())
	}
}

func TestMessageManagerWarnsThroughInjectedLogger(t *testing.T) {
	mm, err := NewMessageManager([]byte(`[{"id":"hello","text":"{user} used {move}!"}]`))
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	mm.SetLogger(zerolog.New(&buf))
	mm.FormatMessage("hello", map[string]any{"user": "X"})
	mm.FormatMessage("unknown", nil)
	out := buf.String()
	if !strings.Contains(out, `"placeholder":"{move}"`) || !strings.Contains(out, `"id":"unknown"`) {
		t.Errorf("warnings = %s", out)
	}
	if mm.Len() != 1 {
		t.Errorf("Len = %d", mm.Len())
	}
}
