package data

import (
	"fmt"
	"sort"

	"monbattle-ebiten/core"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// GameData は読み込み済みの静的データです。テンプレートは読み込み後に変更されません。
type GameData struct {
	Species   map[string]*core.Species
	Moves     map[string]*core.MoveTemplate
	Abilities map[string]*core.AbilityTemplate
}

// SpeciesFile は species.yaml の構造です。
type SpeciesFile struct {
	Species []core.Species `yaml:"species" json:"species"`
}

// MovesFile は moves.yaml の構造です。
type MovesFile struct {
	Moves []core.MoveTemplate `yaml:"moves" json:"moves"`
}

// AbilitiesFile は abilities.yaml の構造です。
type AbilitiesFile struct {
	Abilities []core.AbilityTemplate `yaml:"abilities" json:"abilities"`
}

// LoadGameData は3つのYAMLデータを並行してパースし、相互参照を検証します。
// 振る舞い識別子が未登録のテンプレートはここで拒否され、戦闘開始前にエラーになります。
func LoadGameData(speciesYAML, movesYAML, abilitiesYAML []byte) (*GameData, error) {
	var (
		sf SpeciesFile
		mf MovesFile
		af AbilitiesFile
	)
	var g errgroup.Group
	g.Go(func() error { return decodeYAML("species", speciesYAML, &sf) })
	g.Go(func() error { return decodeYAML("moves", movesYAML, &mf) })
	g.Go(func() error { return decodeYAML("abilities", abilitiesYAML, &af) })
	if err := g.Wait(); err != nil {
		return nil, err
	}

	gd := &GameData{
		Species:   make(map[string]*core.Species, len(sf.Species)),
		Moves:     make(map[string]*core.MoveTemplate, len(mf.Moves)),
		Abilities: make(map[string]*core.AbilityTemplate, len(af.Abilities)),
	}
	for i := range mf.Moves {
		m := &mf.Moves[i]
		if err := validateMove(m); err != nil {
			return nil, err
		}
		if _, dup := gd.Moves[m.ID]; dup {
			return nil, fmt.Errorf("%w: move %q", ErrDuplicateID, m.ID)
		}
		gd.Moves[m.ID] = m
	}
	for i := range af.Abilities {
		a := &af.Abilities[i]
		if err := validateAbility(a); err != nil {
			return nil, err
		}
		if _, dup := gd.Abilities[a.ID]; dup {
			return nil, fmt.Errorf("%w: ability %q", ErrDuplicateID, a.ID)
		}
		gd.Abilities[a.ID] = a
	}
	for i := range sf.Species {
		s := &sf.Species[i]
		if err := gd.validateSpecies(s); err != nil {
			return nil, err
		}
		if _, dup := gd.Species[s.ID]; dup {
			return nil, fmt.Errorf("%w: species %q", ErrDuplicateID, s.ID)
		}
		gd.Species[s.ID] = s
	}

	return gd, nil
}

func decodeYAML(name string, raw []byte, out any) error {
	if err := yaml.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%s データのYAMLパースに失敗しました: %w", name, err)
	}
	return nil
}

func validateMove(m *core.MoveTemplate) error {
	if m.ID == "" {
		return fmt.Errorf("%w: move without id", ErrInvalidTemplate)
	}
	if !m.Behavior.Valid() {
		return fmt.Errorf("%w: move %q behavior %q", ErrUnknownBehavior, m.ID, m.Behavior)
	}
	if !m.Type.Valid() || m.Type == core.TypeNone {
		return fmt.Errorf("%w: move %q type %q", ErrInvalidTemplate, m.ID, m.Type)
	}
	switch m.Category {
	case core.CategoryPhysical, core.CategorySpecial, core.CategoryStatus:
	default:
		return fmt.Errorf("%w: move %q category %q", ErrInvalidTemplate, m.ID, m.Category)
	}
	switch m.Target {
	case core.TargetSelf, core.TargetSingle, core.TargetAdjacent, core.TargetAllies, core.TargetEnemies, core.TargetAll:
	default:
		return fmt.Errorf("%w: move %q target %q", ErrInvalidTemplate, m.ID, m.Target)
	}
	if m.Accuracy < 0 || m.Accuracy > 100 || m.Power < 0 || m.MaxUses < 0 || m.Chance < 0 || m.Chance > 100 {
		return fmt.Errorf("%w: move %q has out-of-range numbers", ErrInvalidTemplate, m.ID)
	}
	if m.Category != core.CategoryStatus && m.Power == 0 {
		return fmt.Errorf("%w: damaging move %q has no power", ErrInvalidTemplate, m.ID)
	}
	if m.Status == "" {
		m.Status = core.StatusNone
	}
	switch m.Behavior {
	case core.MoveAilment:
		if !m.Status.IsAilment() {
			return fmt.Errorf("%w: ailment move %q needs a status", ErrInvalidTemplate, m.ID)
		}
	case core.MoveWeather:
		if m.Weather == "" || m.Weather == core.WeatherNone {
			return fmt.Errorf("%w: weather move %q needs a weather", ErrInvalidTemplate, m.ID)
		}
	case core.MoveStatChange:
		if len(m.StatChanges) == 0 {
			return fmt.Errorf("%w: stat_change move %q has no stat_changes", ErrInvalidTemplate, m.ID)
		}
	case core.MoveCapture:
		if m.BallMultiplier <= 0 {
			m.BallMultiplier = 1
		}
	}
	for _, sc := range m.StatChanges {
		if sc.Stat < 0 || sc.Stat >= core.StatCount {
			return fmt.Errorf("%w: move %q stat %d", ErrInvalidTemplate, m.ID, sc.Stat)
		}
	}
	return nil
}

func validateAbility(a *core.AbilityTemplate) error {
	if a.ID == "" {
		return fmt.Errorf("%w: ability without id", ErrInvalidTemplate)
	}
	if !a.Behavior.Valid() {
		return fmt.Errorf("%w: ability %q behavior %q", ErrUnknownBehavior, a.ID, a.Behavior)
	}
	if a.Behavior == core.AbilityWeatherSetter && (a.Weather == "" || a.Weather == core.WeatherNone) {
		return fmt.Errorf("%w: weather_setter ability %q needs a weather", ErrInvalidTemplate, a.ID)
	}
	if a.Behavior == core.AbilityPinchBoost && (a.Type == "" || a.Type == core.TypeNone) {
		return fmt.Errorf("%w: pinch_boost ability %q needs a type", ErrInvalidTemplate, a.ID)
	}
	return nil
}

func (gd *GameData) validateSpecies(s *core.Species) error {
	if s.ID == "" {
		return fmt.Errorf("%w: species without id", ErrInvalidTemplate)
	}
	if !s.Primary.Valid() || s.Primary == core.TypeNone || s.Primary == "" || !s.Secondary.Valid() {
		return fmt.Errorf("%w: species %q types %q/%q", ErrInvalidTemplate, s.ID, s.Primary, s.Secondary)
	}
	if s.Secondary == "" {
		s.Secondary = core.TypeNone
	}
	switch s.Growth {
	case core.GrowthErratic, core.GrowthFast, core.GrowthMediumFast, core.GrowthMediumSlow, core.GrowthSlow, core.GrowthFluctuating:
	default:
		return fmt.Errorf("%w: species %q growth %q", ErrInvalidTemplate, s.ID, s.Growth)
	}
	if _, ok := gd.Abilities[s.Ability]; !ok {
		return fmt.Errorf("%w: species %q ability %q", ErrUnknownReference, s.ID, s.Ability)
	}
	for _, e := range s.Learnset {
		if _, ok := gd.Moves[e.Move]; !ok {
			return fmt.Errorf("%w: species %q learnset move %q", ErrUnknownReference, s.ID, e.Move)
		}
	}
	sort.SliceStable(s.Learnset, func(i, j int) bool { return s.Learnset[i].Level < s.Learnset[j].Level })
	return nil
}

// MovesLearnedAt は種族がちょうど level で覚える技です。
func (gd *GameData) MovesLearnedAt(s *core.Species, level int) []*core.MoveTemplate {
	var out []*core.MoveTemplate
	for _, e := range s.Learnset {
		if e.Level == level {
			out = append(out, gd.Moves[e.Move])
		}
	}
	return out
}

// InitialMoves は level までに覚える技のうち、最後に覚えた最大4つです。
func (gd *GameData) InitialMoves(s *core.Species, level int) []*core.MoveTemplate {
	var out []*core.MoveTemplate
	for _, e := range s.Learnset {
		if e.Level > level {
			break
		}
		out = append(out, gd.Moves[e.Move])
	}
	if len(out) > core.MaxMoves {
		out = out[len(out)-core.MaxMoves:]
	}
	return out
}

// Move はIDで技テンプレートを引きます。
func (gd *GameData) Move(id string) (*core.MoveTemplate, error) {
	m, ok := gd.Moves[id]
	if !ok {
		return nil, fmt.Errorf("%w: move %q", ErrUnknownReference, id)
	}
	return m, nil
}
