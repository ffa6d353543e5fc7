package system

import (
	"fmt"
	"math/rand/v2"
	"time"

	"monbattle-ebiten/core"
	"monbattle-ebiten/data"
	"monbattle-ebiten/domain"
	"monbattle-ebiten/ecs/component"
	"monbattle-ebiten/ecs/entity"

	"github.com/google/uuid"
	"github.com/looplab/fsm"
	"github.com/rs/zerolog"
	"github.com/yohamta/donburi"
)

// Options は Battle の生成オプションです。ゼロ値のフィールドには既定値が使われます。
type Options struct {
	// Size は片側の場に出る数です (1〜3)。
	Size    int
	Trainer bool
	Weather core.Weather
	Rand    domain.Rand
	Balance data.BalanceConfig
	// Messages が nil の場合は埋め込みのメッセージを使います。
	Messages *data.MessageManager
	// Game が nil の場合、レベルアップ時に技を覚えません。
	Game     *data.GameData
	Registry *StrategyRegistry
	Logger   BattleLogger
	Log      zerolog.Logger
}

// Battle は1回の対戦の状態をすべて所有するターン処理エンジンです。
// 個体は donburi のワールドにエンティティとして登録され、場の状態も単一のエンティティが持ちます。
type Battle struct {
	ID uuid.UUID

	world    donburi.World
	entities map[*domain.Combatant]donburi.Entity
	size     int
	trainer  bool
	effects  domain.EffectRegistry
	phase    *fsm.FSM
	started  bool

	rand     domain.Rand
	balance  data.BalanceConfig
	messages *data.MessageManager
	game     *data.GameData
	registry *StrategyRegistry
	logger   BattleLogger
	log      zerolog.Logger

	hit    *HitCalculator
	damage *DamageCalculator
	catch  *CatchCalculator
}

// NewBattle は味方と相手のパーティから対戦を作成します。各パーティの先頭 Size 体が場に出ます。
func NewBattle(allies, enemies []*domain.Combatant, opts Options) (*Battle, error) {
	if opts.Size == 0 {
		opts.Size = 1
	}
	if opts.Size < 1 || opts.Size > 3 {
		return nil, fmt.Errorf("%w: battle size %d", ErrInvalidRoster, opts.Size)
	}
	if err := validateRoster(allies, enemies, opts.Size); err != nil {
		return nil, err
	}
	if opts.Rand == nil {
		seed := uint64(time.Now().UnixNano())
		opts.Rand = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
	if opts.Balance == (data.BalanceConfig{}) {
		opts.Balance = data.DefaultBalance()
	}
	if opts.Messages == nil {
		mm, err := data.DefaultMessages()
		if err != nil {
			return nil, err
		}
		mm.SetLogger(opts.Log)
		opts.Messages = mm
	}
	if opts.Registry == nil {
		opts.Registry = NewStrategyRegistry()
	}
	if opts.Logger == nil {
		opts.Logger = nopLogger{}
	}

	b := &Battle{
		ID:       uuid.New(),
		world:    donburi.NewWorld(),
		entities: make(map[*domain.Combatant]donburi.Entity, len(allies)+len(enemies)),
		size:     opts.Size,
		trainer:  opts.Trainer,
		rand:     opts.Rand,
		balance:  opts.Balance,
		messages: opts.Messages,
		game:     opts.Game,
		registry: opts.Registry,
		logger:   opts.Logger,
		log:      opts.Log,
	}
	b.hit = NewHitCalculator(b.rand, b.logger)
	b.damage = NewDamageCalculator(b.balance, b.rand, b.logger)
	b.catch = NewCatchCalculator(b.rand, b.logger)
	b.phase = newTurnPhase(b)

	entity.EnsureFieldEntity(b.world, opts.Weather, b.log)
	for c, e := range entity.SpawnParty(b.world, core.SideAlly, allies, b.size) {
		b.entities[c] = e
	}
	for c, e := range entity.SpawnParty(b.world, core.SideEnemy, enemies, b.size) {
		b.entities[c] = e
	}

	// 開始時点で場にいる相手を経験値分配用に記録します。
	for _, a := range b.Actives(core.SideAlly) {
		for _, e := range b.Actives(core.SideEnemy) {
			a.AddOpponent(e)
			e.AddOpponent(a)
		}
	}

	// 初期天候は無期限で続きます。
	if b.Weather() != core.WeatherNone {
		b.silent().addEffect(core.EffectWeather, b.Actives(core.SideAlly)[0], nil, 0)
	}

	b.log.Info().Str("battle_id", b.ID.String()).Int("size", b.size).Bool("trainer", b.trainer).
		Int("allies", len(allies)).Int("enemies", len(enemies)).Msg("対戦を開始します")
	return b, nil
}

func validateRoster(allies, enemies []*domain.Combatant, size int) error {
	if len(allies) < size || len(enemies) < size {
		return fmt.Errorf("%w: each party needs at least %d members (allies %d, enemies %d)",
			ErrInvalidRoster, size, len(allies), len(enemies))
	}
	seen := make(map[*domain.Combatant]bool, len(allies)+len(enemies))
	for _, c := range append(append([]*domain.Combatant{}, allies...), enemies...) {
		switch {
		case c == nil || c.Species == nil:
			return fmt.Errorf("%w: combatant without species", ErrInvalidRoster)
		case seen[c]:
			return fmt.Errorf("%w: %s appears twice", ErrInvalidRoster, c.Name)
		case c.Ability == nil || c.Ability.Strategy == nil:
			return fmt.Errorf("%w: %s has no bound ability", ErrInvalidRoster, c.Name)
		case len(c.Moves) > core.MaxMoves:
			return fmt.Errorf("%w: %s knows %d moves", ErrInvalidRoster, c.Name, len(c.Moves))
		}
		for _, m := range c.Moves {
			if m == nil || m.Template == nil || m.Strategy == nil {
				return fmt.Errorf("%w: %s has an unbound move", ErrInvalidRoster, c.Name)
			}
		}
		seen[c] = true
	}
	return nil
}

// --- 読み取り専用のビュー ---

// World は個体と場の状態を持つ donburi のワールドです。
func (b *Battle) World() donburi.World { return b.world }

// Size は片側の場に出る数です。
func (b *Battle) Size() int { return b.size }

// IsTrainerBattle はトレーナー戦かどうかを返します。
func (b *Battle) IsTrainerBattle() bool { return b.trainer }

// Rand は戦闘で使う乱数源です。
func (b *Battle) Rand() domain.Rand { return b.rand }

// Effects は効果レジストリです。呼び出し側は読み取りにだけ使ってください。
func (b *Battle) Effects() *domain.EffectRegistry { return &b.effects }

// Phase は現在のターンフェーズです。
func (b *Battle) Phase() string { return b.phase.Current() }

// Actives は side の場に出ている個体を位置順に返します。
func (b *Battle) Actives(side core.Side) []*domain.Combatant { return entity.Actives(b.world, side) }

// Reserves は side の控えを返します。
func (b *Battle) Reserves(side core.Side) []*domain.Combatant { return entity.Reserves(b.world, side) }

// Party は side の全員を返します。
func (b *Battle) Party(side core.Side) []*domain.Combatant { return entity.Party(b.world, side) }

// Opponents は c から見た相手側の場の個体です。
func (b *Battle) Opponents(c *domain.Combatant) []*domain.Combatant {
	return b.Actives(c.Side.Opposite())
}

// Allies は c 自身を含む味方側の場の個体です。
func (b *Battle) Allies(c *domain.Combatant) []*domain.Combatant {
	return b.Actives(c.Side)
}

// Weather は現在の天候です。
func (b *Battle) Weather() core.Weather { return entity.GetField(b.world).Weather }

// TurnNumber は終了したターン数です。
func (b *Battle) TurnNumber() int { return entity.GetField(b.world).Turn }

// Outcome は確定した勝敗です。ターン終了時に更新されます。
func (b *Battle) Outcome() core.Outcome { return entity.GetField(b.world).Outcome }

// SetForcedOutcome は通常の勝敗判定を上書きします。捕獲・逃走の技から使われます。
func (b *Battle) SetForcedOutcome(o core.Outcome) {
	entity.GetField(b.world).Forced = o
}

// allActives は味方・相手の順に場の個体を返します。
func (b *Battle) allActives() []*domain.Combatant {
	return append(b.Actives(core.SideAlly), b.Actives(core.SideEnemy)...)
}

func (b *Battle) entry(c *domain.Combatant) (*donburi.Entry, bool) {
	e, ok := b.entities[c]
	if !ok {
		return nil, false
	}
	return b.world.Entry(e), true
}

func (b *Battle) isActive(c *domain.Combatant) bool {
	entry, ok := b.entry(c)
	return ok && entity.IsActive(entry)
}

// evaluateOutcome は現在の勝敗を判定します。
// 強制された結果が優先され、次に相手の全滅 (勝ち)、味方の全滅 (負け) の順に判定します。
func (b *Battle) evaluateOutcome() core.Outcome {
	field := entity.GetField(b.world)
	if field.Forced.Decided() {
		return field.Forced
	}
	if !anyAlive(b.Party(core.SideEnemy)) {
		return core.OutcomeWin
	}
	if !anyAlive(b.Party(core.SideAlly)) {
		return core.OutcomeLoss
	}
	return core.OutcomeUndecided
}

func anyAlive(cs []*domain.Combatant) bool {
	for _, c := range cs {
		if c.IsAlive() {
			return true
		}
	}
	return false
}

func aliveOnly(cs []*domain.Combatant) []*domain.Combatant {
	out := cs[:0:0]
	for _, c := range cs {
		if c.IsAlive() {
			out = append(out, c)
		}
	}
	return out
}

func (b *Battle) field() *component.Field { return entity.GetField(b.world) }
