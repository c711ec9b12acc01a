package scenes

import (
	"math/rand"
	"sync"
	"time"

	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/systems"
	"github.com/automoto/pong/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// GameScene simulates one match. It is created fresh per match and becomes
// invalid when either side reaches the winning score (or on quit/escape).
type GameScene struct {
	base
	mode cfg.GameMode
	ecs  *ecs.ECS
	once sync.Once

	now func() time.Time
	rng *rand.Rand
}

// GameOption overrides a GameScene dependency, mainly for deterministic tests.
type GameOption func(*GameScene)

// WithClock substitutes the timer clock.
func WithClock(now func() time.Time) GameOption {
	return func(g *GameScene) { g.now = now }
}

// WithRand substitutes the randomness behind serves and AI jitter.
func WithRand(rng *rand.Rand) GameOption {
	return func(g *GameScene) { g.rng = rng }
}

// NewGameScene creates a match in the given mode.
func NewGameScene(log *zap.Logger, mode cfg.GameMode, opts ...GameOption) *GameScene {
	g := &GameScene{
		base: newBase(KindGame, cfg.Colors.Court, cfg.Sound.GameplayMusic, log),
		mode: mode,
		now:  time.Now,
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *GameScene) configure() {
	e := ecs.NewECS(donburi.NewWorld())

	factory.CreateSpace(e)
	factory.CreateBall(e)
	factory.CreatePaddle(e, cfg.PaddleLeft, false)
	factory.CreatePaddle(e, cfg.PaddleRight, g.mode == cfg.ModeOnePlayer)
	factory.CreateMatch(e, g.mode, g.now, g.rng)

	e.AddSystem(systems.UpdateAudio)
	e.AddSystem(systems.UpdateServe)
	e.AddSystem(systems.WhenRallying(systems.UpdateBall))
	e.AddSystem(systems.WhenRallying(systems.UpdatePaddles))
	e.AddSystem(systems.WhenRallying(systems.UpdateAI))

	e.AddRenderer(cfg.LayerDefault, systems.DrawMatch)

	g.ecs = e
}

func (g *GameScene) Update() {
	g.once.Do(g.configure)
	g.ecs.Update()
}

func (g *GameScene) Draw(screen *ebiten.Image) {
	g.base.Draw(screen)
	if g.ecs == nil {
		return
	}
	g.ecs.Draw(screen)
}

// ProcessEvent maps key transitions onto paddle movement intents for the
// current mode's bindings.
func (g *GameScene) ProcessEvent(ev Event) {
	g.base.ProcessEvent(ev)
	if ev.Kind != EventKeyDown && ev.Kind != EventKeyUp {
		return
	}
	g.once.Do(g.configure)

	pressed := ev.Kind == EventKeyDown
	components.Paddle.Each(g.ecs.World, func(entry *donburi.Entry) {
		paddle := components.Paddle.Get(entry)
		if paddle.AIControlled {
			return
		}
		binds := cfg.KeyBinds(g.mode, paddle.Side)
		if containsKey(binds.Up, ev.Key) {
			paddle.MoveUp = pressed
		}
		if containsKey(binds.Down, ev.Key) {
			paddle.MoveDown = pressed
		}
	})
}

// Valid is false once the match has a winner or the base exits fired.
func (g *GameScene) Valid() bool {
	if !g.base.Valid() {
		return false
	}
	if g.ecs == nil {
		return true
	}
	if match := systems.GetMatch(g.ecs); match != nil {
		return !match.Finished
	}
	return true
}

// Winner reports the display name of the winning side. An aborted match
// counts for the right side unless the left already clinched it.
func (g *GameScene) Winner() string {
	if g.ecs != nil {
		if match := systems.GetMatch(g.ecs); match != nil {
			return match.Winner()
		}
	}
	match := components.MatchData{Mode: g.mode, WinningScore: cfg.Gameplay.WinningScore}
	return match.Winner()
}

// Mode reports the game mode this match runs under.
func (g *GameScene) Mode() cfg.GameMode {
	return g.mode
}

func containsKey(keys []ebiten.Key, key ebiten.Key) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}
	return false
}
