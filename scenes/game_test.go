package scenes

import (
	"math/rand"
	"testing"
	"time"

	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/systems"
	"github.com/automoto/pong/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func newTestMatch(t *testing.T, mode cfg.GameMode) (*GameScene, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Unix(1000, 0)}
	g := NewGameScene(zap.NewNop(), mode,
		WithClock(clock.Now),
		WithRand(rand.New(rand.NewSource(42))),
	)
	g.Update() // first frame configures the world and starts the serve
	return g, clock
}

// enterRally advances the fake clock past the serve countdown.
func enterRally(t *testing.T, g *GameScene, clock *fakeClock) {
	t.Helper()
	clock.Advance(1300 * time.Millisecond)
	g.Update()
	require.Equal(t, components.PhaseRallying, systems.GetMatch(g.ecs).Phase)
}

func ballParts(t *testing.T, g *GameScene) (*components.BallData, *components.ObjectData) {
	t.Helper()
	entry, ok := tags.Ball.First(g.ecs.World)
	require.True(t, ok)
	return components.Ball.Get(entry), components.Object.Get(entry)
}

func paddleParts(t *testing.T, g *GameScene, side cfg.PaddleID) (*components.PaddleData, *components.ObjectData) {
	t.Helper()
	var paddle *components.PaddleData
	var obj *components.ObjectData
	components.Paddle.Each(g.ecs.World, func(entry *donburi.Entry) {
		p := components.Paddle.Get(entry)
		if p.Side == side {
			paddle = p
			obj = components.Object.Get(entry)
		}
	})
	require.NotNil(t, paddle)
	return paddle, obj
}

func TestServeHoldsTheBall(t *testing.T) {
	g, _ := newTestMatch(t, cfg.ModeOnePlayer)
	_, obj := ballParts(t, g)
	startX, startY := obj.X, obj.Y

	for i := 0; i < 5; i++ {
		g.Update()
	}

	match := systems.GetMatch(g.ecs)
	assert.Equal(t, components.PhaseServing, match.Phase)
	assert.Equal(t, startX, obj.X)
	assert.Equal(t, startY, obj.Y)
}

func TestCountdownFallbackStartsRally(t *testing.T) {
	g, clock := newTestMatch(t, cfg.ModeOnePlayer)
	match := systems.GetMatch(g.ecs)
	require.True(t, match.CountdownPlayed)
	require.Equal(t, 1200*time.Millisecond, match.CountdownLength)

	clock.Advance(1100 * time.Millisecond)
	g.Update()
	assert.Equal(t, components.PhaseServing, match.Phase)

	clock.Advance(200 * time.Millisecond)
	g.Update()
	assert.Equal(t, components.PhaseRallying, match.Phase)
}

func TestBallMovesDiagonally(t *testing.T) {
	g, clock := newTestMatch(t, cfg.ModeOnePlayer)
	enterRally(t, g, clock)

	ball, obj := ballParts(t, g)
	ball.VX, ball.VY = -8, -8
	startX, startY := obj.X, obj.Y

	g.Update()

	assert.Equal(t, startX-8, obj.X)
	assert.Equal(t, startY-8, obj.Y)
}

func TestWallBounceFlipsVerticalVelocity(t *testing.T) {
	g, clock := newTestMatch(t, cfg.ModeOnePlayer)
	enterRally(t, g, clock)

	ball, obj := ballParts(t, g)
	ball.VX, ball.VY = 0, -8
	obj.Y = 5
	obj.Update()

	g.Update()

	assert.Equal(t, float64(8), ball.VY)
	audioData := systems.GetOrCreateAudio(g.ecs)
	assert.Contains(t, audioData.PendingSFX, cfg.SoundPaddleHit)
}

func TestScoringResetsTheCourt(t *testing.T) {
	g, clock := newTestMatch(t, cfg.ModeOnePlayer)
	enterRally(t, g, clock)

	ball, ballObj := ballParts(t, g)
	leftPaddle, leftObj := paddleParts(t, g, cfg.PaddleLeft)

	// Drag the left paddle away from its start, then let the ball clear the
	// left edge.
	leftObj.Y = 0
	leftObj.Update()
	ball.VX, ball.VY = -8, 0
	ballObj.X = -30
	ballObj.Update()

	g.Update()

	match := systems.GetMatch(g.ecs)
	assert.Equal(t, 1, match.RightScore)
	assert.Equal(t, 0, match.LeftScore)
	assert.Equal(t, components.PhaseScoredWaiting, match.Phase)
	assert.False(t, match.Finished)
	assert.True(t, g.Valid())

	// Ball recentered with a fresh full-speed velocity on both axes.
	assert.Equal(t, float64(cfg.Screen.Width)/2-ballObj.W/2, ballObj.X)
	assert.Equal(t, float64(cfg.Screen.Height)/2-ballObj.H/2, ballObj.Y)
	assert.Equal(t, cfg.Gameplay.BallSpeed, abs(ball.VX))
	assert.Equal(t, cfg.Gameplay.BallSpeed, abs(ball.VY))

	// Paddles back on their marks.
	assert.Equal(t, leftPaddle.StartY, leftObj.Y)

	audioData := systems.GetOrCreateAudio(g.ecs)
	assert.Contains(t, audioData.PendingSFX, cfg.SoundScore)
}

func TestRoundDelayLeadsToNextServe(t *testing.T) {
	g, clock := newTestMatch(t, cfg.ModeOnePlayer)
	enterRally(t, g, clock)

	ball, ballObj := ballParts(t, g)
	ball.VX, ball.VY = -8, 0
	ballObj.X = -30
	ballObj.Update()
	g.Update()

	match := systems.GetMatch(g.ecs)
	require.Equal(t, components.PhaseScoredWaiting, match.Phase)

	// The delay has not elapsed: still waiting, ball frozen.
	g.Update()
	assert.Equal(t, components.PhaseScoredWaiting, match.Phase)
	assert.Equal(t, float64(cfg.Screen.Width)/2-ballObj.W/2, ballObj.X)

	clock.Advance(1001 * time.Millisecond)
	g.Update()
	assert.Equal(t, components.PhaseServing, match.Phase)
	assert.False(t, match.CountdownPlayed)

	g.Update() // rearms the countdown
	assert.True(t, match.CountdownPlayed)

	clock.Advance(1300 * time.Millisecond)
	g.Update()
	assert.Equal(t, components.PhaseRallying, match.Phase)
	assert.Equal(t, 1, match.RightScore)
	assert.Equal(t, 0, match.LeftScore)

	// A full cycle without collisions leaves the paddles on their marks.
	leftPaddle, leftObj := paddleParts(t, g, cfg.PaddleLeft)
	rightPaddle, rightObj := paddleParts(t, g, cfg.PaddleRight)
	assert.Equal(t, leftPaddle.StartY, leftObj.Y)
	assert.Equal(t, rightPaddle.StartY, rightObj.Y)
}

func TestMatchFinishesAtWinningScore(t *testing.T) {
	g, clock := newTestMatch(t, cfg.ModeOnePlayer)
	enterRally(t, g, clock)

	match := systems.GetMatch(g.ecs)
	match.RightScore = 2

	ball, ballObj := ballParts(t, g)
	ball.VX, ball.VY = -8, 0
	ballObj.X = -30
	ballObj.Update()

	g.Update()

	assert.Equal(t, 3, match.RightScore)
	assert.True(t, match.Finished)
	assert.False(t, g.Valid())
	assert.Equal(t, "AI", g.Winner())
}

func TestFinishedMatchStaysFinished(t *testing.T) {
	g, clock := newTestMatch(t, cfg.ModeOnePlayer)
	enterRally(t, g, clock)

	match := systems.GetMatch(g.ecs)
	match.RightScore = 2
	ball, ballObj := ballParts(t, g)
	ball.VX, ball.VY = -8, 0
	ballObj.X = -30
	ballObj.Update()
	g.Update()
	require.True(t, match.Finished)

	for i := 0; i < 10; i++ {
		clock.Advance(time.Second)
		g.Update()
	}

	assert.True(t, match.Finished)
	assert.Equal(t, 3, match.RightScore)
	assert.Equal(t, 0, match.LeftScore)
	assert.Equal(t, components.PhaseScoredWaiting, match.Phase)
	assert.False(t, g.Valid())
}

func TestEscapeAbortsMatch(t *testing.T) {
	g, _ := newTestMatch(t, cfg.ModeOnePlayer)
	g.ProcessEvent(Event{Kind: EventKeyDown, Key: ebiten.KeyEscape})

	assert.False(t, g.Valid())
	assert.Equal(t, "AI", g.Winner(), "an aborted match goes to the right side")
}

func TestTwoPlayerWinnerNames(t *testing.T) {
	g, _ := newTestMatch(t, cfg.ModeTwoPlayer)
	match := systems.GetMatch(g.ecs)

	match.LeftScore = 3
	match.Finished = true
	assert.Equal(t, "Player 1", g.Winner())

	match.LeftScore = 0
	match.RightScore = 3
	assert.Equal(t, "Player 2", g.Winner())
}

func TestKeyIntentsOnePlayer(t *testing.T) {
	g, _ := newTestMatch(t, cfg.ModeOnePlayer)
	left, _ := paddleParts(t, g, cfg.PaddleLeft)
	right, _ := paddleParts(t, g, cfg.PaddleRight)

	g.ProcessEvent(Event{Kind: EventKeyDown, Key: ebiten.KeyW})
	assert.True(t, left.MoveUp)
	assert.False(t, right.MoveUp, "the AI paddle ignores keys")

	g.ProcessEvent(Event{Kind: EventKeyUp, Key: ebiten.KeyW})
	assert.False(t, left.MoveUp)

	// Single player binds the arrows to the same paddle.
	g.ProcessEvent(Event{Kind: EventKeyDown, Key: ebiten.KeyArrowDown})
	assert.True(t, left.MoveDown)
}

func TestKeyIntentsTwoPlayer(t *testing.T) {
	g, _ := newTestMatch(t, cfg.ModeTwoPlayer)
	left, _ := paddleParts(t, g, cfg.PaddleLeft)
	right, _ := paddleParts(t, g, cfg.PaddleRight)

	g.ProcessEvent(Event{Kind: EventKeyDown, Key: ebiten.KeyArrowUp})
	assert.True(t, right.MoveUp)
	assert.False(t, left.MoveUp)

	g.ProcessEvent(Event{Kind: EventKeyDown, Key: ebiten.KeyS})
	assert.True(t, left.MoveDown)
	assert.False(t, right.MoveDown)
}

func TestPaddleMovementClampsToCourt(t *testing.T) {
	g, clock := newTestMatch(t, cfg.ModeOnePlayer)
	enterRally(t, g, clock)

	// Freeze the ball so no point interrupts the run.
	ball, _ := ballParts(t, g)
	ball.VX, ball.VY = 0, 0

	left, leftObj := paddleParts(t, g, cfg.PaddleLeft)
	left.MoveUp = true
	for i := 0; i < 40; i++ {
		g.Update()
	}
	assert.Equal(t, float64(0), leftObj.Y)

	left.MoveUp = false
	left.MoveDown = true
	for i := 0; i < 80; i++ {
		g.Update()
	}
	assert.Equal(t, float64(cfg.Screen.Height)-leftObj.H, leftObj.Y)
}

func TestAITracksBall(t *testing.T) {
	g, clock := newTestMatch(t, cfg.ModeOnePlayer)
	enterRally(t, g, clock)

	ball, ballObj := ballParts(t, g)
	ball.VX, ball.VY = 0, 0
	ballObj.Y = 0
	ballObj.Update()

	_, rightObj := paddleParts(t, g, cfg.PaddleRight)
	startY := rightObj.Y

	for i := 0; i < 10; i++ {
		g.Update()
	}

	// Far above the dead zone even with maximum jitter, so the AI climbs at
	// full speed every frame.
	assert.Equal(t, startY-10*cfg.Gameplay.AISpeed, rightObj.Y)
}

func TestAIDeadZoneHoldsPosition(t *testing.T) {
	g, clock := newTestMatch(t, cfg.ModeOnePlayer)
	enterRally(t, g, clock)

	ball, ballObj := ballParts(t, g)
	ball.VX, ball.VY = 0, 0

	_, rightObj := paddleParts(t, g, cfg.PaddleRight)
	ballObj.Y = rightObj.CenterY() - ballObj.H/2
	ballObj.Update()
	startY := rightObj.Y

	for i := 0; i < 10; i++ {
		g.Update()
	}

	// Jitter never exceeds the dead zone, so an aligned ball draws no move.
	assert.Equal(t, startY, rightObj.Y)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
