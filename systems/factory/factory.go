package factory

import (
	"math/rand"
	"time"

	"github.com/automoto/pong/archetypes"
	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace builds the collision space covering the court.
func CreateSpace(e *ecs.ECS) *donburi.Entry {
	space := e.World.Entry(e.World.Create(components.Space))
	components.Space.SetValue(space, components.SpaceData{
		Space: resolv.NewSpace(cfg.Screen.Width, cfg.Screen.Height, 30, 30),
	})
	return space
}

// CreateBall spawns the ball at the center of the court, moving toward the
// lower right as the original serve does.
func CreateBall(e *ecs.ECS) *donburi.Entry {
	size := cfg.Gameplay.BallSize
	x := float64(cfg.Screen.Width)/2 - size/2
	y := float64(cfg.Screen.Height)/2 - size/2

	ball := archetypes.Ball.Spawn(e)
	obj := resolv.NewObject(x, y, size, size, tags.ResolvBall)
	obj.Data = ball
	components.Object.SetValue(ball, components.ObjectData{Object: obj})
	components.Ball.SetValue(ball, components.BallData{
		VX: cfg.Gameplay.BallSpeed,
		VY: cfg.Gameplay.BallSpeed,
	})

	addToSpace(e, obj)
	return ball
}

// CreatePaddle spawns one paddle at its start position. aiControlled paddles
// ignore key intents and track the ball.
func CreatePaddle(e *ecs.ECS, side cfg.PaddleID, aiControlled bool) *donburi.Entry {
	x := cfg.Gameplay.LeftPaddleX
	resolvTag := tags.ResolvPaddleLeft
	speed := cfg.Gameplay.PlayerSpeed
	if side == cfg.PaddleRight {
		x = cfg.Gameplay.RightPaddleX
		resolvTag = tags.ResolvPaddleRight
	}
	if aiControlled {
		speed = cfg.Gameplay.AISpeed
	}
	y := float64(cfg.Screen.Height)/2 - cfg.Gameplay.PaddleStartDY

	paddle := archetypes.Paddle.Spawn(e)
	obj := resolv.NewObject(x, y, cfg.Gameplay.PaddleWidth, cfg.Gameplay.PaddleHeight, resolvTag)
	obj.Data = paddle
	components.Object.SetValue(paddle, components.ObjectData{Object: obj})
	components.Paddle.SetValue(paddle, components.PaddleData{
		Side:         side,
		Speed:        speed,
		AIControlled: aiControlled,
		StartX:       x,
		StartY:       y,
	})

	addToSpace(e, obj)
	return paddle
}

// CreateMatch spawns the singleton match state for the given mode.
func CreateMatch(e *ecs.ECS, mode cfg.GameMode, now func() time.Time, rng *rand.Rand) *donburi.Entry {
	match := archetypes.Match.Spawn(e)
	components.Match.SetValue(match, components.MatchData{
		Mode:         mode,
		Phase:        components.PhaseServing,
		WinningScore: cfg.Gameplay.WinningScore,
		RoundDelay:   time.Duration(cfg.Gameplay.RoundDelayMs) * time.Millisecond,
		Now:          now,
		Rand:         rng,
	})
	return match
}

func addToSpace(e *ecs.ECS, obj *resolv.Object) {
	if spaceEntry, ok := components.Space.First(e.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}
