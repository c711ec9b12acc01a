package systems

import (
	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBall advances the ball one frame: paddle bounce, movement, scoring,
// then wall bounce, in that order. Run it through WhenRallying.
func UpdateBall(e *ecs.ECS) {
	match := GetMatch(e)
	ballEntry, ok := tags.Ball.First(e.World)
	if match == nil || !ok {
		return
	}
	ball := components.Ball.Get(ballEntry)
	obj := components.Object.Get(ballEntry)

	// Paddle bounce. The left paddle is checked first and at most one
	// horizontal flip happens per frame, so a ball overlapping both
	// paddles at once still reverses only once.
	if hitsPaddle(obj.Object, tags.ResolvPaddleLeft) {
		ball.VX *= -1
		PlaySFX(e, cfg.SoundPaddleHit)
	} else if hitsPaddle(obj.Object, tags.ResolvPaddleRight) {
		ball.VX *= -1
		PlaySFX(e, cfg.SoundPaddleHit)
	}

	obj.X += ball.VX
	obj.Y += ball.VY
	obj.Update()

	// Scoring: the ball has to fully clear the court edge.
	width := float64(cfg.Screen.Width)
	if obj.X+obj.W < 0 {
		scorePoint(e, match, cfg.PaddleRight)
	} else if obj.X > width {
		scorePoint(e, match, cfg.PaddleLeft)
	}

	// Wall bounce reuses the paddle sound, as the original does.
	height := float64(cfg.Screen.Height)
	if obj.Y+obj.H >= height || obj.Y <= 0 {
		ball.VY *= -1
		PlaySFX(e, cfg.SoundPaddleHit)
	}
}

// hitsPaddle confirms an exact AABB overlap between the ball and the paddle
// with the given tag. Check narrows candidates by cell; the rectangle test
// keeps the bounce pixel-accurate.
func hitsPaddle(ball *resolv.Object, paddleTag string) bool {
	col := ball.Check(0, 0, paddleTag)
	if col == nil {
		return false
	}
	for _, other := range col.Objects {
		if rectsOverlap(ball, other) {
			return true
		}
	}
	return false
}

func rectsOverlap(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && a.X+a.W > b.X && a.Y < b.Y+b.H && a.Y+a.H > b.Y
}

// scorePoint awards one point, resets the court, and latches the match
// finished once the winning score is reached.
func scorePoint(e *ecs.ECS, match *components.MatchData, side cfg.PaddleID) {
	if side == cfg.PaddleLeft {
		match.LeftScore++
	} else {
		match.RightScore++
	}
	PlaySFX(e, cfg.SoundScore)

	resetBall(e, match)
	resetPaddles(e)

	match.ScoredAt = match.Now()
	match.Phase = components.PhaseScoredWaiting

	if match.LeftScore >= match.WinningScore || match.RightScore >= match.WinningScore {
		match.Finished = true
	}
}

// resetBall recenters the ball and deals a fresh velocity: fixed magnitude,
// each axis sign drawn independently.
func resetBall(e *ecs.ECS, match *components.MatchData) {
	ballEntry, ok := tags.Ball.First(e.World)
	if !ok {
		return
	}
	ball := components.Ball.Get(ballEntry)
	obj := components.Object.Get(ballEntry)

	obj.X = float64(cfg.Screen.Width)/2 - obj.W/2
	obj.Y = float64(cfg.Screen.Height)/2 - obj.H/2
	obj.Update()

	ball.VX = cfg.Gameplay.BallSpeed * randomSign(match)
	ball.VY = cfg.Gameplay.BallSpeed * randomSign(match)
}

func resetPaddles(e *ecs.ECS) {
	components.Paddle.Each(e.World, func(entry *donburi.Entry) {
		paddle := components.Paddle.Get(entry)
		obj := components.Object.Get(entry)
		obj.X = paddle.StartX
		obj.Y = paddle.StartY
		obj.Update()
	})
}

func randomSign(match *components.MatchData) float64 {
	if match.Rand.Intn(2) == 0 {
		return -1
	}
	return 1
}
