package systems

import (
	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePaddles moves every human paddle by its movement intent, clamped to
// the court. Run it through WhenRallying.
func UpdatePaddles(e *ecs.ECS) {
	components.Paddle.Each(e.World, func(entry *donburi.Entry) {
		paddle := components.Paddle.Get(entry)
		if paddle.AIControlled {
			return
		}
		obj := components.Object.Get(entry)

		if paddle.MoveUp {
			obj.Y -= paddle.Speed
		}
		if paddle.MoveDown {
			obj.Y += paddle.Speed
		}
		obj.Y = clampY(obj.Y, obj.H)
		obj.Update()
	})
}

// UpdateAI steers the right paddle toward a jittered read of the ball. The
// jitter plus the dead zone keep it beatable. Run it through WhenRallying.
func UpdateAI(e *ecs.ECS) {
	match := GetMatch(e)
	if match == nil || match.Mode != cfg.ModeOnePlayer {
		return
	}
	ballEntry, ok := components.Ball.First(e.World)
	if !ok {
		return
	}
	ballObj := components.Object.Get(ballEntry)

	components.Paddle.Each(e.World, func(entry *donburi.Entry) {
		paddle := components.Paddle.Get(entry)
		if !paddle.AIControlled {
			return
		}
		obj := components.Object.Get(entry)

		jitter := float64(match.Rand.Intn(2*cfg.Gameplay.AIJitter+1) - cfg.Gameplay.AIJitter)
		target := ballObj.CenterY() + jitter

		if target < obj.CenterY()-cfg.Gameplay.AIDeadZone {
			obj.Y -= paddle.Speed
		} else if target > obj.CenterY()+cfg.Gameplay.AIDeadZone {
			obj.Y += paddle.Speed
		}
		obj.Y = clampY(obj.Y, obj.H)
		obj.Update()
	})
}

func clampY(y, h float64) float64 {
	if y < 0 {
		return 0
	}
	if max := float64(cfg.Screen.Height) - h; y > max {
		return max
	}
	return y
}
