package systems

import (
	"time"

	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/yohamta/donburi/ecs"
)

// GetMatch returns the singleton match state, or nil before the scene has
// been configured.
func GetMatch(e *ecs.ECS) *components.MatchData {
	entry, ok := components.Match.First(e.World)
	if !ok {
		return nil
	}
	return components.Match.Get(entry)
}

// UpdateServe drives the serve countdown and the post-score delay. Both
// windows are measured against the match clock, not by counting frames.
func UpdateServe(e *ecs.ECS) {
	match := GetMatch(e)
	if match == nil || match.Finished {
		return
	}

	switch match.Phase {
	case components.PhaseServing:
		if !match.CountdownPlayed {
			PlaySFX(e, cfg.SoundCountdown)
			match.CountdownPlayed = true
			match.CountdownStarted = match.Now()
			if d, ok := SoundLength(cfg.SoundCountdown); ok {
				match.CountdownLength = d
			} else {
				match.CountdownLength = time.Duration(cfg.Gameplay.CountdownFallback) * time.Millisecond
			}
		}
		if match.Now().Sub(match.CountdownStarted) >= match.CountdownLength {
			match.Phase = components.PhaseRallying
		}

	case components.PhaseScoredWaiting:
		if match.Now().Sub(match.ScoredAt) >= match.RoundDelay {
			match.Phase = components.PhaseServing
			match.CountdownPlayed = false
		}
	}
}

// WhenRallying gates a system so it only runs during live play.
func WhenRallying(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		match := GetMatch(e)
		if match == nil || match.Finished || match.Phase != components.PhaseRallying {
			return
		}
		system(e)
	}
}
