package components

import (
	"math/rand"
	"time"

	cfg "github.com/automoto/pong/config"
	"github.com/yohamta/donburi"
)

// MatchPhase is the per-round state of a match.
type MatchPhase int

const (
	PhaseServing       MatchPhase = iota // countdown playing, no physics
	PhaseRallying                        // normal play
	PhaseScoredWaiting                   // post-score delay before the next serve
)

// String returns the string representation of the match phase.
func (p MatchPhase) String() string {
	switch p {
	case PhaseServing:
		return "Serving"
	case PhaseRallying:
		return "Rallying"
	case PhaseScoredWaiting:
		return "ScoredWaiting"
	default:
		return "Unknown"
	}
}

// MatchData is the singleton component holding one match's state.
type MatchData struct {
	Mode  cfg.GameMode
	Phase MatchPhase

	LeftScore    int
	RightScore   int
	WinningScore int

	// Finished latches true the instant either score reaches WinningScore
	// and is never cleared.
	Finished bool

	// Serve countdown bookkeeping.
	CountdownPlayed  bool
	CountdownStarted time.Time
	CountdownLength  time.Duration

	// Post-score delay bookkeeping.
	ScoredAt   time.Time
	RoundDelay time.Duration

	// Injectable clock and randomness so tests can run deterministically.
	Now  func() time.Time
	Rand *rand.Rand
}

var Match = donburi.NewComponentType[MatchData]()

// LeftName and RightName give the display names for each side under the
// match's game mode.
func (m *MatchData) LeftName() string {
	if m.Mode == cfg.ModeTwoPlayer {
		return "Player 1"
	}
	return "Player"
}

func (m *MatchData) RightName() string {
	if m.Mode == cfg.ModeTwoPlayer {
		return "Player 2"
	}
	return "AI"
}

// Winner reports the winning side's display name. An aborted match counts
// as a win for the right side unless the left side already reached the
// winning score.
func (m *MatchData) Winner() string {
	if m.LeftScore >= m.WinningScore {
		return m.LeftName()
	}
	return m.RightName()
}
