package scenes

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// ErrNoNextScene is returned when GoToNext is called on the last scene.
var ErrNoNextScene = errors.New("no next scene")

// Manager owns an ordered sequence of scenes and forwards every call to the
// single active one. Scenes are owned by the manager for their lifetime.
type Manager struct {
	scenes  []Scene
	current int
	log     *zap.Logger
}

// NewManager creates a manager over a non-empty ordered scene list. The
// first scene becomes active and is started immediately.
func NewManager(log *zap.Logger, scenes ...Scene) (*Manager, error) {
	if len(scenes) == 0 {
		return nil, errors.New("scene manager needs at least one scene")
	}
	m := &Manager{
		scenes: scenes,
		log:    log,
	}
	m.Active().Start()
	return m, nil
}

// Active returns the currently active scene.
func (m *Manager) Active() Scene {
	return m.scenes[m.current]
}

// ProcessEvent forwards one input event to the active scene.
func (m *Manager) ProcessEvent(ev Event) {
	m.Active().ProcessEvent(ev)
}

// Update advances the active scene by one frame.
func (m *Manager) Update() {
	m.Active().Update()
}

// Draw renders the active scene.
func (m *Manager) Draw(screen *ebiten.Image) {
	m.Active().Draw(screen)
}

// Valid reports whether the active scene is still running. The driver
// inspects this every tick and decides whether to append a scene, advance,
// or terminate.
func (m *Manager) Valid() bool {
	return m.Active().Valid()
}

// GoToNext ends the active scene, advances, and starts the next one.
// The outgoing End always runs before the incoming Start.
func (m *Manager) GoToNext() error {
	if m.current >= len(m.scenes)-1 {
		return ErrNoNextScene
	}

	out := m.Active()
	out.End()
	m.current++
	in := m.Active()
	in.Start()

	m.log.Info("scene transition",
		zap.Stringer("from", out.Kind()),
		zap.Stringer("to", in.Kind()))
	return nil
}

// Add appends a scene to the end of the sequence.
func (m *Manager) Add(s Scene) {
	m.scenes = append(m.scenes, s)
}
