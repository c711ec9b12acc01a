package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// EventKind classifies an input event.
type EventKind int

const (
	EventQuit EventKind = iota
	EventKeyDown
	EventKeyUp
)

// Event is one discrete input event. Ebitengine exposes polled key state;
// the driver synthesizes these once per tick so scenes can consume a
// queue of key transitions instead of re-polling.
type Event struct {
	Kind EventKind
	Key  ebiten.Key
}

// Reusable slice for key polling to avoid allocations
var keyBuf []ebiten.Key

// PollEvents appends this tick's events to dst and returns it.
func PollEvents(dst []Event) []Event {
	if ebiten.IsWindowBeingClosed() {
		dst = append(dst, Event{Kind: EventQuit})
	}
	for _, k := range inpututil.AppendJustPressedKeys(keyBuf[:0]) {
		dst = append(dst, Event{Kind: EventKeyDown, Key: k})
	}
	for _, k := range inpututil.AppendJustReleasedKeys(keyBuf[:0]) {
		dst = append(dst, Event{Kind: EventKeyUp, Key: k})
	}
	return dst
}
