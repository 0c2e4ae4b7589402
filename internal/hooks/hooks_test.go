package hooks

import (
	"bytes"
	"log"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/nickelinvasion/snake-game/internal/audio/synth"
	"github.com/nickelinvasion/snake-game/internal/engine"
)

type recordingSound struct {
	calls []string
}

func (r *recordingSound) Play(s synth.Sound) { r.calls = append(r.calls, "play:"+s.String()) }
func (r *recordingSound) Pause()             { r.calls = append(r.calls, "pause") }
func (r *recordingSound) Resume()            { r.calls = append(r.calls, "resume") }

type countingDisplay struct {
	n int
}

func (d *countingDisplay) Invalidate() { d.n++ }

func newWired(t *testing.T) (*engine.Engine, *recordingSound, *countingDisplay, *bytes.Buffer) {
	t.Helper()
	bus := engine.NewEventBus()
	eng := engine.New(engine.NewRand(7), bus)
	sound := &recordingSound{}
	hud := &countingDisplay{}
	var logs bytes.Buffer
	Wire(bus, eng, hud, sound, log.New(&logs, "", 0))
	return eng, sound, hud, &logs
}

func TestGameOverPausesMusicUntilReset(t *testing.T) {
	eng, sound, _, logs := newWired(t)

	// A 1x1 field: the only move lands on the snake's own cell.
	eng.Reset(1, 1)
	sound.calls = nil
	eng.Tick()
	if eng.State() != engine.StateGameOver {
		t.Fatalf("Expected game over, got %v", eng.State())
	}
	if want := []string{"pause", "play:gameover"}; !reflect.DeepEqual(sound.calls, want) {
		t.Errorf("Expected %v on game over, got %v", want, sound.calls)
	}
	if !strings.Contains(logs.String(), "game_over session="+eng.SessionID().String()) {
		t.Errorf("Expected a game_over log line, got %q", logs.String())
	}

	sound.calls = nil
	eng.Reset(300, 300)
	if want := []string{"resume"}; !reflect.DeepEqual(sound.calls, want) {
		t.Errorf("Expected %v on reset, got %v", want, sound.calls)
	}
}

func TestPauseAndResumeDriveMusic(t *testing.T) {
	eng, sound, _, _ := newWired(t)
	eng.Reset(300, 300)
	sound.calls = nil

	eng.Pause(0)
	eng.Resume(time.Second)

	want := []string{"pause", "play:click", "resume", "play:click"}
	if !reflect.DeepEqual(sound.calls, want) {
		t.Errorf("Expected %v, got %v", want, sound.calls)
	}
}

func TestStateEventsInvalidateDisplay(t *testing.T) {
	eng, _, hud, _ := newWired(t)
	eng.Reset(300, 300)
	if hud.n != 3 {
		t.Errorf("Expected reset, score and speed to invalidate the HUD, got %d", hud.n)
	}
	eng.Pause(0)
	if hud.n != 4 {
		t.Errorf("Expected pause to invalidate the HUD, got %d", hud.n)
	}
}
