// Package audio plays the background loop and sound effects through oto.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/hajimehoshi/oto/v2"

	"github.com/nickelinvasion/snake-game/internal/audio/synth"
)

// Sound identifies a one-shot effect.
type Sound = synth.Sound

const (
	SoundEat      = synth.SoundEat
	SoundPowerup  = synth.SoundPowerup
	SoundGameOver = synth.SoundGameOver
	SoundClick    = synth.SoundClick
)

type Options struct {
	MusicVolume float64
	SFXVolume   float64
	Muted       bool
	Seed        uint64
}

// System owns the oto context, the looping music player and the effect
// buffers. It is safe for concurrent use. A nil *System is silent.
type System struct {
	ctx   *oto.Context
	ready chan struct{}

	mu          sync.Mutex
	music       oto.Player
	musicVolume float64
	sfxVolume   float64
	muted       bool
	paused      bool
	closed      bool
	buffers     map[Sound][]byte
}

// New opens the audio device and starts the music once the device is ready.
func New(opts Options) (*System, error) {
	ctx, ready, err := oto.NewContext(synth.SampleRate, synth.ChannelCount, oto.FormatFloat32LE)
	if err != nil {
		return nil, fmt.Errorf("open audio device: %w", err)
	}
	s := &System{
		ctx:         ctx,
		ready:       ready,
		musicVolume: opts.MusicVolume,
		sfxVolume:   opts.SFXVolume,
		muted:       opts.Muted,
		buffers:     make(map[Sound][]byte),
	}
	for _, snd := range synth.Sounds {
		s.buffers[snd] = synth.Generate(snd)
	}
	go func() {
		<-ready
		s.startMusic(opts.Seed)
	}()
	return s, nil
}

func (s *System) startMusic(seed uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	player := s.ctx.NewPlayer(synth.NewMusic(seed))
	player.SetVolume(s.effectiveMusicVolume())
	s.music = player
	if !s.paused {
		player.Play()
	}
}

func (s *System) effectiveMusicVolume() float64 {
	if s.muted {
		return 0
	}
	return s.musicVolume
}

func (s *System) isReady() bool {
	select {
	case <-s.ready:
		return true
	default:
		return false
	}
}

// Pause stops the music; effects already playing finish.
func (s *System) Pause() {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paused = true
	if s.music != nil {
		s.music.Pause()
	}
}

func (s *System) Resume() {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paused = false
	if s.music != nil {
		s.music.Play()
	}
}

func (s *System) SetMuted(muted bool) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.muted = muted
	if s.music != nil {
		s.music.SetVolume(s.effectiveMusicVolume())
	}
}

func (s *System) Muted() bool {
	if s == nil {
		return true
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.muted
}

// Play starts a one-shot effect on its own player. It is a no-op while
// muted or before the device is ready.
func (s *System) Play(snd Sound) {
	if s == nil {
		return
	}
	s.mu.Lock()
	data, vol, muted := s.buffers[snd], s.sfxVolume, s.muted
	s.mu.Unlock()
	if muted || vol <= 0 || len(data) == 0 || !s.isReady() {
		return
	}
	go func() {
		player := s.ctx.NewPlayer(synth.NewReader(data))
		player.SetVolume(vol)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

// Close stops the music player.
func (s *System) Close() error {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	if s.music == nil {
		return nil
	}
	err := s.music.Close()
	s.music = nil
	return err
}
