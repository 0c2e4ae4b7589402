package synth

import "fmt"

// Sound identifies a one-shot effect.
type Sound int

const (
	SoundEat Sound = iota
	SoundPowerup
	SoundGameOver
	SoundClick
)

// Sounds lists every effect, in declaration order.
var Sounds = []Sound{SoundEat, SoundPowerup, SoundGameOver, SoundClick}

func (s Sound) String() string {
	switch s {
	case SoundEat:
		return "eat"
	case SoundPowerup:
		return "powerup"
	case SoundGameOver:
		return "gameover"
	case SoundClick:
		return "click"
	}
	return fmt.Sprintf("Sound(%d)", int(s))
}

// Generate renders the PCM buffer for s, or nil for an unknown sound.
func Generate(s Sound) []byte {
	switch s {
	case SoundEat:
		return Eat()
	case SoundPowerup:
		return Powerup()
	case SoundGameOver:
		return GameOver()
	case SoundClick:
		return Click()
	}
	return nil
}
