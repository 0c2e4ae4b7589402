package scene

import "github.com/nickelinvasion/snake-game/internal/engine"

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

func (c RGB) Mul(k uint8) RGB {
	return RGB{
		R: uint8((uint16(c.R) * uint16(k)) / 255),
		G: uint8((uint16(c.G) * uint16(k)) / 255),
		B: uint8((uint16(c.B) * uint16(k)) / 255),
	}
}

// Floats returns the colour as normalized GL components.
func (c RGB) Floats() (r, g, b float32) {
	return float32(c.R) / 255.0, float32(c.G) / 255.0, float32(c.B) / 255.0
}

// Palette is the "friends" colour set.
var Palette = struct {
	Background   RGB
	GridLine     RGB
	Snake        RGB
	Head         RGB
	Food         RGB
	Obstacle     RGB
	PowerSpeed   RGB
	PowerGrow    RGB
	PowerSlow    RGB
	GameOverTint RGB
}{
	Background:   RGB{R: 0x0b, G: 0x0b, B: 0x0f},
	GridLine:     RGB{R: 255, G: 255, B: 255},
	Snake:        RGB{R: 0xff, G: 0xff, B: 0xff},
	Head:         RGB{R: 0xf6, G: 0xc9, B: 0x0e},
	Food:         RGB{R: 0xf0, G: 0x4f, B: 0x6d},
	Obstacle:     RGB{R: 0x33, G: 0x36, B: 0x3b},
	PowerSpeed:   RGB{R: 0x1d, G: 0xb8, B: 0xf6},
	PowerGrow:    RGB{R: 0xf6, G: 0xc9, B: 0x0e},
	PowerSlow:    RGB{R: 0xf0, G: 0x4f, B: 0x6d},
	GameOverTint: RGB{R: 0xf0, G: 0x4f, B: 0x6d},
}

// PowerupColor returns the pickup colour for a powerup kind.
func PowerupColor(k engine.PowerupKind) RGB {
	switch k {
	case engine.PowerupSpeed:
		return Palette.PowerSpeed
	case engine.PowerupGrow:
		return Palette.PowerGrow
	case engine.PowerupSlow:
		return Palette.PowerSlow
	}
	return Palette.Snake
}
