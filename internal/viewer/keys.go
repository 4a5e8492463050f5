package viewer

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/skyoptics/internal/controls"
)

// nudge steps one control when its key goes down.
type nudge struct {
	key   controls.Key
	steps int
}

var nudgeKeys = map[sdl.Scancode]nudge{
	sdl.SCANCODE_T: {controls.KeyTime, 1},
	sdl.SCANCODE_G: {controls.KeyTime, -1},
	sdl.SCANCODE_O: {controls.KeyOkta, 1},
	sdl.SCANCODE_L: {controls.KeyOkta, -1},
	sdl.SCANCODE_H: {controls.KeyHumidity, 1},
	sdl.SCANCODE_N: {controls.KeyHumidity, -1},
	sdl.SCANCODE_R: {controls.KeyRain, 1},
	sdl.SCANCODE_F: {controls.KeyRain, -1},
}

// Held keys that move the camera continuously.
const (
	keyTurnLeft  = sdl.SCANCODE_LEFT
	keyTurnRight = sdl.SCANCODE_RIGHT
	keyForward   = sdl.SCANCODE_UP
	keyBack      = sdl.SCANCODE_DOWN
	keyStrafeL   = sdl.SCANCODE_A
	keyStrafeR   = sdl.SCANCODE_D
	keyRise      = sdl.SCANCODE_PAGEUP
	keySink      = sdl.SCANCODE_PAGEDOWN
	keyQuit      = sdl.SCANCODE_ESCAPE
)
