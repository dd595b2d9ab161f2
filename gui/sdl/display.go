// This file is part of Gopher2A03.
//
// Gopher2A03 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2A03 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2A03.  If not, see <https://www.gnu.org/licenses/>.

// Package sdl implements a window for the snake program's memory mapped
// display using SDL. The window must be created and serviced on the main
// thread.
package sdl

import (
	"fmt"
	"io"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/gopher2a03/curated"
	"github.com/jetsetilly/gopher2a03/gui"
	"github.com/jetsetilly/gopher2a03/logger"
	"github.com/jetsetilly/gopher2a03/programs"
)

// SDLError is the error pattern for errors from the SDL library.
const SDLError = "sdl: %v"

const windowTitle = "Gopher2A03 Snake"

// Display is the SDL window for the snake program.
type Display struct {
	window   *sdl.Window
	renderer *sdl.Renderer

	// the size of each pixel in the window
	scale int32

	state  *gui.SnakeState
	pixels [programs.SnakeDisplayWidth * programs.SnakeDisplayHeight]uint8
}

// NewDisplay creates the window. The state is shared with the emulation
// goroutine.
func NewDisplay(state *gui.SnakeState, scale int) (*Display, error) {
	if scale < 1 {
		scale = 1
	}

	dsp := &Display{
		state: state,
		scale: int32(scale),
	}

	err := sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, curated.Errorf(SDLError, err)
	}

	dsp.window, err = sdl.CreateWindow(windowTitle,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		programs.SnakeDisplayWidth*dsp.scale, programs.SnakeDisplayHeight*dsp.scale,
		sdl.WINDOW_SHOWN)
	if err != nil {
		return nil, curated.Errorf(SDLError, err)
	}

	dsp.renderer, err = sdl.CreateRenderer(dsp.window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		return nil, curated.Errorf(SDLError, err)
	}

	logger.Logf(logger.Allow, "sdl", "window created (%dx%d)", programs.SnakeDisplayWidth*dsp.scale, programs.SnakeDisplayHeight*dsp.scale)

	return dsp, nil
}

// Destroy implements the GuiCreator interface.
func (dsp *Display) Destroy(output io.Writer) {
	if dsp.renderer != nil {
		if err := dsp.renderer.Destroy(); err != nil {
			fmt.Fprintf(output, "* %v\n", curated.Errorf(SDLError, err))
		}
	}
	if dsp.window != nil {
		if err := dsp.window.Destroy(); err != nil {
			fmt.Fprintf(output, "* %v\n", curated.Errorf(SDLError, err))
		}
	}
	sdl.Quit()
}

// Service implements the GuiCreator interface. It must only be called from
// the main thread.
func (dsp *Display) Service() {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			dsp.state.Quit()

		case *sdl.KeyboardEvent:
			if ev.Type != sdl.KEYDOWN || ev.Repeat != 0 {
				break // switch
			}

			switch ev.Keysym.Sym {
			case sdl.K_w, sdl.K_UP:
				dsp.state.SetKey(programs.SnakeUp)
			case sdl.K_s, sdl.K_DOWN:
				dsp.state.SetKey(programs.SnakeDown)
			case sdl.K_a, sdl.K_LEFT:
				dsp.state.SetKey(programs.SnakeLeft)
			case sdl.K_d, sdl.K_RIGHT:
				dsp.state.SetKey(programs.SnakeRight)
			case sdl.K_ESCAPE:
				dsp.state.Quit()
			}
		}
	}

	if dsp.state.Pixels(&dsp.pixels) {
		if err := dsp.render(); err != nil {
			logger.Log(logger.Allow, "sdl", err)
		}
	}
}

func (dsp *Display) render() error {
	if err := dsp.renderer.SetDrawColor(0, 0, 0, 255); err != nil {
		return curated.Errorf(SDLError, err)
	}
	if err := dsp.renderer.Clear(); err != nil {
		return curated.Errorf(SDLError, err)
	}

	rect := sdl.Rect{W: dsp.scale, H: dsp.scale}
	for i, p := range dsp.pixels {
		// black is the background color
		if p == 0 {
			continue // for loop
		}

		c := programs.SnakeColor(p)
		if err := dsp.renderer.SetDrawColor(c.R, c.G, c.B, c.A); err != nil {
			return curated.Errorf(SDLError, err)
		}

		rect.X = int32(i%programs.SnakeDisplayWidth) * dsp.scale
		rect.Y = int32(i/programs.SnakeDisplayWidth) * dsp.scale
		if err := dsp.renderer.FillRect(&rect); err != nil {
			return curated.Errorf(SDLError, err)
		}
	}

	dsp.renderer.Present()

	return nil
}
