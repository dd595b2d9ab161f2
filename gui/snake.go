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

package gui

import (
	"sync"
	"time"

	"github.com/jetsetilly/gopher2a03/hardware"
	"github.com/jetsetilly/gopher2a03/hardware/cpu"
	"github.com/jetsetilly/gopher2a03/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher2a03/programs"
)

// the snake program is far too fast if run without pause. the emulation is
// paused for pacePause every paceCount instructions.
const (
	paceCount = 100
	pacePause = 7 * time.Millisecond
)

// SnakeState is the state of the snake display and keyboard.
type SnakeState struct {
	crit sync.Mutex

	// the pixels are copied from emulated memory
	pixels [programs.SnakeDisplayWidth * programs.SnakeDisplayHeight]uint8
	dirty  bool

	// the most recent direction key pressed by the user. zero if no key has
	// been pressed
	key uint8

	// the front end has requested the end of the emulation
	quit bool

	// pacing counter. only accessed by the emulation goroutine
	pace int

	// no pacing of the emulation. useful for tests
	NoPacing bool
}

// NewSnakeState is the preferred method of initialisation for SnakeState.
func NewSnakeState() *SnakeState {
	return &SnakeState{
		dirty: true,
	}
}

// SetKey records the most recent key pressed. Should be one of the key codes
// recognised by the snake program.
func (st *SnakeState) SetKey(key uint8) {
	st.crit.Lock()
	defer st.crit.Unlock()
	st.key = key
}

// Quit the emulation. The Hook() will return cpu.StopRun the next time it is
// called.
func (st *SnakeState) Quit() {
	st.crit.Lock()
	defer st.crit.Unlock()
	st.quit = true
}

// Pixels copies the display into the supplied array if it has changed since
// the last call. Returns false if the display has not changed.
func (st *SnakeState) Pixels(pixels *[programs.SnakeDisplayWidth * programs.SnakeDisplayHeight]uint8) bool {
	st.crit.Lock()
	defer st.crit.Unlock()
	if !st.dirty {
		return false
	}
	*pixels = st.pixels
	st.dirty = false
	return true
}

// Hook returns a function suitable for use with hardware.Console.Run(). It
// supplies the snake program with random numbers and key presses and copies
// the display when it has been written to.
func (st *SnakeState) Hook(con *hardware.Console) func(*cpu.CPU) error {
	// the display is copied on the first call to the hook
	first := true

	return func(mc *cpu.CPU) error {
		if !st.NoPacing {
			st.pace++
			if st.pace >= paceCount {
				st.pace = 0
				time.Sleep(pacePause)
			}
		}

		st.crit.Lock()
		defer st.crit.Unlock()

		if st.quit {
			return cpu.StopRun
		}

		con.SnakeInput(st.key)

		if first || displayWrite(mc) {
			first = false
			if con.SnakeDisplay(st.pixels[:]) {
				st.dirty = true
			}
		}

		return nil
	}
}

// displayWrite returns true if the most recent instruction wrote to the
// display memory.
func displayWrite(mc *cpu.CPU) bool {
	r := mc.LastResult
	if r.Defn == nil {
		return false
	}
	if r.Defn.Effect != instructions.Write && r.Defn.Effect != instructions.RMW {
		return false
	}
	return r.EffectiveAddress >= programs.SnakeDisplay && r.EffectiveAddress <= programs.SnakeDisplayMemtop
}
