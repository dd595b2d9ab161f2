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

package cpu

import (
	"errors"

	"github.com/jetsetilly/gopher2a03/curated"
)

// Run executes instructions from the current PC until a BRK instruction has
// been executed.
func (mc *CPU) Run() error {
	return mc.RunWithCallback(nil)
}

// RunWithCallback executes instructions from the current PC until a BRK
// instruction has been executed. The hook function is called before every
// instruction and can change the state of the CPU. A nil hook is allowed.
//
// If the hook returns StopRun then the run loop ends and RunWithCallback()
// returns nil. Any other error from the hook ends the run loop and is returned
// as a HookError.
func (mc *CPU) RunWithCallback(hook func(*CPU) error) error {
	mc.Halted = false

	for !mc.Halted {
		if hook != nil {
			if err := hook(mc); err != nil {
				if errors.Is(err, StopRun) {
					return nil
				}
				return curated.Errorf(HookError, err)
			}
		}

		if err := mc.Step(mc.mem.Read(mc.PC.Address())); err != nil {
			return err
		}
	}

	return nil
}
