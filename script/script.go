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

package script

import (
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/jetsetilly/gopher2a03/curated"
	"github.com/jetsetilly/gopher2a03/hardware"
	"github.com/jetsetilly/gopher2a03/hardware/cpu"
	"github.com/jetsetilly/gopher2a03/logger"
)

// Error patterns for the script package.
const (
	LoadError       = "script: load: %v"
	StepError       = "script: step: %v"
	UnknownRegister = "script: unknown register (%s)"
)

// the name of the global lua function called before every instruction.
const stepFunction = "step"

// Hook is a script loaded into a Lua state.
type Hook struct {
	con *hardware.Console
	L   *lua.LState

	// the step function. nil if the script does not define one
	step *lua.LFunction

	// halt() has been called by the script
	halt bool
}

// NewHook loads the named Lua file. The script's main chunk is run
// immediately.
func NewHook(con *hardware.Console, filename string) (*Hook, error) {
	hk := &Hook{
		con: con,
		L:   lua.NewState(),
	}

	hk.L.SetGlobal("peek", hk.L.NewFunction(hk.peek))
	hk.L.SetGlobal("poke", hk.L.NewFunction(hk.poke))
	hk.L.SetGlobal("reg", hk.L.NewFunction(hk.reg))
	hk.L.SetGlobal("cycles", hk.L.NewFunction(hk.cycles))
	hk.L.SetGlobal("halt", hk.L.NewFunction(hk.haltFn))
	hk.L.SetGlobal("log", hk.L.NewFunction(hk.log))

	if err := hk.L.DoFile(filename); err != nil {
		hk.L.Close()
		return nil, curated.Errorf(LoadError, err)
	}

	if fn, ok := hk.L.GetGlobal(stepFunction).(*lua.LFunction); ok {
		hk.step = fn
	} else {
		logger.Logf(logger.Allow, "script", "%s does not define a %s() function", filename, stepFunction)
	}

	logger.Logf(logger.Allow, "script", "loaded %s", filename)

	return hk, nil
}

// Close the Lua state. The Hook should not be used after Close().
func (hk *Hook) Close() {
	hk.L.Close()
}

// Hook is suitable for passing to hardware.Console.Run(). Returns
// cpu.StopRun if the script has called halt().
func (hk *Hook) Hook(mc *cpu.CPU) error {
	if hk.step != nil {
		err := hk.L.CallByParam(lua.P{
			Fn:      hk.step,
			NRet:    0,
			Protect: true,
		})
		if err != nil {
			return curated.Errorf(StepError, err)
		}
	}

	if hk.halt {
		hk.halt = false
		return cpu.StopRun
	}

	return nil
}

func (hk *Hook) peek(L *lua.LState) int {
	address := uint16(L.CheckInt(1))
	L.Push(lua.LNumber(hk.con.Mem.Read(address)))
	return 1
}

func (hk *Hook) poke(L *lua.LState) int {
	address := uint16(L.CheckInt(1))
	value := uint8(L.CheckInt(2))
	hk.con.Mem.Write(address, value)
	return 0
}

func (hk *Hook) reg(L *lua.LState) int {
	mc := hk.con.CPU

	var v int
	name := L.CheckString(1)
	switch strings.ToUpper(name) {
	case "A":
		v = int(mc.A.Value())
	case "X":
		v = int(mc.X.Value())
	case "Y":
		v = int(mc.Y.Value())
	case "SP":
		v = int(mc.SP.Value())
	case "PC":
		v = int(mc.PC.Address())
	case "P":
		v = int(mc.Status.Value())
	default:
		L.RaiseError(curated.Errorf(UnknownRegister, name).Error())
		return 0
	}

	L.Push(lua.LNumber(v))
	return 1
}

func (hk *Hook) cycles(L *lua.LState) int {
	L.Push(lua.LNumber(hk.con.CPU.Cycles))
	return 1
}

func (hk *Hook) haltFn(L *lua.LState) int {
	hk.halt = true
	return 0
}

func (hk *Hook) log(L *lua.LState) int {
	logger.Log(logger.Allow, "script", L.CheckString(1))
	return 0
}
