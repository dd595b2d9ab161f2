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

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"

	"golang.org/x/term"

	"github.com/jetsetilly/gopher2a03/debugger"
	"github.com/jetsetilly/gopher2a03/debugger/terminal"
	"github.com/jetsetilly/gopher2a03/debugger/terminal/colorterm"
	"github.com/jetsetilly/gopher2a03/debugger/terminal/plainterm"
	"github.com/jetsetilly/gopher2a03/disassembly"
	"github.com/jetsetilly/gopher2a03/gui"
	"github.com/jetsetilly/gopher2a03/gui/sdl"
	"github.com/jetsetilly/gopher2a03/hardware"
	"github.com/jetsetilly/gopher2a03/hardware/cpu"
	"github.com/jetsetilly/gopher2a03/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher2a03/logger"
	"github.com/jetsetilly/gopher2a03/modalflag"
	"github.com/jetsetilly/gopher2a03/performance"
	"github.com/jetsetilly/gopher2a03/programs"
	"github.com/jetsetilly/gopher2a03/script"
	"github.com/jetsetilly/gopher2a03/statsview"
	"github.com/jetsetilly/gopher2a03/version"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// reset interrupt signal handling. the debugger provides its own handler
	// so that ctrl-c can interrupt a RUN command.
	//
	// takes no arguments.
	reqNoIntSig stateReq = "NOINTSIG"
)

type stateRequest struct {
	req  stateReq
	args any
}

// GuiCreator facilitates the creation, servicing and destruction of GUIs
// that need to be run in the main thread.
//
// Note that there is no Create() function. The creator is a channel which
// accepts a function that returns an instance of GuiCreator.
type GuiCreator interface {
	// cleanup resources used by the gui
	Destroy(io.Writer)

	// Service() should not pause or loop longer than necessary. It MUST ONLY
	// be called as part of a larger loop from the main thread.
	Service()
}

// communication between the main() function and the launch() function. SDL
// requires window creation and event handling to occur on the main thread.
type mainSync struct {
	state   chan stateRequest
	creator chan func() (GuiCreator, error)

	// the result of creator will be returned on either of these two channels.
	creation      chan GuiCreator
	creationError chan error
}

func init() {
	// SDL functions must be called from the main thread
	runtime.LockOSThread()
}

// #mainthread
func main() {
	sync := &mainSync{
		state:         make(chan stateRequest),
		creator:       make(chan func() (GuiCreator, error)),
		creation:      make(chan GuiCreator),
		creationError: make(chan error),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	exitVal := 0

	// #ctrlc default handler. can be turned off with reqNoIntSig request
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	go launch(sync, os.Args[1:])

	done := false
	var scr GuiCreator
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true

		case creator := <-sync.creator:
			var err error

			if scr != nil {
				scr.Destroy(os.Stderr)
			}

			scr, err = creator()
			if err != nil {
				sync.creationError <- err

				// the interface may be non-nil even if the creator returned a
				// nil pointer
				scr = nil
			} else {
				sync.creation <- scr
			}

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if scr != nil {
					scr.Destroy(os.Stderr)
				}

				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}

			case reqNoIntSig:
				signal.Reset(os.Interrupt)
				if state.args != nil {
					panic(fmt.Sprintf("%s does not accept any arguments", reqNoIntSig))
				}
			}

		default:
			if scr != nil {
				scr.Service()
			}
		}
	}

	fmt.Print("\r")
	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate gui creation and to quit.
func launch(sync *mainSync, args []string) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "DEBUG", "DISASM", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, sync)

	case "DEBUG":
		err = debug(md, sync)

	case "DISASM":
		err = disasm(md)

	case "VERSION":
		fmt.Fprintln(md.Output, version.String())
	}

	if err != nil {
		logger.Log(logger.Allow, "main", err)
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// loadProgram reads the program file named by the single remaining argument.
// if snake is true then there must be no remaining arguments and the snake
// program is returned.
func loadProgram(md *modalflag.Modes, snake bool) ([]uint8, error) {
	if snake {
		if len(md.RemainingArgs()) > 0 {
			return nil, fmt.Errorf("program file cannot be used with -snake in %s mode", md)
		}
		return programs.Snake, nil
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return nil, fmt.Errorf("program file required for %s mode", md)
	case 1:
		return os.ReadFile(md.GetArg(0))
	}

	return nil, fmt.Errorf("too many arguments for %s mode", md)
}

// boot the console with the program. the snake program always boots at its
// own origin.
func boot(con *hardware.Console, program []uint8, origin uint16, snake bool) {
	if snake {
		con.BootSnake()
		return
	}
	con.Boot(program, origin)
}

// chainHooks combines hook functions into one. the hooks are called in order
// until one of them returns an error. nil hooks are ignored and if there are
// no hooks at all then nil is returned.
func chainHooks(hooks ...func(*cpu.CPU) error) func(*cpu.CPU) error {
	var chain []func(*cpu.CPU) error
	for _, h := range hooks {
		if h != nil {
			chain = append(chain, h)
		}
	}

	switch len(chain) {
	case 0:
		return nil
	case 1:
		return chain[0]
	}

	return func(mc *cpu.CPU) error {
		for _, h := range chain {
			if err := h(mc); err != nil {
				return err
			}
		}
		return nil
	}
}

func run(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	snake := md.AddBool("snake", false, "run the built-in snake program in a window")
	origin := md.AddAddress("origin", memorymap.OriginProgramROM, "load address of the program")
	scriptFile := md.AddString("script", "", "lua script to run before every instruction")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	stats := md.AddBool("statsview", false, "run stats server")
	scale := md.AddInt("scale", 16, "size of each snake pixel in the window")
	profile := md.AddBool("profile", false, "run emulation through cpu and memory profiler")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(md.Output)
	} else {
		logger.SetEcho(nil)
	}

	if *stats {
		statsview.Launch(md.Output, statsview.DefaultAddress)
	}

	program, err := loadProgram(md, *snake)
	if err != nil {
		return err
	}

	con := hardware.NewConsole()
	boot(con, program, *origin, *snake)

	var scriptHook func(*cpu.CPU) error
	if *scriptFile != "" {
		hk, err := script.NewHook(con, *scriptFile)
		if err != nil {
			return err
		}
		defer hk.Close()
		scriptHook = hk.Hook
	}

	var snakeHook func(*cpu.CPU) error
	if *snake {
		st := gui.NewSnakeState()

		sync.creator <- func() (GuiCreator, error) {
			return sdl.NewDisplay(st, *scale)
		}

		select {
		case <-sync.creation:
		case err := <-sync.creationError:
			return err
		}

		snakeHook = st.Hook(con)
	}

	emulation := func() error {
		return con.Run(chainHooks(scriptHook, snakeHook))
	}

	if *profile {
		err = performance.ProfileCPU("run.cpu.profile", emulation)
		if err != nil {
			return err
		}
		err = performance.ProfileMem("run.mem.profile")
	} else {
		err = emulation()
	}
	if err != nil {
		return err
	}

	if !*snake {
		fmt.Fprintln(md.Output, con.CPU.String())
	}

	return nil
}

func debug(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	snake := md.AddBool("snake", false, "debug the built-in snake program")
	origin := md.AddAddress("origin", memorymap.OriginProgramROM, "load address of the program")
	termType := md.AddChoice("term", "terminal type to use in debug mode", "AUTO", "COLOR", "PLAIN")
	profile := md.AddBool("profile", false, "run debugger through cpu profiler")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	program, err := loadProgram(md, *snake)
	if err != nil {
		return err
	}

	con := hardware.NewConsole()
	boot(con, program, *origin, *snake)

	var t terminal.Terminal
	switch *termType {
	case "COLOR":
		t = &colorterm.ColorTerminal{}
	case "PLAIN":
		t = &plainterm.PlainTerminal{}
	default:
		if term.IsTerminal(int(os.Stdin.Fd())) {
			t = &colorterm.ColorTerminal{}
		} else {
			t = &plainterm.PlainTerminal{}
		}
	}

	// turn off fallback ctrl-c handling. ctrl-c in the debugger interrupts
	// the emulation without quitting the debugger itself
	sync.state <- stateRequest{req: reqNoIntSig}

	dbg := debugger.NewDebugger(con, t)

	if *profile {
		err = performance.ProfileCPU("debug.cpu.profile", dbg.Start)
		if err != nil {
			return err
		}
		return performance.ProfileMem("debug.mem.profile")
	}

	return dbg.Start()
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	snake := md.AddBool("snake", false, "disassemble the built-in snake program")
	origin := md.AddAddress("origin", memorymap.OriginProgramROM, "address of the first byte of the program")
	bytecode := md.AddBool("bytes", false, "include the bytes of each instruction in disassembly")
	cycles := md.AddBool("cycles", false, "include cycle counts in disassembly")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	program, err := loadProgram(md, *snake)
	if err != nil {
		return err
	}

	if *snake {
		*origin = programs.SnakeOrigin
	}

	dsm, err := disassembly.Decode(program, *origin)
	if err != nil {
		return err
	}

	attr := disassembly.WriteAttr{
		ByteCode: *bytecode,
		Cycles:   *cycles,
	}
	if f, ok := md.Output.(*os.File); ok {
		attr.Color = term.IsTerminal(int(f.Fd()))
	}

	dsm.Write(md.Output, attr)

	return nil
}
