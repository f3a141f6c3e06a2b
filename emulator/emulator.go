// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/assembunny/cpu"
	"github.com/ezrec/assembunny/internal"
	"github.com/ezrec/assembunny/io"
)

const (
	STEP_LIMIT = 1_000_000 // Suggested step limit for programs that may not halt.

	CANCEL_CHECK = 4096 // Ticks between context checks in RunContext.
)

var _emulator_defines = map[string]string{
	"STEP_LIMIT": fmt.Sprintf("%v", STEP_LIMIT),
}

// Halt is the reason a run stopped.
type Halt int

//go:generate go tool stringer -linecomment -type=Halt
const (
	HALT_NONE  = Halt(0) // running
	HALT_EXIT  = Halt(1) // exit
	HALT_LIMIT = Halt(2) // limit
)

// Emulator state. CPU + program listing + output sinks.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Program listing. Each reset runs a fresh copy.

	StepLimit int  // Maximum steps per run. Zero or less is unlimited.
	Halt      Halt // Why the current run stopped.

	Buffer io.Buffer // Values emitted by 'out'.
	Tape   io.Tape   // Optional text copy of the emitted values.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu:     cpu.NewCpu(nil),
		Program: &cpu.Program{},
	}

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines),
		emu.Cpu.Defines(),
	)
}

// Reset the emulator to run a fresh copy of the program from seed.
func (emu *Emulator) Reset(seed cpu.RegisterBank) (err error) {
	emu.Cpu.Verbose = emu.Verbose

	prog := emu.Program
	if prog == nil {
		prog = &cpu.Program{}
	}
	emu.Cpu.Program = prog.Clone()

	emu.Buffer.Rewind()
	emu.Tape.Rewind()
	if emu.Tape.Output != nil {
		emu.Cpu.Output = io.Multi{&emu.Buffer, &emu.Tape}
	} else {
		emu.Cpu.Output = &emu.Buffer
	}

	emu.Halt = HALT_NONE

	err = emu.Cpu.Reset(seed)
	return
}

// LineNo returns the source line number of the instruction at the IP,
// or zero if there is none.
func (emu *Emulator) LineNo() int {
	if emu.Cpu.Program == nil {
		return 0
	}

	dbg := emu.Cpu.Program.Debug(emu.Cpu.Ip)
	if dbg.Line == nil {
		return 0
	}

	return dbg.LineNo
}

// Tick performs a single step of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	if emu.Halt != HALT_NONE {
		done = true
		return
	}

	if emu.StepLimit > 0 && emu.Cpu.Ticks >= emu.StepLimit && !emu.Cpu.Halted() {
		if emu.Verbose {
			log.Printf("emulator: step limit %v reached at ip %v", emu.StepLimit, emu.Cpu.Ip)
		}
		emu.Halt = HALT_LIMIT
		done = true
		return
	}

	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Err: err}
		}
	}()

	err = emu.Cpu.Tick()
	if errors.Is(err, cpu.ErrIpEmpty) {
		if emu.Verbose {
			log.Printf("emulator: exit at ip %v after %v ticks", emu.Cpu.Ip, emu.Cpu.Ticks)
		}
		err = nil
		emu.Halt = HALT_EXIT
		done = true
		return
	}

	return
}

// Result returns the state of the current run.
func (emu *Emulator) Result() (res *Result) {
	res = &Result{
		Registers: emu.Cpu.Register,
		Output:    emu.Buffer.Values(),
		Ticks:     emu.Cpu.Ticks,
		Fused:     emu.Cpu.Fused,
		Halt:      emu.Halt,
	}

	return
}

// Run resets the emulator from seed and ticks until it halts.
func (emu *Emulator) Run(seed cpu.RegisterBank) (res *Result, err error) {
	return emu.RunContext(context.Background(), seed)
}

// RunContext is Run, abandoning the run with the context error once ctx
// is done. The context is checked every CANCEL_CHECK ticks.
func (emu *Emulator) RunContext(ctx context.Context, seed cpu.RegisterBank) (res *Result, err error) {
	err = emu.Reset(seed)
	if err != nil {
		return
	}

	for n, done := 0, false; !done; n++ {
		if n%CANCEL_CHECK == 0 {
			err = ctx.Err()
			if err != nil {
				if emu.Verbose {
					log.Printf("emulator: %v at ip %v after %v ticks", err, emu.Cpu.Ip, emu.Cpu.Ticks)
				}
				return
			}
		}

		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	res = emu.Result()
	return
}
