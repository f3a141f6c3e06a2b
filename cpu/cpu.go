package cpu

import (
	"errors"
	"fmt"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/assembunny/io"
)

// Sink receives the values emitted by 'out'.
type Sink io.Sink

var _cpu_defines = map[string]string{
	"REGISTERS":  fmt.Sprintf("%v", REGISTER_COUNT),
	"FUSE_WIDTH": fmt.Sprintf("%v", FUSE_WIDTH),
}

// Cpu is the execution context for an assembunny program.
type Cpu struct {
	Verbose     bool // Set to enable verbose logging.
	Unoptimized bool // Set to disable multiply fusion.

	Program  *Program     // Program being executed. Modified by 'tgl'.
	Ip       int          // Current instruction pointer.
	Register RegisterBank // Register bank.
	Output   Sink         // Destination of 'out' values. nil discards them.

	Ticks int // Steps executed. A fused multiply is a single step.
	Fused int // Fused multiplies executed.
}

// NewCpu creates a CPU executing prog in place.
func NewCpu(prog *Program) (cpu *Cpu) {
	cpu = &Cpu{
		Program: prog,
	}

	return
}

// Defines for the cpu
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	text += fmt.Sprintf("% 5s: %04d\n", "ip", cpu.Ip)
	for n, value := range cpu.Register {
		text += fmt.Sprintf("% 5s: %d\n", Register(n), value)
	}
	text += fmt.Sprintf("% 5s: %d\n", "ticks", cpu.Ticks)

	return
}

// Reset the CPU state.
// - Rewinds the IP to the first instruction.
// - Loads the registers from seed.
// - Zeros statistics counters.
func (cpu *Cpu) Reset(seed RegisterBank) (err error) {
	if cpu.Verbose {
		log.Printf("cpu: reset %v", seed)
	}

	cpu.Ip = 0
	cpu.Register = seed
	cpu.Ticks = 0
	cpu.Fused = 0

	return
}

// Halted returns true once the IP has left the program.
func (cpu *Cpu) Halted() bool {
	return cpu.Program == nil || !cpu.Program.Contains(cpu.Ip)
}

// FetchCode fetches the instruction at the IP.
func (cpu *Cpu) FetchCode() (ins Instruction, err error) {
	if cpu.Halted() {
		err = ErrIpEmpty
		return
	}

	ins = cpu.Program.Code[cpu.Ip]
	return
}

// Tick executes a single step: either a fused multiply, or the
// instruction at the IP. Returns ErrIpEmpty once halted.
func (cpu *Cpu) Tick() (err error) {
	ins, err := cpu.FetchCode()
	if err != nil {
		return
	}

	if !cpu.Unoptimized {
		mul, ok := MatchMultiply(cpu.Program.Code, cpu.Ip)
		if ok {
			if cpu.Verbose {
				log.Printf("%03d: fused %v += %v * %v", cpu.Ip, mul.D, mul.X, mul.Z)
			}
			mul.Apply(&cpu.Register)
			cpu.Ip += FUSE_WIDTH
			cpu.Ticks += 1
			cpu.Fused += 1
			return
		}
	}

	err = cpu.Execute(ins)
	return
}

// Execute executes a single decoded instruction at the IP.
func (cpu *Cpu) Execute(ins Instruction) (err error) {
	defer func() {
		if err != nil {
			err = errors.Join(ErrOpcode(ins), err)
		}
	}()
	if cpu.Verbose {
		log.Printf("%03d: %v", cpu.Ip, ins)
	}

	regs := &cpu.Register
	next_ip := cpu.Ip + 1

	a, b := ins.Args[0], ins.Args[1]

	switch ins.Op {
	case OP_CPY:
		// A toggled 'jnz' may leave a literal destination.
		if b.IsRegister() {
			regs.Set(b.Register, a.Eval(regs))
		}
	case OP_INC:
		if a.IsRegister() {
			regs.Set(a.Register, regs.Get(a.Register)+1)
		}
	case OP_DEC:
		if a.IsRegister() {
			regs.Set(a.Register, regs.Get(a.Register)-1)
		}
	case OP_JNZ:
		if a.Eval(regs) != 0 {
			next_ip = cpu.Ip + int(b.Eval(regs))
		}
	case OP_TGL:
		target := cpu.Ip + int(a.Eval(regs))
		ok := cpu.Program.Toggle(target)
		if cpu.Verbose {
			if ok {
				log.Printf("cpu: toggled %03d to '%v'", target, cpu.Program.Code[target])
			} else {
				log.Printf("cpu: toggle %03d outside program", target)
			}
		}
	case OP_OUT:
		if cpu.Output != nil {
			err = cpu.Output.Send(a.Eval(regs))
			if err != nil {
				return
			}
		}
	default:
		err = ErrOpcodeInvalid
		return
	}

	cpu.Ip = next_ip
	cpu.Ticks += 1

	return
}
