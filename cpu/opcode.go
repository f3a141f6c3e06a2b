package cpu

import (
	"fmt"
	"strings"
)

// Op is an assembunny opcode.
type Op int

//go:generate go tool stringer -linecomment -type=Op
const (
	OP_CPY = Op(0) // cpy
	OP_INC = Op(1) // inc
	OP_DEC = Op(2) // dec
	OP_JNZ = Op(3) // jnz
	OP_TGL = Op(4) // tgl
	OP_OUT = Op(5) // out
)

// opMap maps mnemonics to opcodes.
var opMap = map[string]Op{
	"cpy": OP_CPY,
	"inc": OP_INC,
	"dec": OP_DEC,
	"jnz": OP_JNZ,
	"tgl": OP_TGL,
	"out": OP_OUT,
}

// toggleMap is the opcode rewrite applied by 'tgl'.
// OP_OUT maps to itself.
var toggleMap = map[Op]Op{
	OP_INC: OP_DEC,
	OP_DEC: OP_INC,
	OP_CPY: OP_JNZ,
	OP_JNZ: OP_CPY,
	OP_TGL: OP_INC,
	OP_OUT: OP_OUT,
}

// Arity returns the number of operands the opcode takes.
func (op Op) Arity() int {
	switch op {
	case OP_CPY, OP_JNZ:
		return 2
	case OP_INC, OP_DEC, OP_TGL, OP_OUT:
		return 1
	}
	return 0
}

// Toggled returns the opcode that 'tgl' turns this opcode into.
// An opcode with no mapping, or whose mapping would change the
// operand count, is returned unchanged.
func (op Op) Toggled() Op {
	next, ok := toggleMap[op]
	if !ok || next.Arity() != op.Arity() {
		return op
	}
	return next
}

// Instruction is a single decoded assembunny instruction.
// Only the first Op.Arity() arguments are meaningful.
type Instruction struct {
	Op   Op
	Args [2]Operand
}

// MakeCpy creates a 'cpy src dst' instruction.
func MakeCpy(src, dst Operand) Instruction {
	return Instruction{Op: OP_CPY, Args: [2]Operand{src, dst}}
}

// MakeInc creates an 'inc reg' instruction.
func MakeInc(reg Register) Instruction {
	return Instruction{Op: OP_INC, Args: [2]Operand{MakeRegister(reg)}}
}

// MakeDec creates a 'dec reg' instruction.
func MakeDec(reg Register) Instruction {
	return Instruction{Op: OP_DEC, Args: [2]Operand{MakeRegister(reg)}}
}

// MakeJnz creates a 'jnz cond offset' instruction.
func MakeJnz(cond, offset Operand) Instruction {
	return Instruction{Op: OP_JNZ, Args: [2]Operand{cond, offset}}
}

// MakeTgl creates a 'tgl reg' instruction.
func MakeTgl(reg Register) Instruction {
	return Instruction{Op: OP_TGL, Args: [2]Operand{MakeRegister(reg)}}
}

// MakeOut creates an 'out value' instruction.
func MakeOut(value Operand) Instruction {
	return Instruction{Op: OP_OUT, Args: [2]Operand{value}}
}

// Toggled returns the instruction with its opcode rewritten by 'tgl'.
// Operands are carried over untouched.
func (ins Instruction) Toggled() Instruction {
	ins.Op = ins.Op.Toggled()
	return ins
}

// String returns the assembly language representation of this instruction.
func (ins Instruction) String() string {
	words := []string{ins.Op.String()}
	for n := range ins.Op.Arity() {
		words = append(words, ins.Args[n].String())
	}
	return strings.Join(words, " ")
}

// GoString is used by %#v in test failure output.
func (ins Instruction) GoString() string {
	return fmt.Sprintf("cpu.Instruction(%q)", ins.String())
}
