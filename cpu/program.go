package cpu

import (
	"iter"
	"slices"
	"strings"
)

// Line is the source location of an instruction.
type Line struct {
	LineNo int
	Words  []string
}

// Program is an assembled assembunny program.
// Code is mutated in place by 'tgl'; Lines is never modified.
type Program struct {
	Code  []Instruction
	Lines []Line
}

// Debug is an instruction with its source line, if known.
type Debug struct {
	*Line
	Instruction
}

// Len returns the number of instructions.
func (prog *Program) Len() int {
	return len(prog.Code)
}

// Contains returns true if ip addresses an instruction.
func (prog *Program) Contains(ip int) bool {
	return ip >= 0 && ip < len(prog.Code)
}

// Clone returns a program with its own copy of the instructions, so
// toggles applied to the clone are not visible through prog.
func (prog *Program) Clone() *Program {
	return &Program{
		Code:  slices.Clone(prog.Code),
		Lines: prog.Lines,
	}
}

// Toggle rewrites the instruction at ip per the 'tgl' table.
// An ip outside the program is ignored.
func (prog *Program) Toggle(ip int) (ok bool) {
	if !prog.Contains(ip) {
		return
	}

	prog.Code[ip] = prog.Code[ip].Toggled()
	return true
}

// Debug returns the instruction and source line at ip.
func (prog *Program) Debug(ip int) (dbg Debug) {
	if !prog.Contains(ip) {
		return
	}

	dbg.Instruction = prog.Code[ip]
	if ip < len(prog.Lines) {
		dbg.Line = &prog.Lines[ip]
	}

	return
}

// Instructions iterates over the program by ip.
func (prog *Program) Instructions() iter.Seq2[int, Instruction] {
	return func(yield func(ip int, ins Instruction) bool) {
		for ip, ins := range prog.Code {
			if !yield(ip, ins) {
				return
			}
		}
	}
}

// String returns the current listing, one instruction per line.
func (prog *Program) String() string {
	var text strings.Builder
	for _, ins := range prog.Instructions() {
		text.WriteString(ins.String())
		text.WriteByte('\n')
	}
	return text.String()
}
