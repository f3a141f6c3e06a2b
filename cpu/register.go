package cpu

import (
	"fmt"
)

// Register identifies one of the four general-purpose registers.
type Register int

//go:generate go tool stringer -linecomment -type=Register
const (
	REG_A = Register(0) // a
	REG_B = Register(1) // b
	REG_C = Register(2) // c
	REG_D = Register(3) // d

	REGISTER_COUNT = 4
)

// regMap is a map of register names to registers.
var regMap = map[string]Register{
	"a": REG_A,
	"b": REG_B,
	"c": REG_C,
	"d": REG_D,
}

// ParseRegister returns the register named by word.
func ParseRegister(word string) (reg Register, err error) {
	reg, ok := regMap[word]
	if !ok {
		err = ErrRegisterInvalid
	}
	return
}

// RegisterBank holds the register values, indexed by Register.
type RegisterBank [REGISTER_COUNT]int64

// Get returns the value of a register.
func (bank *RegisterBank) Get(reg Register) int64 {
	return bank[reg]
}

// Set overwrites the value of a register.
func (bank *RegisterBank) Set(reg Register, value int64) {
	bank[reg] = value
}

// Reset zeros all registers.
func (bank *RegisterBank) Reset() {
	clear(bank[:])
}

// String renders the bank as 'a=0 b=0 c=0 d=0'.
func (bank RegisterBank) String() (text string) {
	for n, value := range bank {
		if n > 0 {
			text += " "
		}
		text += fmt.Sprintf("%v=%d", Register(n), value)
	}
	return
}
