package cpu

import (
	"strconv"
)

// OperandKind selects between a register reference and a literal.
type OperandKind int

const (
	OPERAND_REGISTER = OperandKind(0)
	OPERAND_LITERAL  = OperandKind(1)
)

// Operand is either a register or an integer literal.
type Operand struct {
	Kind     OperandKind
	Register Register // Valid when Kind is OPERAND_REGISTER.
	Value    int64    // Valid when Kind is OPERAND_LITERAL.
}

// MakeRegister creates a register operand.
func MakeRegister(reg Register) Operand {
	return Operand{Kind: OPERAND_REGISTER, Register: reg}
}

// MakeLiteral creates a literal operand.
func MakeLiteral(value int64) Operand {
	return Operand{Kind: OPERAND_LITERAL, Value: value}
}

// IsRegister returns true if the operand names a register.
func (op Operand) IsRegister() bool {
	return op.Kind == OPERAND_REGISTER
}

// Eval returns the operand value against a register bank.
func (op Operand) Eval(bank *RegisterBank) int64 {
	if op.Kind == OPERAND_REGISTER {
		return bank.Get(op.Register)
	}
	return op.Value
}

// String returns the operand as it would be written in source.
func (op Operand) String() string {
	if op.Kind == OPERAND_REGISTER {
		return op.Register.String()
	}
	return strconv.FormatInt(op.Value, 10)
}
