package cpu

// FUSE_WIDTH is the number of instructions covered by a fused multiply.
const FUSE_WIDTH = 6

// Multiply is a matched multiply-by-repeated-addition loop:
//
//	cpy X Y
//	inc D
//	dec Y
//	jnz Y _
//	dec Z
//	jnz Z _
//
// which leaves D += X*Z, Y = 0 and Z = 0.
type Multiply struct {
	X Register // Multiplicand, copied into the inner counter.
	Y Register // Inner loop counter.
	Z Register // Outer loop counter.
	D Register // Accumulator.
}

// asRegister returns the register of operand n, if it is one.
func (ins Instruction) asRegister(n int) (reg Register, ok bool) {
	arg := ins.Args[n]
	if arg.Kind != OPERAND_REGISTER {
		return
	}
	return arg.Register, true
}

// MatchMultiply checks the window of code starting at ip for the
// multiply loop. The jump offsets are not inspected.
// D is not required to differ from X: 'cpy a b; inc a; ...' still fuses
// to a += a*z, although stepping it would double a on every outer pass.
func MatchMultiply(code []Instruction, ip int) (mul Multiply, ok bool) {
	if ip < 0 || ip+FUSE_WIDTH > len(code) {
		return
	}
	window := code[ip : ip+FUSE_WIDTH]

	if window[0].Op != OP_CPY || window[1].Op != OP_INC ||
		window[2].Op != OP_DEC || window[3].Op != OP_JNZ ||
		window[4].Op != OP_DEC || window[5].Op != OP_JNZ {
		return
	}

	// Every operand inspected must be a register.
	regs := make([]Register, 0, 7)
	for n, ins := range window {
		args := 1
		if n == 0 {
			args = 2
		}
		for arg := range args {
			reg, is_reg := ins.asRegister(arg)
			if !is_reg {
				return
			}
			regs = append(regs, reg)
		}
	}

	// regs: cpy X, cpy Y, inc D, dec Y, jnz Y, dec Z, jnz Z
	mul = Multiply{X: regs[0], Y: regs[1], D: regs[2], Z: regs[5]}
	if regs[3] != mul.Y || regs[4] != mul.Y || regs[6] != mul.Z {
		return Multiply{}, false
	}

	return mul, true
}

// Apply performs the fused update on the bank.
func (mul Multiply) Apply(bank *RegisterBank) {
	product := bank.Get(mul.X) * bank.Get(mul.Z)
	bank.Set(mul.D, bank.Get(mul.D)+product)
	bank.Set(mul.Z, 0)
	bank.Set(mul.Y, 0)
}
