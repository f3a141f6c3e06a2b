package cpu

import (
	"errors"
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/assembunny/io"
)

// tickUntil runs cpu until halt or limit ticks, returning the error
// that stopped it (nil when the limit was reached).
func tickUntil(cpu *Cpu, limit int) (err error) {
	for cpu.Ticks < limit {
		err = cpu.Tick()
		if err != nil {
			return
		}
	}
	return
}

func FuzzMultiplyFusion(f *testing.F) {
	f.Add(uint8(5), uint8(3), int16(0))
	f.Add(uint8(0), uint8(0), int16(-7))
	f.Add(uint8(39), uint8(39), int16(1000))

	f.Fuzz(func(t *testing.T, xr uint8, zr uint8, d int16) {
		assert := assert.New(t)

		// Zero or negative counters spin the naive loop ~2^64 times.
		x := int64(xr%40) + 1
		z := int64(zr%40) + 1

		program := []Instruction{
			MakeCpy(MakeLiteral(x), MakeRegister(REG_B)),
			MakeCpy(MakeLiteral(z), MakeRegister(REG_D)),
		}
		program = append(program, assemble(t, multiplyLoop...).Code...)
		program = append(program, MakeOut(MakeRegister(REG_A)))

		fused := NewCpu(&Program{Code: program})
		fused.Register.Set(REG_A, int64(d))
		fused_out := &io.Buffer{}
		fused.Output = fused_out

		naive := NewCpu(fused.Program.Clone())
		naive.Register.Set(REG_A, int64(d))
		naive.Unoptimized = true
		naive_out := &io.Buffer{}
		naive.Output = naive_out

		assert.ErrorIs(tickUntil(fused, 100), ErrIpEmpty)
		assert.ErrorIs(tickUntil(naive, 100_000), ErrIpEmpty)

		code_str := fmt.Sprintf("x:%v z:%v d:%v\nfused:\n%vnaive:\n%v", x, z, d, fused, naive)

		assert.Equal(naive.Register, fused.Register, code_str)
		assert.Equal(int64(d)+x*z, fused.Register.Get(REG_A), code_str)
		assert.Equal(naive_out.Values(), fused_out.Values(), code_str)
		assert.Equal(1, fused.Fused, code_str)
	})
}

func FuzzCpu(f *testing.F) {
	f.Add([]byte{0x00, 0x11, 0x22, 0x33, 0x44, 0x55}, int64(0))
	f.Add([]byte{0x40, 0x03, 0x14, 0x30, 0x7f, 0x25, 0x00}, int64(7))
	f.Add([]byte{}, int64(-1))

	f.Fuzz(func(t *testing.T, data []byte, seed int64) {
		assert := assert.New(t)

		// Two bytes per instruction: opcode + two 4-bit operands.
		var code []Instruction
		for n := 0; n+1 < len(data) && len(code) < 32; n += 2 {
			op := Op(int(data[n]) % 6)
			operand := func(nibble byte) Operand {
				if nibble < REGISTER_COUNT {
					return MakeRegister(Register(nibble))
				}
				return MakeLiteral(int64(nibble) - 8)
			}
			a := operand(data[n+1] >> 4)
			b := operand(data[n+1] & 0xf)
			switch op {
			case OP_INC, OP_DEC, OP_TGL:
				a = MakeRegister(Register(data[n+1] >> 4 % REGISTER_COUNT))
				b = Operand{}
			case OP_OUT:
				b = Operand{}
			}
			code = append(code, Instruction{Op: op, Args: [2]Operand{a, b}})
		}

		prog := &Program{Code: code}
		original := slices.Clone(code)

		var runs [2]struct {
			cpu *Cpu
			out *io.Buffer
			err error
		}
		for n := range runs {
			run := &runs[n]
			run.cpu = NewCpu(prog.Clone())
			run.cpu.Register.Set(REG_A, seed)
			run.out = &io.Buffer{}
			run.cpu.Output = run.out
			run.err = tickUntil(run.cpu, 500)
			if run.err != nil && !errors.Is(run.err, ErrIpEmpty) {
				t.Fatalf("%v\n%v", run.err, run.cpu)
			}
		}

		// Deterministic, and the caller's program is untouched.
		assert.Equal(runs[0].cpu.Register, runs[1].cpu.Register)
		assert.Equal(runs[0].cpu.Ip, runs[1].cpu.Ip)
		assert.Equal(runs[0].cpu.Ticks, runs[1].cpu.Ticks)
		assert.Equal(runs[0].out.Values(), runs[1].out.Values())
		assert.Equal(runs[0].cpu.Program.Code, runs[1].cpu.Program.Code)
		assert.Equal(original, prog.Code)
		assert.LessOrEqual(runs[0].cpu.Ticks, 500)

		// Toggles only ever produce the six opcodes.
		for _, ins := range runs[0].cpu.Program.Code {
			assert.True(ins.Op >= OP_CPY && ins.Op <= OP_OUT, ins.String())
		}
	})
}
