// Package cpu implements the interpreter and assembler for assembunny.
//
// The CPU consists of a signed instruction pointer (IP), four 64-bit
// registers (a-d) and a program of six opcodes: cpy, inc, dec, jnz, tgl and
// out. The 'tgl' opcode rewrites other instructions of the running program
// in place, so a Program must not be shared between CPUs.
//
// Execution recognizes the six instruction multiply-by-repeated-addition
// loop and replaces it with a single closed-form update (see Multiply).
//
// The assembler accepts one instruction per line, with ';' comments,
// '.equ' equates and compile-time $(...) expressions.
package cpu
