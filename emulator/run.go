package emulator

import (
	"context"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/ezrec/assembunny/cpu"
)

// Result is the final state of a run.
type Result struct {
	Registers cpu.RegisterBank // Final register values.
	Output    []int64          // Values emitted by 'out', in order.
	Ticks     int              // Steps executed.
	Fused     int              // Fused multiplies among the steps.
	Halt      Halt             // Why the run stopped.
}

// Load assembles program text.
func Load(input io.Reader) (prog *cpu.Program, err error) {
	asm := &cpu.Assembler{}
	prog, err = asm.Parse(input)
	return
}

// Run executes a copy of prog from seed, for at most limit steps
// when limit is positive. prog itself is never modified.
func Run(prog *cpu.Program, seed cpu.RegisterBank, limit int) (res *Result, err error) {
	emu := NewEmulator()
	emu.Program = prog
	emu.StepLimit = limit

	res, err = emu.Run(seed)
	return
}

// RunSeeds runs prog once per seed, on up to workers goroutines (all
// seeds at once when workers is zero or less). Each run has its own
// copy of the program. Results are in seed order. Cancelling ctx, or
// the first failing run, stops the runs still in progress.
func RunSeeds(ctx context.Context, prog *cpu.Program, seeds []cpu.RegisterBank, limit int, workers int) (results []*Result, err error) {
	results = make([]*Result, len(seeds))

	group, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		group.SetLimit(workers)
	}

	for n, seed := range seeds {
		group.Go(func() (err error) {
			emu := NewEmulator()
			emu.Program = prog
			emu.StepLimit = limit

			results[n], err = emu.RunContext(ctx, seed)
			return
		})
	}

	err = group.Wait()
	if err != nil {
		results = nil
	}

	return
}
