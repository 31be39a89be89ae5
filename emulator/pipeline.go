package emulator

import (
	"context"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/ezrec/intcode/cpu"
)

// stage is the connection point of one amplifier in a pipeline.
type stage struct {
	in     chan int64    // Values written to this amplifier.
	halted chan struct{} // Closed when the amplifier halts.
}

// Pipeline runs each amplifier in its own goroutine, connected by
// channels. Without feedback the amplifiers form a chain, and the first
// amplifier is fed only its phase and the signal. With feedback, the
// last amplifier's output is also sent to the first.
//
// The last value written by the last amplifier is returned once every
// amplifier has halted. The first amplifier failure cancels the rest.
// A ring in which every amplifier is starved of input blocks until ctx
// is done.
func (nw *Network) Pipeline(ctx context.Context, phases []int64, signal int64, feedback bool) (output int64, err error) {
	amps, err := nw.amplifiers(phases)
	if err != nil {
		return
	}
	amps[0].Input(signal)

	stages := make([]stage, len(amps))
	for n := range stages {
		stages[n] = stage{
			in:     make(chan int64),
			halted: make(chan struct{}),
		}
	}

	// Without feedback, nothing will ever write to the first amplifier.
	source := stages[len(stages)-1]
	if !feedback {
		source = stage{halted: make(chan struct{})}
		close(source.halted)
	}

	last := len(amps) - 1
	written := false

	g, ctx := errgroup.WithContext(ctx)
	for n, amp := range amps {
		prev := source
		if n > 0 {
			prev = stages[n-1]
		}
		next := stages[(n+1)%len(stages)]
		self := stages[n]

		g.Go(func() (err error) {
			defer func() {
				if err != nil && ctx.Err() == nil {
					err = &ErrAmplifier{Index: n, Err: err}
				}
			}()

			for {
				var intr cpu.Interrupt
				intr, err = amp.Run()
				if err != nil {
					return
				}

				switch intr {
				case cpu.INTERRUPT_HALT:
					// A failed amplifier is never marked halted, so its
					// neighbours stop on the cancelled context instead.
					close(self.halted)
					if nw.Verbose {
						log.Printf("pipeline: amplifier %d halted after %d ticks", n, amp.Ticks)
					}
					if n == last && !written {
						err = ErrNoOutput
					}
					return
				case cpu.INTERRUPT_OUTPUT:
					value, _ := amp.Output()
					if n == last {
						output = value
						written = true
						if !feedback {
							continue
						}
					}
					if len(amps) == 1 {
						// A ring of one feeds itself.
						amp.Input(value)
						continue
					}
					// Keep accepting input while the send is pending, so a
					// ring of writers cannot block on each other.
					for sent := false; !sent; {
						select {
						case next.in <- value:
							sent = true
						case queued := <-self.in:
							amp.Input(queued)
						case <-next.halted:
							// Dropped, the reader is gone.
							sent = true
						case <-ctx.Done():
							return ctx.Err()
						}
					}
				case cpu.INTERRUPT_INPUT:
					select {
					case value := <-self.in:
						amp.Input(value)
					case <-prev.halted:
						return ErrInputExhausted
					case <-ctx.Done():
						return ctx.Err()
					}
				}
			}
		})
	}

	err = g.Wait()
	if err != nil {
		output = 0
	}

	return
}
