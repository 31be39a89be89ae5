package emulator

import (
	"github.com/ezrec/intcode/cpu"
	"github.com/ezrec/intcode/internal"
)

// Network is a series of amplifiers, each a Computer running the same
// program, primed with its own phase setting.
type Network struct {
	Verbose  bool        // If set, enables verbose logging of each amplifier.
	Program  cpu.Program // Amplifier program.
	Capacity int         // Memory capacity of each amplifier, 0 for the default.
}

// amplifiers creates one flashed Computer per phase, each primed with its phase.
func (nw *Network) amplifiers(phases []int64) (amps []*cpu.Computer, err error) {
	if len(phases) == 0 {
		err = ErrNoPhases
		return
	}

	amps = make([]*cpu.Computer, len(phases))
	for n, phase := range phases {
		amp := cpu.NewComputer(nw.Capacity)
		amp.Verbose = nw.Verbose
		err = amp.Flash(nw.Program)
		if err != nil {
			amps = nil
			return
		}
		amp.Input(phase)
		amps[n] = amp
	}

	return
}

// Chain passes signal through the amplifiers in series: the first output
// of each amplifier is the input signal of the next.
func (nw *Network) Chain(phases []int64, signal int64) (output int64, err error) {
	amps, err := nw.amplifiers(phases)
	if err != nil {
		return
	}

	for n, amp := range amps {
		amp.Input(signal)
		signal, err = firstOutput(amp)
		if err != nil {
			err = &ErrAmplifier{Index: n, Err: err}
			return
		}
	}

	output = signal
	return
}

// firstOutput runs the Computer until its first output value.
func firstOutput(amp *cpu.Computer) (value int64, err error) {
	intr, err := amp.Run()
	if err != nil {
		return
	}

	switch intr {
	case cpu.INTERRUPT_OUTPUT:
		value, _ = amp.Output()
	case cpu.INTERRUPT_INPUT:
		err = ErrInputExhausted
	default:
		err = ErrNoOutput
	}

	return
}

// Feedback connects the amplifiers in a ring, the output of the last
// amplifier feeding the first, and drives them in turn from a single
// goroutine until the last amplifier halts. The last value written by
// the last amplifier is returned.
func (nw *Network) Feedback(phases []int64, signal int64) (output int64, err error) {
	amps, err := nw.amplifiers(phases)
	if err != nil {
		return
	}

	last := len(amps) - 1
	amps[0].Input(signal)

	written := false
	for {
		progress := false
		for n, amp := range amps {
			next := amps[(n+1)%len(amps)]
			for amp.State != cpu.STATE_HALTED {
				var intr cpu.Interrupt
				intr, err = amp.Run()
				if err != nil {
					err = &ErrAmplifier{Index: n, Err: err}
					return
				}
				if intr != cpu.INTERRUPT_OUTPUT {
					break
				}
				value, _ := amp.Output()
				next.Input(value)
				progress = true
				if n == last {
					output = value
					written = true
				}
			}
		}

		if amps[last].State == cpu.STATE_HALTED {
			break
		}

		if !progress {
			err = ErrDeadlock
			return
		}
	}

	if !written {
		err = &ErrAmplifier{Index: last, Err: ErrNoOutput}
	}

	return
}

// MaxSignal tries every ordering of the phase settings and returns the
// highest output signal, with the ordering that produced it. Each
// ordering is run as a Chain, or as a Feedback ring if feedback is set.
func (nw *Network) MaxSignal(phases []int64, feedback bool) (best int64, order []int64, err error) {
	if len(phases) == 0 {
		err = ErrNoPhases
		return
	}

	run := nw.Chain
	if feedback {
		run = nw.Feedback
	}

	for perm := range internal.Permutations(phases) {
		var signal int64
		signal, err = run(perm, 0)
		if err != nil {
			return
		}
		if order == nil || signal > best {
			best = signal
			order = perm
		}
	}

	return
}
