package emulator

import (
	"github.com/ezrec/intcode/cpu"
)

const (
	NOUN_ADDR = 1  // Address patched with the noun.
	VERB_ADDR = 2  // Address patched with the verb.
	NOUN_MAX  = 99 // Largest noun or verb tried.
)

// Patch runs a clone of base with the noun and verb written to
// addresses 1 and 2, and returns the word left at address 0 when it halts.
func Patch(base *cpu.Computer, noun, verb int64) (result int64, err error) {
	computer := base.Clone()

	err = computer.Write(NOUN_ADDR, noun)
	if err != nil {
		return
	}
	err = computer.Write(VERB_ADDR, verb)
	if err != nil {
		return
	}

	intr, err := computer.Run()
	if err != nil {
		return
	}
	switch intr {
	case cpu.INTERRUPT_HALT:
	case cpu.INTERRUPT_INPUT:
		err = ErrInputExhausted
		return
	default:
		err = ErrNotHalted
		return
	}

	result, err = computer.Read(0)
	return
}

// FindNounVerb searches the nouns and verbs 0 through 99 for the pair
// that leaves target at address 0. Runs that fail are skipped.
func FindNounVerb(prog cpu.Program, target int64, capacity int) (noun, verb int64, err error) {
	base := cpu.NewComputer(capacity)
	err = base.Flash(prog)
	if err != nil {
		return
	}

	for noun = 0; noun <= NOUN_MAX; noun++ {
		for verb = 0; verb <= NOUN_MAX; verb++ {
			result, perr := Patch(base, noun, verb)
			if perr != nil {
				continue
			}
			if result == target {
				return
			}
		}
	}

	noun, verb = 0, 0
	err = ErrNotFound
	return
}
