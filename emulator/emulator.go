// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emulator drives intcode Computers: a single Computer attached to
// a Tape, amplifier chains and feedback rings of Computers, and searches
// over program inputs and machine states.
package emulator

import (
	"log"

	"github.com/ezrec/intcode/cpu"
	"github.com/ezrec/intcode/io"
)

// Emulator state. Computer + Tape.
type Emulator struct {
	Verbose       bool        // If set, enables verbose logging.
	*cpu.Computer             // Reference to the Computer simulation.
	Program       cpu.Program // Currently loaded program.

	Tape io.Tape // Tape IO channel.

	// Prompt, when set, supplies a line of input whenever the program is
	// starved of input, in place of the Tape. The line is fed to the
	// program as ASCII, terminated by a newline.
	Prompt func() (line string, err error)
}

// NewEmulator creates a new emulator with capacity words of memory.
func NewEmulator(capacity int) (emu *Emulator) {
	emu = &Emulator{
		Computer: cpu.NewComputer(capacity),
	}

	return
}

// Reset the emulator, reloading the program.
func (emu *Emulator) Reset() (err error) {
	emu.Computer.Verbose = emu.Verbose

	err = emu.Computer.Flash(emu.Program)
	if err != nil {
		return
	}

	emu.Tape.Rewind()

	return
}

// Tick runs the Computer up to its next interruption and services it:
// output is written to the Tape, and input is read from the Prompt or
// the Tape. done is set once the program has halted.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set Computer verbosity
	emu.Computer.Verbose = emu.Verbose

	defer func() {
		if err != nil {
			err = &ErrRuntime{Ip: emu.Computer.Ip, Ticks: emu.Computer.Ticks, Err: err}
		}
	}()

	intr, err := emu.Computer.Run()
	if err != nil {
		return
	}

	switch intr {
	case cpu.INTERRUPT_HALT:
		done = true
	case cpu.INTERRUPT_OUTPUT:
		for value := range emu.Computer.Out.Receive() {
			err = emu.Tape.Send(value)
			if err != nil {
				return
			}
		}
	case cpu.INTERRUPT_INPUT:
		err = emu.feed()
	}

	return
}

// feed supplies the starved Computer with its next input.
func (emu *Emulator) feed() (err error) {
	if emu.Prompt != nil {
		var line string
		line, err = emu.Prompt()
		if err != nil {
			return
		}
		for _, c := range []byte(line) {
			emu.Computer.Input(int64(c))
		}
		emu.Computer.Input('\n')
		return
	}

	// An ASCII tape supplies a line at a time, a numeric tape one value.
	fed := 0
	for value := range emu.Tape.Receive() {
		emu.Computer.Input(value)
		fed++
		if !emu.Tape.Ascii || value == '\n' {
			break
		}
	}

	err = emu.Tape.Err()
	if err != nil {
		return
	}

	if fed == 0 {
		err = ErrInputExhausted
		return
	}

	if emu.Verbose {
		log.Printf("emulator: fed %d values", fed)
	}

	return
}

// RunAll queues inputs, runs the program until it halts, and returns
// every value it wrote. The Tape is not used.
func (emu *Emulator) RunAll(inputs ...int64) (outputs []int64, err error) {
	emu.Computer.Verbose = emu.Verbose
	emu.Computer.Input(inputs...)

	defer func() {
		if err != nil {
			err = &ErrRuntime{Ip: emu.Computer.Ip, Ticks: emu.Computer.Ticks, Err: err}
		}
	}()

	for {
		var intr cpu.Interrupt
		intr, err = emu.Computer.Run()
		if err != nil {
			return
		}

		outputs = append(outputs, emu.Computer.Outputs()...)

		switch intr {
		case cpu.INTERRUPT_HALT:
			return
		case cpu.INTERRUPT_INPUT:
			err = ErrInputExhausted
			return
		}
	}
}
