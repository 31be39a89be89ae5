// Package script runs Starlark scripts that drive intcode Computers.
//
// A script sees the loaded program text as `program`, and these builtins:
//
//	computer(program=program, memory=0)  new Computer, flashed and ready
//	chain(phases, signal=0)              amplifier chain output
//	feedback(phases, signal=0)           amplifier feedback ring output
//	max_signal(phases, feedback=False)   (best, order) over phase orderings
//	find_noun_verb(target)               (noun, verb) leaving target at 0
//
// A computer has the methods input(*values), output(), outputs(), run(),
// run_all(*values), read(addr), write(addr, value), clone() and dump(),
// and the read-only attributes state, ip, base, ticks and fingerprint.
package script

import (
	"io"
	"log"
	"os"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/intcode/cpu"
	"github.com/ezrec/intcode/emulator"
)

// Script executes Starlark source against a loaded program.
type Script struct {
	Verbose  bool      // If set, logs the builtins called.
	Capacity int       // Default memory capacity of each Computer, 0 for the default.
	Output   io.Writer // Destination of print(), os.Stdout if nil.

	program cpu.Program
}

// Exec runs src, which may be a string, []byte or io.Reader, with program
// as the default program of every builtin. The script's globals are returned.
func (sc *Script) Exec(filename string, src any, program cpu.Program) (globals starlark.StringDict, err error) {
	sc.program = program

	output := sc.Output
	if output == nil {
		output = os.Stdout
	}

	thread := &starlark.Thread{
		Name: filename,
		Print: func(thread *starlark.Thread, msg string) {
			io.WriteString(output, msg+"\n")
		},
	}

	opts := syntax.FileOptions{
		Set:             true,
		While:           true,
		TopLevelControl: true,
		GlobalReassign:  true,
	}

	pred := starlark.StringDict{
		"program":        starlark.String(program.String()),
		"computer":       starlark.NewBuiltin("computer", sc.computer),
		"chain":          starlark.NewBuiltin("chain", sc.chain),
		"feedback":       starlark.NewBuiltin("feedback", sc.feedback),
		"max_signal":     starlark.NewBuiltin("max_signal", sc.maxSignal),
		"find_noun_verb": starlark.NewBuiltin("find_noun_verb", sc.findNounVerb),
	}

	globals, err = starlark.ExecFileOptions(&opts, thread, filename, src, pred)
	if err != nil {
		err = &ErrScript{Filename: filename, Err: err}
		return
	}

	return
}

// network returns the amplifier network of the loaded program.
func (sc *Script) network(name string) (nw *emulator.Network, err error) {
	if len(sc.program) == 0 {
		err = &ErrArgument{Func: name, Arg: "program", Err: ErrNoProgram}
		return
	}

	nw = &emulator.Network{
		Verbose:  sc.Verbose,
		Program:  sc.program,
		Capacity: sc.Capacity,
	}
	return
}

func (sc *Script) computer(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (value starlark.Value, err error) {
	var st_prog starlark.Value = starlark.None
	memory := sc.Capacity
	err = starlark.UnpackArgs(fn.Name(), args, kwargs, "program?", &st_prog, "memory?", &memory)
	if err != nil {
		return
	}

	prog := sc.program
	if st_prog != starlark.None {
		prog, err = toProgram(fn.Name(), st_prog)
		if err != nil {
			return
		}
	}
	if len(prog) == 0 {
		err = &ErrArgument{Func: fn.Name(), Arg: "program", Err: ErrNoProgram}
		return
	}

	if sc.Verbose {
		log.Printf("script: computer(%d words, memory %d)", len(prog), memory)
	}

	value, err = newComputer(memory, prog, sc.Verbose)
	return
}

// unpackPhases unpacks the phases argument, and one optional argument.
func unpackPhases(fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple, name string, ptr any) (phases []int64, err error) {
	var st_phases starlark.Value
	err = starlark.UnpackArgs(fn.Name(), args, kwargs, "phases", &st_phases, name+"?", ptr)
	if err != nil {
		return
	}

	phases, err = toIntList(fn.Name(), "phases", st_phases)
	return
}

func (sc *Script) chain(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (value starlark.Value, err error) {
	var st_signal starlark.Value = starlark.MakeInt(0)
	phases, err := unpackPhases(fn, args, kwargs, "signal", &st_signal)
	if err != nil {
		return
	}
	signal, err := toInt(fn.Name(), "signal", st_signal)
	if err != nil {
		return
	}

	nw, err := sc.network(fn.Name())
	if err != nil {
		return
	}

	output, err := nw.Chain(phases, signal)
	if err != nil {
		return
	}

	value = starlark.MakeInt64(output)
	return
}

func (sc *Script) feedback(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (value starlark.Value, err error) {
	var st_signal starlark.Value = starlark.MakeInt(0)
	phases, err := unpackPhases(fn, args, kwargs, "signal", &st_signal)
	if err != nil {
		return
	}
	signal, err := toInt(fn.Name(), "signal", st_signal)
	if err != nil {
		return
	}

	nw, err := sc.network(fn.Name())
	if err != nil {
		return
	}

	output, err := nw.Feedback(phases, signal)
	if err != nil {
		return
	}

	value = starlark.MakeInt64(output)
	return
}

func (sc *Script) maxSignal(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (value starlark.Value, err error) {
	var feedback bool
	phases, err := unpackPhases(fn, args, kwargs, "feedback", &feedback)
	if err != nil {
		return
	}

	nw, err := sc.network(fn.Name())
	if err != nil {
		return
	}

	best, order, err := nw.MaxSignal(phases, feedback)
	if err != nil {
		return
	}

	value = starlark.Tuple{starlark.MakeInt64(best), fromInts(order)}
	return
}

func (sc *Script) findNounVerb(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (value starlark.Value, err error) {
	var st_target starlark.Value
	err = starlark.UnpackArgs(fn.Name(), args, kwargs, "target", &st_target)
	if err != nil {
		return
	}
	target, err := toInt(fn.Name(), "target", st_target)
	if err != nil {
		return
	}

	if len(sc.program) == 0 {
		err = &ErrArgument{Func: fn.Name(), Arg: "program", Err: ErrNoProgram}
		return
	}

	noun, verb, err := emulator.FindNounVerb(sc.program, target, sc.Capacity)
	if err != nil {
		return
	}

	value = starlark.Tuple{starlark.MakeInt64(noun), starlark.MakeInt64(verb)}
	return
}
