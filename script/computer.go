package script

import (
	"maps"
	"slices"

	"go.starlark.net/starlark"

	"github.com/ezrec/intcode/cpu"
	"github.com/ezrec/intcode/emulator"
)

// computerMethods are the methods of a computer value.
var computerMethods = map[string](func(c *Computer, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error)){
	"clone":   (*Computer).clone,
	"dump":    (*Computer).dump,
	"input":   (*Computer).input,
	"output":  (*Computer).output,
	"outputs": (*Computer).outputs,
	"read":    (*Computer).read,
	"run":     (*Computer).run,
	"run_all": (*Computer).runAll,
	"write":   (*Computer).write,
}

// computerAttrs are the read-only registers of a computer value.
var computerAttrs = []string{"base", "fingerprint", "ip", "state", "ticks"}

// Computer is the script view of an emulated intcode Computer.
type Computer struct {
	*emulator.Emulator
}

var _ starlark.HasAttrs = (*Computer)(nil)

func (c *Computer) String() string {
	return f("<computer %v ip=%d>", c.State, c.Ip)
}

func (c *Computer) Type() string {
	return "computer"
}

func (c *Computer) Freeze() {}

func (c *Computer) Truth() starlark.Bool {
	return starlark.True
}

func (c *Computer) Hash() (uint32, error) {
	return 0, &ErrArgument{Func: "hash", Arg: c.Type(), Err: ErrUnhashable}
}

func (c *Computer) Attr(name string) (value starlark.Value, err error) {
	switch name {
	case "base":
		value = starlark.MakeInt64(c.Base)
	case "fingerprint":
		value = starlark.MakeUint64(c.Fingerprint())
	case "ip":
		value = starlark.MakeUint64(c.Ip)
	case "state":
		value = starlark.String(c.State.String())
	case "ticks":
		value = starlark.MakeInt(c.Ticks)
	default:
		method, ok := computerMethods[name]
		if !ok {
			// nil, nil reports a missing attribute.
			return
		}
		value = starlark.NewBuiltin(name, func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			return method(c, fn, args, kwargs)
		})
	}

	return
}

func (c *Computer) AttrNames() (names []string) {
	names = slices.Collect(maps.Keys(computerMethods))
	names = append(names, computerAttrs...)
	slices.Sort(names)
	return
}

func (c *Computer) clone(fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (value starlark.Value, err error) {
	err = starlark.UnpackArgs(fn.Name(), args, kwargs)
	if err != nil {
		return
	}

	emu := &emulator.Emulator{
		Verbose:  c.Verbose,
		Computer: c.Computer.Clone(),
		Program:  c.Program,
	}
	value = &Computer{Emulator: emu}
	return
}

func (c *Computer) dump(fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (value starlark.Value, err error) {
	err = starlark.UnpackArgs(fn.Name(), args, kwargs)
	if err != nil {
		return
	}

	value = starlark.String(c.Dump())
	return
}

func (c *Computer) input(fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (value starlark.Value, err error) {
	err = noKeywords(fn.Name(), kwargs)
	if err != nil {
		return
	}
	values, err := toInts(fn.Name(), "values", args)
	if err != nil {
		return
	}

	c.Input(values...)
	value = starlark.None
	return
}

func (c *Computer) output(fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (value starlark.Value, err error) {
	err = starlark.UnpackArgs(fn.Name(), args, kwargs)
	if err != nil {
		return
	}

	out, ok := c.Output()
	if !ok {
		value = starlark.None
		return
	}

	value = starlark.MakeInt64(out)
	return
}

func (c *Computer) outputs(fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (value starlark.Value, err error) {
	err = starlark.UnpackArgs(fn.Name(), args, kwargs)
	if err != nil {
		return
	}

	value = fromInts(c.Outputs())
	return
}

func (c *Computer) read(fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (value starlark.Value, err error) {
	var st_addr starlark.Value
	err = starlark.UnpackArgs(fn.Name(), args, kwargs, "addr", &st_addr)
	if err != nil {
		return
	}

	addr, err := toInt(fn.Name(), "addr", st_addr)
	if err != nil {
		return
	}

	word, err := c.Read(addr)
	if err != nil {
		return
	}

	value = starlark.MakeInt64(word)
	return
}

func (c *Computer) write(fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (value starlark.Value, err error) {
	var st_addr, st_word starlark.Value
	err = starlark.UnpackArgs(fn.Name(), args, kwargs, "addr", &st_addr, "value", &st_word)
	if err != nil {
		return
	}

	addr, err := toInt(fn.Name(), "addr", st_addr)
	if err != nil {
		return
	}
	word, err := toInt(fn.Name(), "value", st_word)
	if err != nil {
		return
	}

	err = c.Write(addr, word)
	if err != nil {
		return
	}

	value = starlark.None
	return
}

// run returns the name of the interrupt that stopped the Computer:
// "halt", "input" or "output".
func (c *Computer) run(fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (value starlark.Value, err error) {
	err = starlark.UnpackArgs(fn.Name(), args, kwargs)
	if err != nil {
		return
	}

	intr, err := c.Run()
	if err != nil {
		return
	}

	value = starlark.String(intr.String())
	return
}

func (c *Computer) runAll(fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (value starlark.Value, err error) {
	err = noKeywords(fn.Name(), kwargs)
	if err != nil {
		return
	}
	values, err := toInts(fn.Name(), "values", args)
	if err != nil {
		return
	}

	outputs, err := c.RunAll(values...)
	if err != nil {
		return
	}

	value = fromInts(outputs)
	return
}

// newComputer creates a flashed computer value.
func newComputer(capacity int, prog cpu.Program, verbose bool) (c *Computer, err error) {
	emu := emulator.NewEmulator(capacity)
	emu.Verbose = verbose
	emu.Program = prog

	err = emu.Reset()
	if err != nil {
		return
	}

	c = &Computer{Emulator: emu}
	return
}
