package script

import (
	"go.starlark.net/starlark"

	"github.com/ezrec/intcode/cpu"
)

// toInt converts a Starlark int to an int64.
func toInt(name string, arg string, v starlark.Value) (value int64, err error) {
	st_int, ok := v.(starlark.Int)
	if !ok {
		err = &ErrArgument{Func: name, Arg: arg, Err: ErrNotInteger}
		return
	}

	value, ok = st_int.Int64()
	if !ok {
		err = &ErrArgument{Func: name, Arg: arg, Err: ErrOverflow}
		return
	}

	return
}

// noKeywords rejects keyword arguments to a builtin that takes none.
func noKeywords(name string, kwargs []starlark.Tuple) (err error) {
	if len(kwargs) > 0 {
		err = &ErrArgument{Func: name, Arg: kwargs[0][0].String(), Err: ErrKeyword}
	}
	return
}

// toInts converts each element of a tuple of Starlark ints.
func toInts(name string, arg string, args starlark.Tuple) (values []int64, err error) {
	values = make([]int64, 0, len(args))
	for _, v := range args {
		var value int64
		value, err = toInt(name, arg, v)
		if err != nil {
			values = nil
			return
		}
		values = append(values, value)
	}

	return
}

// toIntList converts any iterable of Starlark ints.
func toIntList(name string, arg string, v starlark.Value) (values []int64, err error) {
	iterable, ok := v.(starlark.Iterable)
	if !ok {
		err = &ErrArgument{Func: name, Arg: arg, Err: ErrNotInteger}
		return
	}

	iter := iterable.Iterate()
	defer iter.Done()

	var elem starlark.Value
	for iter.Next(&elem) {
		var value int64
		value, err = toInt(name, arg, elem)
		if err != nil {
			values = nil
			return
		}
		values = append(values, value)
	}

	return
}

// toProgram converts program text, or a list of ints, to a Program.
func toProgram(name string, v starlark.Value) (prog cpu.Program, err error) {
	if text, ok := v.(starlark.String); ok {
		prog, err = cpu.ParseProgramString(string(text))
		if err != nil {
			err = &ErrArgument{Func: name, Arg: "program", Err: err}
		}
		return
	}

	values, err := toIntList(name, "program", v)
	if err != nil {
		return
	}

	prog = cpu.Program(values)
	return
}

// fromInts converts values to a Starlark list.
func fromInts(values []int64) *starlark.List {
	elems := make([]starlark.Value, len(values))
	for n, value := range values {
		elems[n] = starlark.MakeInt64(value)
	}

	return starlark.NewList(elems)
}
