package cpu

import (
	"encoding/binary"
	"errors"
	"fmt"
	"log"
	"slices"

	"github.com/spaolacci/murmur3"

	"github.com/ezrec/intcode/io"
)

// Computer is the simulation context of a single intcode machine.
type Computer struct {
	Verbose bool // Set to enable verbose logging.

	Memory Memory   // Word store.
	Ip     uint64   // Current instruction pointer.
	Base   int64    // Relative base.
	In     io.Queue // Values waiting to be read by the program.
	Out    io.Queue // Values written by the program, not yet taken by the host.
	State  State    // Execution state.

	Ticks int // Executed instruction counter.

	fault error // Fatal error that halted the Computer.
}

// NewComputer creates a new Computer with capacity words of memory.
// A capacity of zero or less selects MEMORY_DEFAULT.
func NewComputer(capacity int) (cpu *Computer) {
	if capacity <= 0 {
		capacity = MEMORY_DEFAULT
	}

	cpu = &Computer{
		Memory: NewMemory(capacity),
	}

	return
}

// Reset the Computer to the booting state.
// - Zeros memory and registers.
// - Empties both queues.
// - Zeros statistics counters.
func (cpu *Computer) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	clear(cpu.Memory)
	cpu.Ip = 0
	cpu.Base = 0
	cpu.In.Reset()
	cpu.Out.Reset()
	cpu.State = STATE_BOOTING
	cpu.Ticks = 0
	cpu.fault = nil
}

// Flash resets the Computer, copies prog into memory from address 0,
// and makes the Computer ready to run.
func (cpu *Computer) Flash(prog Program) (err error) {
	if len(prog) == 0 {
		err = ErrProgramEmpty
		return
	}

	if len(prog) > len(cpu.Memory) {
		// The first word that does not fit.
		err = ErrAddress(len(cpu.Memory))
		return
	}

	cpu.Reset()
	copy(cpu.Memory, prog)
	cpu.State = STATE_READY

	if cpu.Verbose {
		log.Printf("cpu: flashed %d words", len(prog))
	}

	return
}

// LoadString parses program text and flashes it.
func (cpu *Computer) LoadString(text string) (err error) {
	prog, err := ParseProgramString(text)
	if err != nil {
		return
	}

	return cpu.Flash(prog)
}

// Read returns the memory word at addr.
func (cpu *Computer) Read(addr int64) (value int64, err error) {
	return cpu.Memory.Read(addr)
}

// Write sets the memory word at addr.
func (cpu *Computer) Write(addr int64, value int64) (err error) {
	return cpu.Memory.Write(addr, value)
}

// Input queues values for the program to read. Legal in any state.
func (cpu *Computer) Input(values ...int64) {
	cpu.In.Push(values...)
}

// Output takes the oldest value written by the program.
func (cpu *Computer) Output() (value int64, ok bool) {
	return cpu.Out.Pop()
}

// Outputs takes all the values written by the program.
func (cpu *Computer) Outputs() (values []int64) {
	return slices.Collect(cpu.Out.Receive())
}

// Err returns the fatal error that halted the Computer, if any.
func (cpu *Computer) Err() error {
	return cpu.fault
}

// Clone returns an independent copy of the Computer.
func (cpu *Computer) Clone() *Computer {
	dup := *cpu
	dup.Memory = slices.Clone(cpu.Memory)
	dup.In = cpu.In.Clone()
	dup.Out = cpu.Out.Clone()
	return &dup
}

// Fingerprint returns a hash of the memory, registers and queues.
// Two Computers with equal fingerprints behave identically from here on,
// barring hash collisions.
func (cpu *Computer) Fingerprint() uint64 {
	hash := murmur3.New64()

	var block [8 * FINGERPRINT_WORDS]byte
	buf := block[:0]
	put := func(value uint64) {
		buf = binary.LittleEndian.AppendUint64(buf, value)
		if len(buf) == len(block) {
			hash.Write(buf)
			buf = block[:0]
		}
	}

	put(cpu.Ip)
	put(uint64(cpu.Base))
	for _, queue := range []*io.Queue{&cpu.In, &cpu.Out} {
		put(uint64(queue.Len()))
		for _, value := range queue.Data {
			put(uint64(value))
		}
	}
	for _, value := range cpu.Memory {
		put(uint64(value))
	}

	hash.Write(buf)
	return hash.Sum64()
}

// Dump returns the memory surrounding the instruction pointer.
func (cpu *Computer) Dump() string {
	start, words := cpu.Memory.Window(int64(cpu.Ip), DUMP_RADIUS)
	return formatWindow(start, words, int64(cpu.Ip))
}

// String returns the current Computer state as a string.
func (cpu *Computer) String() (text string) {
	regs := []string{
		"state",
		"ip",
		"base",
		"ticks",
		"in",
		"out",
	}
	for _, reg := range regs {
		var strval string
		switch reg {
		case "state":
			strval = cpu.State.String()
		case "ip":
			strval = fmt.Sprintf("%d", cpu.Ip)
		case "base":
			strval = fmt.Sprintf("%d", cpu.Base)
		case "ticks":
			strval = fmt.Sprintf("%d", cpu.Ticks)
		case "in":
			strval = fmt.Sprintf("%v", cpu.In.Data)
		case "out":
			strval = fmt.Sprintf("%v", cpu.Out.Data)
		}
		text += fmt.Sprintf("% 5s: %v\n", reg, strval)
	}

	return
}

// Run executes instructions until the program needs input, has written
// one output value, or halts, and returns which.
//
// A Computer that was halted by a fatal error returns that error again.
func (cpu *Computer) Run() (intr Interrupt, err error) {
	if cpu.State == STATE_BOOTING {
		err = ErrNotLoaded
		return
	}

	for {
		var yield bool
		intr, yield, err = cpu.Tick()
		if yield || err != nil {
			return
		}
	}
}

// FetchCode fetches the instruction word at the instruction pointer.
func (cpu *Computer) FetchCode() (code Code, err error) {
	word, err := cpu.Memory.Read(int64(cpu.Ip))
	if err != nil {
		return
	}

	code = Code(word)
	return
}

// Tick executes a single instruction. yield is set when the instruction
// returns control to the host, with intr holding the reason.
func (cpu *Computer) Tick() (intr Interrupt, yield bool, err error) {
	if cpu.State == STATE_HALTED {
		intr, yield, err = INTERRUPT_HALT, true, cpu.fault
		return
	}

	defer func() {
		if err != nil {
			cpu.fault = err
			cpu.State = STATE_HALTED
			intr, yield = INTERRUPT_HALT, true
			if cpu.Verbose {
				log.Printf("cpu: fault: %v", err)
			}
		}
	}()

	cpu.State = STATE_RUNNING

	code, err := cpu.FetchCode()
	if err != nil {
		return
	}

	intr, yield, err = cpu.Execute(code)
	if err != nil || !yield {
		return
	}

	switch intr {
	case INTERRUPT_HALT:
		cpu.State = STATE_HALTED
	default:
		cpu.State = STATE_INTERRUPTED
	}

	if cpu.Verbose {
		log.Printf("cpu: %v", intr)
	}

	return
}

// Execute executes a single decoded instruction at the instruction pointer.
func (cpu *Computer) Execute(code Code) (intr Interrupt, yield bool, err error) {
	defer func() {
		if err != nil {
			start, window := cpu.Memory.Window(int64(cpu.Ip), DUMP_RADIUS)
			err = errors.Join(ErrOpcode{Ip: cpu.Ip, Code: code, Start: start, Window: window}, err)
		}
	}()
	if cpu.Verbose {
		log.Printf("%04d: %v", cpu.Ip, code)
	}

	op := code.Op()
	if !op.Valid() {
		err = ErrOpcodeUnknown
		return
	}

	next_ip := cpu.Ip + uint64(op.Width())

	switch op {
	case OP_ADD, OP_MUL, OP_LT, OP_EQ:
		var a, b, dst int64
		a, err = cpu.getValue(code, 0)
		if err != nil {
			return
		}
		b, err = cpu.getValue(code, 1)
		if err != nil {
			return
		}
		dst, err = cpu.writeAddr(code, 2)
		if err != nil {
			return
		}
		err = cpu.Memory.Write(dst, cpu.doAlu(op, a, b))
		if err != nil {
			err = errors.Join(ErrOpcodeArg3, err)
			return
		}
	case OP_IN:
		if cpu.In.Empty() {
			// Don't advance to next IP.
			intr, yield = INTERRUPT_INPUT, true
			return
		}
		var dst int64
		dst, err = cpu.writeAddr(code, 0)
		if err != nil {
			return
		}
		value, _ := cpu.In.Peek()
		err = cpu.Memory.Write(dst, value)
		if err != nil {
			err = errors.Join(ErrOpcodeArg1, err)
			return
		}
		cpu.In.Pop()
	case OP_OUT:
		var value int64
		value, err = cpu.getValue(code, 0)
		if err != nil {
			return
		}
		cpu.Out.Push(value)
		intr, yield = INTERRUPT_OUTPUT, true
	case OP_JT, OP_JF:
		var value, target int64
		value, err = cpu.getValue(code, 0)
		if err != nil {
			return
		}
		target, err = cpu.getValue(code, 1)
		if err != nil {
			return
		}
		if (value != 0) == (op == OP_JT) {
			next_ip = uint64(target)
		}
	case OP_ARB:
		var value int64
		value, err = cpu.getValue(code, 0)
		if err != nil {
			return
		}
		cpu.Base += value
	case OP_HALT:
		// Stay on the halt instruction.
		next_ip = cpu.Ip
		intr, yield = INTERRUPT_HALT, true
	}

	cpu.Ip = next_ip
	cpu.Ticks += 1

	return
}

// operandSlot returns the address of the operand at index.
func (cpu *Computer) operandSlot(index int) int64 {
	return int64(cpu.Ip) + int64(index) + 1
}

// readAddr resolves the address an operand reads its value from.
func (cpu *Computer) readAddr(code Code, index int) (addr int64, err error) {
	defer func() {
		if err != nil {
			err = errors.Join(_err_arg[index], err)
		}
	}()

	slot := cpu.operandSlot(index)

	switch mode := code.Mode(index); mode {
	case MODE_POSITION:
		addr, err = cpu.Memory.Read(slot)
	case MODE_IMMEDIATE:
		addr = slot
	case MODE_RELATIVE:
		var offset int64
		offset, err = cpu.Memory.Read(slot)
		addr = cpu.Base + offset
	default:
		err = ErrModeInvalid
	}

	return
}

// writeAddr resolves the address an operand writes its result to.
// An immediate mode destination writes to the address held in the operand,
// exactly as a position mode destination does.
func (cpu *Computer) writeAddr(code Code, index int) (addr int64, err error) {
	defer func() {
		if err != nil {
			err = errors.Join(_err_arg[index], err)
		}
	}()

	slot := cpu.operandSlot(index)

	switch mode := code.Mode(index); mode {
	case MODE_POSITION, MODE_IMMEDIATE:
		if mode == MODE_IMMEDIATE && cpu.Verbose {
			log.Printf("%04d: immediate mode destination", cpu.Ip)
		}
		addr, err = cpu.Memory.Read(slot)
	case MODE_RELATIVE:
		var offset int64
		offset, err = cpu.Memory.Read(slot)
		addr = cpu.Base + offset
	default:
		err = ErrModeInvalid
	}

	return
}

// getValue gets the value of the operand at index.
func (cpu *Computer) getValue(code Code, index int) (value int64, err error) {
	addr, err := cpu.readAddr(code, index)
	if err != nil {
		return
	}

	value, err = cpu.Memory.Read(addr)
	if err != nil {
		err = errors.Join(_err_arg[index], err)
	}
	return
}

// doAlu performs the requested arithmetic or comparison, and returns the output value.
func (cpu *Computer) doAlu(op CodeOp, a int64, b int64) (output int64) {
	switch op {
	case OP_ADD:
		output = a + b
	case OP_MUL:
		output = a * b
	case OP_LT:
		if a < b {
			output = 1
		}
	case OP_EQ:
		if a == b {
			output = 1
		}
	}

	return
}
