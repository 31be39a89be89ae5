// Package cpu implements the intcode Computer.
//
// The Computer consists of a fixed-capacity memory of signed 64-bit words,
// an instruction pointer (Ip), a relative base register (Base), and two
// unbounded FIFO queues connecting it to its host. Instructions are decoded
// from decimal instruction words: the low two digits select one of ten
// operations, and each further digit selects the addressing mode (position,
// immediate or relative) of one operand.
//
// Execution is cooperative. Run returns control to the host whenever the
// program reads from an empty input queue, writes an output value, or
// halts, so that several Computers can be driven in turn from one loop.
package cpu
