package cpu

// State is the execution state of a Computer.
type State int

//go:generate go tool stringer -linecomment -type=State
const (
	STATE_BOOTING     = State(0) // booting
	STATE_READY       = State(1) // ready
	STATE_RUNNING     = State(2) // running
	STATE_INTERRUPTED = State(3) // interrupted
	STATE_HALTED      = State(4) // halted
)

// Interrupt is the reason Run returned control to the host.
type Interrupt int

//go:generate go tool stringer -linecomment -type=Interrupt
const (
	INTERRUPT_HALT   = Interrupt(0) // halt
	INTERRUPT_INPUT  = Interrupt(1) // input
	INTERRUPT_OUTPUT = Interrupt(2) // output
)
