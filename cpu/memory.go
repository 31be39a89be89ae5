package cpu

const (
	MEMORY_DEFAULT = 65536 // Default memory capacity, in words.
	DUMP_RADIUS    = 8     // Words either side of the Ip in a diagnostic dump.

	FINGERPRINT_WORDS = 64 // Words hashed per block by Fingerprint.
)

// Memory is the fixed-capacity word store of a Computer.
type Memory []int64

// NewMemory allocates a zeroed memory of capacity words.
func NewMemory(capacity int) Memory {
	return make(Memory, capacity)
}

// Read returns the word at addr.
func (mem Memory) Read(addr int64) (value int64, err error) {
	if addr < 0 || addr >= int64(len(mem)) {
		err = ErrAddress(addr)
		return
	}

	value = mem[addr]
	return
}

// Write sets the word at addr.
func (mem Memory) Write(addr int64, value int64) (err error) {
	if addr < 0 || addr >= int64(len(mem)) {
		err = ErrAddress(addr)
		return
	}

	mem[addr] = value
	return
}

// Window returns up to radius words either side of center, clipped to the
// memory bounds, and the address of the first returned word.
func (mem Memory) Window(center int64, radius int) (start int64, words []int64) {
	start = max(center-int64(radius), 0)
	end := min(center+int64(radius)+1, int64(len(mem)))
	if start >= end {
		start = 0
		return
	}

	words = append(words, mem[start:end]...)
	return
}
