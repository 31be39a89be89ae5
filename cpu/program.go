package cpu

import (
	"io"
	"strconv"
	"strings"
)

// Program is a flat intcode memory image, loaded from address 0.
type Program []int64

// ParseProgram reads comma separated decimal integers. White space around
// the whole text, such as a trailing newline, is ignored.
func ParseProgram(r io.Reader) (prog Program, err error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return
	}

	return ParseProgramString(string(data))
}

// ParseProgramString parses program text held in a string.
func ParseProgramString(text string) (prog Program, err error) {
	text = strings.TrimSpace(text)
	if len(text) == 0 {
		err = ErrProgramEmpty
		return
	}

	words := strings.Split(text, ",")
	prog = make(Program, 0, len(words))
	for n, word := range words {
		var value int64
		value, err = strconv.ParseInt(word, 10, 64)
		if err != nil {
			prog = nil
			err = ErrParseNumber{Index: n, Token: word}
			return
		}
		prog = append(prog, value)
	}

	return
}

// String returns the program in its comma separated text form.
func (prog Program) String() string {
	words := make([]string, len(prog))
	for n, value := range prog {
		words[n] = strconv.FormatInt(value, 10)
	}

	return strings.Join(words, ",")
}

// Load reads program text from r and flashes it into the Computer.
func (cpu *Computer) Load(r io.Reader) (err error) {
	prog, err := ParseProgram(r)
	if err != nil {
		return
	}

	return cpu.Flash(prog)
}
