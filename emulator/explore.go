package emulator

import (
	"log"
	"slices"

	"github.com/ezrec/intcode/cpu"
)

// Node is one machine state reached while exploring.
type Node struct {
	*cpu.Computer         // Machine state, starved of input or halted.
	Path          []int64 // Inputs given since the start, in order.
	Response      []int64 // Values written in response to the last input.
}

// Explorer is a breadth first search over the inputs of a program.
type Explorer struct {
	Verbose bool    // If set, logs search progress.
	Moves   []int64 // Inputs tried at every step.
}

// Explore searches breadth first from start, giving each reachable state
// one of the Moves as its next input. States already seen, by Computer
// fingerprint, are not revisited. accept is called once per new state:
// keep adds it to the search frontier, and done ends the search with
// that state. Branches that fault are pruned.
func (ex *Explorer) Explore(start *cpu.Computer, accept func(node *Node) (keep, done bool)) (found *Node, err error) {
	seen := map[uint64]bool{start.Fingerprint(): true}
	frontier := []*Node{{Computer: start.Clone()}}

	for depth := 0; len(frontier) > 0; depth++ {
		if ex.Verbose {
			log.Printf("explore: depth %d, %d states, %d seen", depth, len(frontier), len(seen))
		}

		var next []*Node
		for _, node := range frontier {
			if node.State == cpu.STATE_HALTED {
				continue
			}
			for _, move := range ex.Moves {
				child, ok := ex.step(node, move)
				if !ok {
					continue
				}

				fp := child.Fingerprint()
				if seen[fp] {
					continue
				}
				seen[fp] = true

				keep, done := accept(child)
				if done {
					found = child
					return
				}
				if keep {
					next = append(next, child)
				}
			}
		}
		frontier = next
	}

	err = ErrNotFound
	return
}

// step gives a clone of node one input, and runs it until it needs more.
func (ex *Explorer) step(node *Node, move int64) (child *Node, ok bool) {
	computer := node.Computer.Clone()
	computer.Input(move)

	var output []int64
	for {
		intr, err := computer.Run()
		if err != nil {
			if ex.Verbose {
				log.Printf("explore: path %v: %v", append(slices.Clone(node.Path), move), err)
			}
			return
		}
		output = append(output, computer.Outputs()...)
		if intr != cpu.INTERRUPT_OUTPUT {
			break
		}
	}

	child = &Node{
		Computer: computer,
		Path:     append(slices.Clone(node.Path), move),
		Response: output,
	}
	ok = true
	return
}
