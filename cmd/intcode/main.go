// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/peterh/liner"

	"github.com/ezrec/intcode/cpu"
	"github.com/ezrec/intcode/emulator"
	"github.com/ezrec/intcode/script"
	"github.com/ezrec/intcode/translate"
)

func main() {
	var config string

	cli := &Config{}
	cli.Flags(flag.CommandLine)
	flag.StringVar(&config, "config", "", "TOML configuration file")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	cfg := cli
	if len(config) != 0 {
		var err error
		cfg, err = LoadConfig(config, flag.CommandLine, cli)
		if err != nil {
			log.Fatalf("%v: %v", config, err)
		}
	}

	if len(cfg.Language) != 0 {
		translate.SetLanguage(cfg.Language)
	}
	if cfg.Verbose {
		log.Printf("intcode: language %v", translate.Language())
	}

	var prog cpu.Program
	if len(cfg.Program) != 0 {
		inf, err := os.Open(cfg.Program)
		if err != nil {
			log.Fatalf("%v: %v", cfg.Program, err)
		}
		prog, err = cpu.ParseProgram(inf)
		inf.Close()
		if err != nil {
			log.Fatalf("%v: %v", cfg.Program, err)
		}
	} else if len(cfg.Script) == 0 {
		log.Fatalf("%v: %v", os.Args[0], ErrNoProgram)
	}

	switch {
	case len(cfg.Script) != 0:
		runScript(cfg, prog)
	case len(cfg.Phases) != 0:
		runNetwork(cfg, prog)
	case cfg.Target != nil:
		runSearch(cfg, prog)
	default:
		runTape(cfg, prog)
	}
}

// runScript executes a Starlark script against the program.
func runScript(cfg *Config, prog cpu.Program) {
	inf, err := os.Open(cfg.Script)
	if err != nil {
		log.Fatalf("%v: %v", cfg.Script, err)
	}
	defer inf.Close()

	sc := &script.Script{
		Verbose:  cfg.Verbose,
		Capacity: cfg.Memory,
		Output:   os.Stdout,
	}

	_, err = sc.Exec(cfg.Script, inf, prog)
	if err != nil {
		log.Fatal(err)
	}
}

// runNetwork runs the program as a network of amplifiers.
func runNetwork(cfg *Config, prog cpu.Program) {
	nw := &emulator.Network{
		Verbose:  cfg.Verbose,
		Program:  prog,
		Capacity: cfg.Memory,
	}

	if cfg.Max {
		best, order, err := nw.MaxSignal(cfg.Phases, cfg.Feedback)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%d %v\n", best, (*phaseList)(&order))
		return
	}

	var output int64
	var err error
	switch {
	case cfg.Concurrent:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		output, err = nw.Pipeline(ctx, cfg.Phases, 0, cfg.Feedback)
	case cfg.Feedback:
		output, err = nw.Feedback(cfg.Phases, 0)
	default:
		output, err = nw.Chain(cfg.Phases, 0)
	}
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%d\n", output)
}

// runSearch finds the noun and verb that produce the target.
func runSearch(cfg *Config, prog cpu.Program) {
	noun, verb, err := emulator.FindNounVerb(prog, *cfg.Target, cfg.Memory)
	if err != nil {
		log.Fatal(err)
	}

	if cfg.Verbose {
		translate.Fprintf(os.Stderr, "noun %d, verb %d\n", noun, verb)
	}

	fmt.Printf("%d\n", (emulator.NOUN_MAX+1)*noun+verb)
}

// openTape attaches the Tape to the named files, "-" being stdio.
func openTape(cfg *Config, emu *emulator.Emulator) (closers []io.Closer) {
	if cfg.Input == "-" {
		emu.Tape.Input = os.Stdin
	} else {
		inf, err := os.Open(cfg.Input)
		if err != nil {
			log.Fatalf("%v: %v", cfg.Input, err)
		}
		closers = append(closers, inf)
		emu.Tape.Input = inf
	}

	if cfg.Output == "-" {
		emu.Tape.Output = os.Stdout
	} else {
		ouf, err := os.Create(cfg.Output)
		if err != nil {
			log.Fatalf("%v: %v", cfg.Output, err)
		}
		closers = append(closers, ouf)
		emu.Tape.Output = ouf
	}

	return
}

// runTape runs the program with its input and output on the Tape.
func runTape(cfg *Config, prog cpu.Program) {
	emu := emulator.NewEmulator(cfg.Memory)
	emu.Program = prog
	emu.Verbose = cfg.Verbose
	emu.Tape.Ascii = cfg.Ascii || cfg.Interactive

	for _, closer := range openTape(cfg, emu) {
		defer closer.Close()
	}

	if cfg.Interactive {
		ln := liner.NewLiner()
		defer ln.Close()
		ln.SetCtrlCAborts(true)

		emu.Prompt = func() (line string, err error) {
			line, err = ln.Prompt("> ")
			if err == nil {
				ln.AppendHistory(line)
			}
			return
		}
	}

	err := emu.Reset()
	if err != nil {
		log.Fatalf("%v: %v", cfg.Program, err)
	}

	for done := false; !done; {
		done, err = emu.Tick()
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			break
		}
		if err != nil {
			log.Fatal(err)
		}
	}

	if cfg.Verbose {
		translate.Fprintf(os.Stderr, "%v", emu.Computer.String())
		translate.Fprintf(os.Stderr, "fingerprint: %016x\n", emu.Fingerprint())
	}
}
