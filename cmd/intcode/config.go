// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/ezrec/intcode/io"
)

// Config is the run configuration. Each key of a TOML configuration file
// matches the command line flag of the same name.
type Config struct {
	Program     string  `toml:"program"`     // Program file.
	Input       string  `toml:"input"`       // Tape input, "-" for stdin.
	Output      string  `toml:"output"`      // Tape output, "-" for stdout.
	Ascii       bool    `toml:"ascii"`       // Tape in ASCII mode.
	Interactive bool    `toml:"interactive"` // Prompt for input lines.
	Memory      int     `toml:"memory"`      // Memory words, 0 for the default.
	Phases      []int64 `toml:"phases"`      // Amplifier phase settings.
	Feedback    bool    `toml:"feedback"`    // Amplifiers in a feedback ring.
	Concurrent  bool    `toml:"concurrent"`  // One goroutine per amplifier.
	Max         bool    `toml:"max"`         // Search phase orderings.
	Target      *int64  `toml:"target"`      // Noun/verb search target.
	Script      string  `toml:"script"`      // Starlark script file.
	Language    string  `toml:"lang"`        // Diagnostic language, empty for the locale.
	Verbose     bool    `toml:"verbose"`     // Verbose logging.
}

// phaseList is a flag.Value of comma separated phase settings.
type phaseList []int64

func (pl *phaseList) String() string {
	if pl == nil {
		return ""
	}
	words := make([]string, len(*pl))
	for n, value := range *pl {
		words[n] = strconv.FormatInt(value, 10)
	}
	return strings.Join(words, ",")
}

func (pl *phaseList) Set(text string) (err error) {
	tape := &io.Tape{Input: strings.NewReader(text)}
	var values []int64
	for value := range tape.Receive() {
		values = append(values, value)
	}
	err = tape.Err()
	if err != nil {
		return
	}

	*pl = values
	return
}

// targetValue is a flag.Value that records being set.
type targetValue struct {
	value **int64
}

func (tv targetValue) String() string {
	if tv.value == nil || *tv.value == nil {
		return ""
	}
	return strconv.FormatInt(**tv.value, 10)
}

func (tv targetValue) Set(text string) (err error) {
	var pl phaseList
	err = pl.Set(text)
	if err != nil {
		return
	}
	if len(pl) != 1 {
		err = ErrTarget
		return
	}

	target := pl[0]
	*tv.value = &target
	return
}

// Flags registers the command line flags of the Config.
func (cfg *Config) Flags(fs *flag.FlagSet) {
	fs.StringVar(&cfg.Program, "p", "", "Program file to load")
	fs.StringVar(&cfg.Input, "i", "-", "Tape input")
	fs.StringVar(&cfg.Output, "o", "-", "Tape output")
	fs.BoolVar(&cfg.Ascii, "a", false, "ASCII tape mode")
	fs.BoolVar(&cfg.Interactive, "I", false, "Interactive ASCII input")
	fs.IntVar(&cfg.Memory, "m", 0, "Memory words (0 for default)")
	fs.Var((*phaseList)(&cfg.Phases), "phases", "Amplifier phase settings, comma separated")
	fs.BoolVar(&cfg.Feedback, "feedback", false, "Connect amplifiers in a feedback ring")
	fs.BoolVar(&cfg.Concurrent, "concurrent", false, "Run each amplifier in its own goroutine")
	fs.BoolVar(&cfg.Max, "max", false, "Find the phase ordering with the highest signal")
	fs.Var(targetValue{&cfg.Target}, "target", "Find the noun and verb that produce the target")
	fs.StringVar(&cfg.Script, "s", "", "Starlark script to run")
	fs.StringVar(&cfg.Language, "lang", "", "Diagnostic language (default from the locale)")
	fs.BoolVar(&cfg.Verbose, "v", false, "Verbose mode")
}

// _flag_key maps a flag name to the key it overrides in a Config.
var _flag_key = map[string](func(dst, src *Config)){
	"p":          func(dst, src *Config) { dst.Program = src.Program },
	"i":          func(dst, src *Config) { dst.Input = src.Input },
	"o":          func(dst, src *Config) { dst.Output = src.Output },
	"a":          func(dst, src *Config) { dst.Ascii = src.Ascii },
	"I":          func(dst, src *Config) { dst.Interactive = src.Interactive },
	"m":          func(dst, src *Config) { dst.Memory = src.Memory },
	"phases":     func(dst, src *Config) { dst.Phases = src.Phases },
	"feedback":   func(dst, src *Config) { dst.Feedback = src.Feedback },
	"concurrent": func(dst, src *Config) { dst.Concurrent = src.Concurrent },
	"max":        func(dst, src *Config) { dst.Max = src.Max },
	"target":     func(dst, src *Config) { dst.Target = src.Target },
	"s":          func(dst, src *Config) { dst.Script = src.Script },
	"lang":       func(dst, src *Config) { dst.Language = src.Language },
	"v":          func(dst, src *Config) { dst.Verbose = src.Verbose },
}

// LoadConfig reads a TOML configuration file, then applies the flags of
// fs that were set on the command line, taking their values from cli.
func LoadConfig(path string, fs *flag.FlagSet, cli *Config) (cfg *Config, err error) {
	cfg = &Config{
		Input:  "-",
		Output: "-",
	}

	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		cfg = nil
		return
	}

	if undecoded := meta.Undecoded(); len(undecoded) != 0 {
		cfg = nil
		err = ErrConfigKey(undecoded[0].String())
		return
	}

	fs.Visit(func(fl *flag.Flag) {
		if apply, ok := _flag_key[fl.Name]; ok {
			apply(cfg, cli)
		}
	})

	return
}
