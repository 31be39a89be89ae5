// Package translate localises the diagnostics of the intcode tools.
//
// Messages are keyed by their en-US format. The printer's language is
// the best match for the user's locales, falling back to en-US.
package translate

import (
	"io"
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const LANGUAGE_DEFAULT = "en-US" // Language used when no locale is found.

var (
	tag     language.Tag
	printer *message.Printer
)

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("intcode: locale: %v", err)
	}

	SetLanguage(locales...)
}

// SetLanguage selects the printer language best matching the locales,
// in order of preference. With no locales, en-US is used.
func SetLanguage(locales ...string) language.Tag {
	if len(locales) == 0 {
		locales = []string{LANGUAGE_DEFAULT}
	}

	tag = message.MatchLanguage(locales...)
	printer = message.NewPrinter(tag)

	return tag
}

// Language returns the language diagnostics are printed in.
func Language() language.Tag {
	return tag
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}

// Fprintf writes a translated en-US Printf() format to w.
func Fprintf(w io.Writer, key message.Reference, args ...any) (n int, err error) {
	return printer.Fprintf(w, key, args...)
}
