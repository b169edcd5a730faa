// Package translate formats user-visible messages for the current locale.
package translate

import (
	"log"
	"sync"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

var (
	printer     *message.Printer
	printerOnce sync.Once
)

// Locales returns the user locales, falling back to en-US.
func Locales() []string {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("regext: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	return locales
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	printerOnce.Do(func() {
		printer = message.NewPrinter(message.MatchLanguage(Locales()...))
	})

	return printer.Sprintf(key, args...)
}
