// Package translate renders user visible messages in the locale of the host.
package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

const DEFAULT_LOCALE = "en-US"

var printer = newPrinter(hostLocales())

// hostLocales returns the preferred locales of the host, most preferred first.
func hostLocales() (locales []string) {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("assembunny: locale: %v", err)
	}

	return
}

// newPrinter selects the best supported language among locales.
func newPrinter(locales []string) *message.Printer {
	if len(locales) == 0 {
		locales = []string{DEFAULT_LOCALE}
	}

	return message.NewPrinter(message.MatchLanguage(locales...))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
