// Package translate localizes the user visible messages of psfdis.
package translate

import (
	"sync"

	"github.com/hashicorp/go-hclog"
	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const DEFAULT_LOCALE = "en-US"

var (
	printer     *message.Printer
	printerOnce sync.Once
)

func initPrinter() {
	locales, err := locale.GetLocales()
	if err != nil {
		hclog.Default().Warn("psfdis: locale", "error", err)
	}

	if len(locales) == 0 {
		locales = []string{DEFAULT_LOCALE}
	}

	printer = message.NewPrinter(message.MatchLanguage(locales...))
}

// Printer returns the message printer for the current user's locale.
func Printer() *message.Printer {
	printerOnce.Do(initPrinter)
	return printer
}

// SetLanguage forces the message printer to a specific language tag.
// It must be called before any goroutine formats messages.
func SetLanguage(tag language.Tag) {
	printerOnce.Do(initPrinter)
	printer = message.NewPrinter(tag)
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return Printer().Sprintf(key, args...)
}
