package task

import (
	"log"
	"os"
	"sync"
)

// Printer receives one line of text from a Print step.
type Printer func(text string)

var (
	printerOnce    sync.Once
	defaultPrinter Printer

	stderr = log.New(os.Stderr, "", log.LstdFlags)
)

// SetDefaultPrinter installs the process-wide printer consulted by Print
// steps that were given no explicit one. It must be called before any chain
// runs and takes effect at most once; later calls are ignored and return
// false.
func SetDefaultPrinter(p Printer) bool {
	applied := false
	printerOnce.Do(func() {
		defaultPrinter = p
		applied = true
	})
	return applied
}

// Emit routes text to the first explicit printer, else the process-wide
// default, else standard diagnostic output.
func Emit(text string, printers ...Printer) {
	for _, p := range printers {
		if p != nil {
			p(text)
			return
		}
	}
	if defaultPrinter != nil {
		defaultPrinter(text)
		return
	}
	stderr.Println(text)
}
