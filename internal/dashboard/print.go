package dashboard

import "log"

// Printer is the host's native print/export facility.
type Printer interface {
	Print() error
}

// PrinterFunc adapts a function to Printer.
type PrinterFunc func() error

// Print implements Printer.
func (f PrinterFunc) Print() error { return f() }

// WirePrint makes clicks on the element with buttonID invoke p. It reports
// whether the button was found.
func WirePrint(doc Document, buttonID string, p Printer) bool {
	btn := doc.ElementByID(buttonID)
	if btn == nil || p == nil {
		return false
	}
	btn.OnClick(func() {
		if err := p.Print(); err != nil {
			log.Printf("print: %v", err)
		}
	})
	return true
}
