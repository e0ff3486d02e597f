package cli

import "io"

type WithOut struct{ Out io.Writer }

func (w WithOut) ConfigurePrinter(c *PrinterConfig) {
	c.Out = w.Out
}

type WithErr struct{ Err io.Writer }

func (w WithErr) ConfigurePrinter(c *PrinterConfig) {
	c.Err = w.Err
}
