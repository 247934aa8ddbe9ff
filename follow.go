package main

import (
	"encoding/csv"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-grid/logging"
)

// followRows streams CSV records from cr into the program until EOF. Each
// record lands in the event loop as a rowAppendedMsg, which is what ends
// up firing the engine's row-added trigger.
func followRows(p *tea.Program, cr *csv.Reader) {
	for {
		record, err := cr.Read()
		if err == io.EOF {
			p.Send(followEndedMsg{})
			return
		}
		if err != nil {
			logging.Warnf("follow: %v", err)
			p.Send(followEndedMsg{err: err})
			return
		}
		p.Send(rowAppendedMsg{cols: record})
	}
}
