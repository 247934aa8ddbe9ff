// Package clipboard copies text to the system clipboard, falling back to
// an OSC52 escape sequence when no native clipboard is reachable (ssh,
// headless hosts).
package clipboard

import (
	"github.com/andareed/siftly-grid/logging"
	"github.com/atotto/clipboard"
)

// Copy puts text on the system clipboard via the native mechanism, and
// falls back to OSC52 when that fails.
func Copy(text string) error {
	if err := clipboard.WriteAll(text); err == nil {
		logging.Infof("Clipboard: copied via system clipboard")
		return nil
	}
	return copyOSC52(text)
}
