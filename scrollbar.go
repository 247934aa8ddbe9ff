package main

const (
	scrollTrackChar = "│"
	scrollThumbChar = "█"
)

// renderScrollbar returns one glyph per viewport line forming a vertical
// scrollbar, or nil when the track fits the viewport. trackHeight is the
// synthetic full-content extent from the engine, offset the current raw
// scroll position.
func renderScrollbar(viewportHeight, trackHeight, offset int) []string {
	vh := viewportHeight
	if vh <= 0 || trackHeight <= vh {
		// No scrollbar needed.
		return nil
	}

	// Thumb height — at least 1 row.
	thumbH := vh * vh / trackHeight
	if thumbH < 1 {
		thumbH = 1
	}

	scrollable := trackHeight - vh
	thumbTop := 0
	if scrollable > 0 {
		thumbTop = (offset * (vh - thumbH)) / scrollable
	}
	if thumbTop+thumbH > vh {
		thumbTop = vh - thumbH
	}
	if thumbTop < 0 {
		thumbTop = 0
	}

	rows := make([]string, vh)
	for i := range rows {
		if i >= thumbTop && i < thumbTop+thumbH {
			rows[i] = scrollThumbStyle.Render(scrollThumbChar)
		} else {
			rows[i] = scrollTrackStyle.Render(scrollTrackChar)
		}
	}
	return rows
}
