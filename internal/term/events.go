package term

import "github.com/gdamore/tcell/v2"

// PollEvents forwards screen events to out until the screen is finalized,
// at which point PollEvent returns nil and the loop ends.
func PollEvents(screen tcell.Screen, out chan<- tcell.Event) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		out <- ev
	}
}
