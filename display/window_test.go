package display

import (
	"testing"

	"gocv.io/x/gocv"
)

// handleMouse must satisfy the callback type of Window.SetMouseHandler.
var _ gocv.MouseHandlerFunc = (&Window{}).handleMouse

func TestHandleMouseForwardsLeftClicks(t *testing.T) {
	var got [][2]int
	w := &Window{onClick: func(x, y int) { got = append(got, [2]int{x, y}) }}

	w.handleMouse(0, 1, 1, 0, nil) // move
	w.handleMouse(mouseLeftButtonDown, 50, 60, 0, nil)
	w.handleMouse(2, 5, 5, 0, nil) // right button
	w.handleMouse(4, 7, 7, 0, nil) // left button up

	if len(got) != 1 || got[0] != [2]int{50, 60} {
		t.Errorf("forwarded clicks = %v, want [[50 60]]", got)
	}
}

func TestHandleMouseWithoutHandler(t *testing.T) {
	w := &Window{}
	// Must not panic.
	w.handleMouse(mouseLeftButtonDown, 1, 2, 0, nil)
}
