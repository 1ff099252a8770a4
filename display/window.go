package display

import (
	"gocv.io/x/gocv"
)

// OpenCV's EVENT_LBUTTONDOWN.
const mouseLeftButtonDown = 1

// ClickFunc receives the frame coordinates of a left-button press.
type ClickFunc func(x, y int)

// Window is the on-screen surface showing annotated frames. It forwards left
// clicks to the handler given at creation and polls the keyboard.
type Window struct {
	win     *gocv.Window
	onClick ClickFunc
}

// NewWindow opens a window named name. onClick may be nil.
func NewWindow(name string, onClick ClickFunc) *Window {
	w := &Window{
		win:     gocv.NewWindow(name),
		onClick: onClick,
	}
	w.win.SetMouseHandler(w.handleMouse, nil)
	return w
}

func (w *Window) handleMouse(event int, x, y, flags int, userdata interface{}) {
	if event != mouseLeftButtonDown || w.onClick == nil {
		return
	}
	w.onClick(x, y)
}

// Show presents img.
func (w *Window) Show(img gocv.Mat) {
	w.win.IMShow(img)
}

// PollKey waits up to delay milliseconds for a key press and returns its
// code, or -1 if none arrived. Mouse events are dispatched during the wait.
func (w *Window) PollKey(delay int) int {
	return w.win.WaitKey(delay)
}

// Close destroys the window.
func (w *Window) Close() error {
	return w.win.Close()
}
