// Package wininput injects mouse input on Windows.
package wininput

import "errors"

// ErrUnsupported indicates WinAPI input injection is not available.
var ErrUnsupported = errors.New("wininput is only supported on Windows")

// Injector defines the mouse operations the bridge can replay on the host.
type Injector interface {
	MoveAbs(x, y int) error
	LeftDown() error
	LeftUp() error
	RightDown() error
	RightUp() error
	ClickAt(x, y int) error
	Wheel(delta int) error
	HWheel(delta int) error
}

// Button names a mouse button in remote commands.
type Button string

const (
	// ButtonLeft is the primary button.
	ButtonLeft Button = "left"
	// ButtonRight is the secondary button.
	ButtonRight Button = "right"
)

// Click presses and releases button at the current cursor position.
func Click(inj Injector, button Button) error {
	down, up := inj.LeftDown, inj.LeftUp
	if button == ButtonRight {
		down, up = inj.RightDown, inj.RightUp
	}
	if err := down(); err != nil {
		return err
	}
	return up()
}
