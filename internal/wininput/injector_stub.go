//go:build !windows

package wininput

// NoopInjector is a placeholder injector for non-Windows builds.
type NoopInjector struct{}

// NewInjector returns a non-functional injector on non-Windows platforms.
func NewInjector() (Injector, error) {
	return &NoopInjector{}, ErrUnsupported
}

// MoveAbs returns ErrUnsupported.
func (n *NoopInjector) MoveAbs(x, y int) error {
	return ErrUnsupported
}

// LeftDown returns ErrUnsupported.
func (n *NoopInjector) LeftDown() error {
	return ErrUnsupported
}

// LeftUp returns ErrUnsupported.
func (n *NoopInjector) LeftUp() error {
	return ErrUnsupported
}

// RightDown returns ErrUnsupported.
func (n *NoopInjector) RightDown() error {
	return ErrUnsupported
}

// RightUp returns ErrUnsupported.
func (n *NoopInjector) RightUp() error {
	return ErrUnsupported
}

// ClickAt returns ErrUnsupported.
func (n *NoopInjector) ClickAt(x, y int) error {
	return ErrUnsupported
}

// Wheel returns ErrUnsupported.
func (n *NoopInjector) Wheel(delta int) error {
	return ErrUnsupported
}

// HWheel returns ErrUnsupported.
func (n *NoopInjector) HWheel(delta int) error {
	return ErrUnsupported
}
