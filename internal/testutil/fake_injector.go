// Package testutil provides fakes shared by package tests.
package testutil

import (
	"sync"

	"github.com/frudas24/pointerhook/internal/wininput"
)

// Call records a single injected action.
type Call struct {
	Name  string
	X     int
	Y     int
	Delta int
}

// FakeInjector implements wininput.Injector and records calls for tests.
type FakeInjector struct {
	mu    sync.Mutex
	Calls []Call
	Err   error
}

// Ensure FakeInjector implements the interface.
var _ wininput.Injector = (*FakeInjector)(nil)

func (f *FakeInjector) record(c Call) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls = append(f.Calls, c)
	return f.Err
}

// Snapshot returns a copy of the recorded calls.
func (f *FakeInjector) Snapshot() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Call, len(f.Calls))
	copy(out, f.Calls)
	return out
}

// MoveAbs records an absolute move.
func (f *FakeInjector) MoveAbs(x, y int) error {
	return f.record(Call{Name: "MoveAbs", X: x, Y: y})
}

// LeftDown records a left button press.
func (f *FakeInjector) LeftDown() error {
	return f.record(Call{Name: "LeftDown"})
}

// LeftUp records a left button release.
func (f *FakeInjector) LeftUp() error {
	return f.record(Call{Name: "LeftUp"})
}

// RightDown records a right button press.
func (f *FakeInjector) RightDown() error {
	return f.record(Call{Name: "RightDown"})
}

// RightUp records a right button release.
func (f *FakeInjector) RightUp() error {
	return f.record(Call{Name: "RightUp"})
}

// ClickAt records a click at a position.
func (f *FakeInjector) ClickAt(x, y int) error {
	return f.record(Call{Name: "ClickAt", X: x, Y: y})
}

// Wheel records a vertical wheel delta.
func (f *FakeInjector) Wheel(delta int) error {
	return f.record(Call{Name: "Wheel", Delta: delta})
}

// HWheel records a horizontal wheel delta.
func (f *FakeInjector) HWheel(delta int) error {
	return f.record(Call{Name: "HWheel", Delta: delta})
}
