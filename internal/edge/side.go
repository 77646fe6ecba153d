// Package edge switches pointer capture on and off at a desktop edge.
package edge

import (
	"fmt"
	"strings"
)

// Side names the virtual-desktop edge that hands the pointer to the remote device.
type Side string

const (
	// SideNone disables automatic capture; only explicit Capture calls enter capture mode.
	SideNone Side = "none"
	// SideLeft triggers capture at the left edge.
	SideLeft Side = "left"
	// SideRight triggers capture at the right edge.
	SideRight Side = "right"
	// SideTop triggers capture at the top edge.
	SideTop Side = "top"
	// SideBottom triggers capture at the bottom edge.
	SideBottom Side = "bottom"
)

// ParseSide validates a side name.
func ParseSide(value string) (Side, error) {
	switch Side(strings.ToLower(strings.TrimSpace(value))) {
	case "", SideNone:
		return SideNone, nil
	case SideLeft:
		return SideLeft, nil
	case SideRight:
		return SideRight, nil
	case SideTop:
		return SideTop, nil
	case SideBottom:
		return SideBottom, nil
	default:
		return "", fmt.Errorf("unknown edge side %q", value)
	}
}
