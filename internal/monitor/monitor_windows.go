//go:build windows

package monitor

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/lxn/win"
	"golang.org/x/sys/windows"
)

var (
	user32                  = windows.NewLazySystemDLL("user32.dll")
	procEnumDisplayMonitors = user32.NewProc("EnumDisplayMonitors")

	// Callback slots are never freed, so one trampoline serves every enumeration.
	enumMu       sync.Mutex
	enumCurrent  *enumState
	enumCallback = windows.NewCallback(enumProc)
)

// ListMonitors returns the list of available displays using WinAPI.
func ListMonitors() ([]Monitor, error) {
	enumMu.Lock()
	defer enumMu.Unlock()
	state := &enumState{}
	enumCurrent = state
	defer func() { enumCurrent = nil }()

	ok, _, err := procEnumDisplayMonitors.Call(0, 0, enumCallback, 0)
	if ok == 0 {
		return nil, fmt.Errorf("EnumDisplayMonitors failed: %w", err)
	}
	if len(state.list) == 0 {
		return nil, fmt.Errorf("no monitors detected")
	}
	return state.list, nil
}

type enumState struct {
	list  []Monitor
	index int
}

func enumProc(hMonitor, hdc, rect, lparam uintptr) uintptr {
	s := enumCurrent
	if s == nil {
		return 0
	}
	var info win.MONITORINFO
	info.CbSize = uint32(unsafe.Sizeof(info))
	if !win.GetMonitorInfo(win.HMONITOR(hMonitor), &info) {
		return 1
	}

	s.index++
	s.list = append(s.list, Monitor{
		Index:   s.index,
		X:       int(info.RcMonitor.Left),
		Y:       int(info.RcMonitor.Top),
		W:       int(info.RcMonitor.Right - info.RcMonitor.Left),
		H:       int(info.RcMonitor.Bottom - info.RcMonitor.Top),
		Work:    rectFromWin(info.RcWork),
		Primary: info.DwFlags&win.MONITORINFOF_PRIMARY != 0,
	})
	return 1
}

func rectFromWin(r win.RECT) Rect {
	return Rect{X: int(r.Left), Y: int(r.Top), W: int(r.Right - r.Left), H: int(r.Bottom - r.Top)}
}
