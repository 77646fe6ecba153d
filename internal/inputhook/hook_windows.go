//go:build windows

package inputhook

import (
	"fmt"
	"log"
	"runtime"
	"unsafe"

	"github.com/lxn/win"
	"golang.org/x/sys/windows"
)

const whMouseLL = 14

var (
	user32                  = windows.NewLazySystemDLL("user32.dll")
	procSetWindowsHookExW   = user32.NewProc("SetWindowsHookExW")
	procCallNextHookEx      = user32.NewProc("CallNextHookEx")
	procUnhookWindowsHookEx = user32.NewProc("UnhookWindowsHookEx")
	procPostThreadMessageW  = user32.NewProc("PostThreadMessageW")
)

// run installs the hook, pumps messages until WM_QUIT and unhooks on the same thread.
func (r *Runner) run(ready chan<- startResult, done chan<- struct{}) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	defer close(done)

	// Force the thread message queue into existence so Stop can post to it.
	var msg win.MSG
	win.PeekMessage(&msg, 0, win.WM_USER, win.WM_USER, win.PM_NOREMOVE)

	h, _, callErr := procSetWindowsHookExW.Call(whMouseLL, r.callback(), 0, 0)
	if h == 0 {
		ready <- startResult{err: fmt.Errorf("%w: %v", ErrInstallFailed, callErr)}
		return
	}
	r.hook = h
	threadID := win.GetCurrentThreadId()
	ready <- startResult{threadID: threadID}

	for {
		ret := win.GetMessage(&msg, 0, 0, 0)
		if ret == 0 || ret == -1 {
			break
		}
		win.TranslateMessage(&msg)
		win.DispatchMessage(&msg)
	}

	procUnhookWindowsHookEx.Call(h)
	r.hook = 0
	log.Printf("hook: uninstalled thread=%d", threadID)
}

// callback returns the OS trampoline for hookProc, created once per runner.
func (r *Runner) callback() uintptr {
	r.callbackOnce.Do(func() {
		r.callbackPtr = windows.NewCallback(r.hookProc)
	})
	return r.callbackPtr
}

// hookProc is the WH_MOUSE_LL procedure.
func (r *Runner) hookProc(code, wParam, lParam uintptr) uintptr {
	if r.translate(int32(code), uint32(wParam), viewRawMouseEvent(lParam)) {
		return 1
	}
	ret, _, _ := procCallNextHookEx.Call(r.hook, code, wParam, lParam)
	return ret
}

// viewRawMouseEvent interprets lParam in place. The result must not outlive the hook call.
func viewRawMouseEvent(lParam uintptr) *RawMouseEvent {
	return (*RawMouseEvent)(unsafe.Pointer(lParam)) //nolint:govet
}

// postQuit asks the hook thread's message loop to exit.
func postQuit(threadID uint32) error {
	ok, _, err := procPostThreadMessageW.Call(uintptr(threadID), win.WM_QUIT, 0, 0)
	if ok == 0 {
		return err
	}
	return nil
}
