package main

/*
#include "pointerhook.h"
*/
import "C"

import (
	"context"

	"github.com/frudas24/pointerhook/internal/inputhook"
)

//export remote_set_cursor_pos
func remote_set_cursor_pos(x, y C.int32_t) {
	inputhook.SetCursorPos(int32(x), int32(y))
}

//export set_capturing
func set_capturing(capturing C.bool) {
	inputhook.Default().SetCapturing(bool(capturing))
}

//export set_callback
func set_callback(handler C.pointer_event_handler) {
	inputhook.Default().SetHandler(wrapHandler(handler))
}

//export start_hook
func start_hook() C.int32_t {
	return C.int32_t(statusOf(inputhook.Default().Start()))
}

//export stop_hook
func stop_hook() C.int32_t {
	ctx, cancel := context.WithTimeout(context.Background(), stopTimeout)
	defer cancel()
	return C.int32_t(statusOf(inputhook.Default().Stop(ctx)))
}

//export hook_running
func hook_running() C.bool {
	return C.bool(inputhook.Default().Running())
}

//export set_ignore_injected
func set_ignore_injected(ignore C.bool) {
	inputhook.Default().SetIgnoreInjected(bool(ignore))
}
