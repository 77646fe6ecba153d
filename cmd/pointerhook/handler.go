package main

/*
#include "pointerhook.h"

static inline void invoke_pointer_event_handler(pointer_event_handler h, int32_t kind, int32_t x, int32_t y) {
	h(kind, x, y);
}
*/
import "C"

import "github.com/frudas24/pointerhook/internal/inputhook"

// wrapHandler adapts a C function pointer to an inputhook.Handler.
func wrapHandler(h C.pointer_event_handler) inputhook.Handler {
	if h == nil {
		return nil
	}
	return func(kind inputhook.EventKind, x, y int32) {
		C.invoke_pointer_event_handler(h, C.int32_t(kind), C.int32_t(x), C.int32_t(y))
	}
}
