// Package main builds the pointerhook shared library (go build -buildmode=c-shared).
//
// The exported C entry points drive the process-wide inputhook runner:
//
//	void    remote_set_cursor_pos(int32_t x, int32_t y);
//	void    set_capturing(bool capturing);
//	void    set_callback(pointer_event_handler handler);
//	int32_t start_hook(void);
//	int32_t stop_hook(void);
//	bool    hook_running(void);
//	void    set_ignore_injected(bool ignore);
package main

// main is required by c-shared builds and never runs.
func main() {}
