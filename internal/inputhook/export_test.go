package inputhook

// Translate exposes the hook decision to external tests.
func (r *Runner) Translate(code int32, msg uint32, ev *RawMouseEvent) bool {
	return r.translate(code, msg, ev)
}
