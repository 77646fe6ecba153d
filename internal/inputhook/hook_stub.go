//go:build !windows

package inputhook

// run reports that no hook can be installed.
func (r *Runner) run(ready chan<- startResult, done chan<- struct{}) {
	defer close(done)
	ready <- startResult{err: ErrUnsupported}
}

func postQuit(threadID uint32) error {
	_ = threadID
	return ErrUnsupported
}
