package task

import (
	"runtime"
	"sync/atomic"
)

// unobservedHandler, when installed, is told about failed tasks whose error
// was never awaited. Purely advisory; detection rides on the garbage
// collector, so it is best effort and off unless a handler is registered.
var unobservedHandler atomic.Pointer[func(error)]

// SetUnobservedHandler registers a process-wide callback for task failures no
// caller ever observed. Pass nil to disable again.
func SetUnobservedHandler(fn func(error)) {
	if fn == nil {
		unobservedHandler.Store(nil)
		return
	}
	unobservedHandler.Store(&fn)
}

func watchUnobserved[T any](t *Task[T], err error) {
	if unobservedHandler.Load() == nil {
		return
	}
	runtime.SetFinalizer(t, func(t *Task[T]) {
		h := unobservedHandler.Load()
		if h == nil || t.observed.Load() {
			return
		}
		(*h)(err)
	})
}
