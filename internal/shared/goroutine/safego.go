// Package goroutine launches background work that must not take the
// process down with it.
package goroutine

import (
	"runtime/debug"

	"github.com/eventora/eventora/internal/shared/logger"
)

// SafeGo runs fn on its own goroutine and logs a panic, tagged with task,
// instead of crashing.
func SafeGo(log logger.Interface, task string, fn func()) {
	go func() {
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			log.Errorw("background task panicked",
				"task", task,
				"panic", r,
				"stack", string(debug.Stack()),
			)
		}()
		fn()
	}()
}
