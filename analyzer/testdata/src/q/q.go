// nolint
package q

import (
	"time"
)

type worker struct{}

func (w *worker) OnComplete(fn func()) {}

func qSleeps(w *worker) {
	w.OnComplete(func() {
		time.Sleep(10 * time.Millisecond) // want "use Delay instead of `time.Sleep` in continuations"
	})
}
