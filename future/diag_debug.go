//go:build !futures_release

package future

import (
	"fmt"
	"path"
	"sync/atomic"

	goerrors "github.com/go-errors/errors"
)

// futureID is shared by all schedulers in the process.
var futureID atomic.Uint64

type diag struct {
	name string
	id   uint64

	// Raw frames captured at creation and first completion. Formatting is
	// deferred until a diagnostic is actually reported.
	created   *goerrors.Error
	completed *goerrors.Error
}

func newDiag(name string, skip int) diag {
	return diag{
		name:    name,
		id:      futureID.Add(1),
		created: goerrors.Wrap("created", skip+1),
	}
}

func (d *diag) label() string {
	site := "unknown"
	if frames := d.created.StackFrames(); len(frames) > 0 {
		f := frames[0]
		site = fmt.Sprintf("%s:%d", path.Base(f.File), f.LineNumber)
	}

	if d.name != "" {
		return fmt.Sprintf("%s (%s)", d.name, site)
	}

	return fmt.Sprintf("future#%d (%s)", d.id, site)
}

func (d *diag) child(op string) string {
	if d.name == "" {
		return op
	}

	return d.name + "." + op
}

func (d *diag) stampCompletion() {
	d.completed = goerrors.Wrap("completed", 3)
}

func (d *diag) clearCompletion() {
	d.completed = nil
}

// ensureUnfinished panics when op is attempted on an already finished
// future. It runs before any state is touched, so the first completion stays
// intact when the caller recovers.
func (c *core) ensureUnfinished(op string) {
	if !c.done {
		return
	}

	first := "unknown"
	if c.diag.completed != nil {
		first = string(c.diag.completed.Stack())
	}

	panic(fmt.Sprintf("%s on already finished %s\ncreated at:\n%s\nfirst completed at:\n%s\nsecond completion at:\n%s",
		op, c.diag.label(), string(c.diag.created.Stack()), first, string(goerrors.Wrap(op, 2).Stack())))
}
