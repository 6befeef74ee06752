//go:build futures_release

package future

type diag struct{}

func newDiag(name string, skip int) diag {
	return diag{}
}

func (d *diag) label() string {
	return ""
}

func (d *diag) child(op string) string {
	return op
}

func (d *diag) stampCompletion() {
}

func (d *diag) clearCompletion() {
}

// Release builds skip the double completion check. Completing a finished
// future corrupts its state.
func (c *core) ensureUnfinished(op string) {
}
