package fixture

// depthTracker counts how many drafts of one creation call are currently
// being built. It is shared by pointer between a scope and every nested scope
// reached through FromRecipe, so the outermost draft is computed relative to
// the whole call. It also counts the extension-wrapped operations in flight.
type depthTracker struct {
	depth      int
	operations int
}

func (d *depthTracker) enter() {
	d.depth++
}

func (d *depthTracker) exit() {
	d.depth--
}

// isOutermost reports whether the draft being built is the root of its call.
func (d *depthTracker) isOutermost() bool {
	return d.depth <= 1
}

func (d *depthTracker) level() int {
	return d.depth
}

// beginOperation records an operation and reports whether it is the first of
// the call.
func (d *depthTracker) beginOperation() bool {
	d.operations++
	return d.operations == 1
}

func (d *depthTracker) endOperation() {
	d.operations--
}
