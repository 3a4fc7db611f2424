package flappy

// watch remembers the last sample of a value and reports changes once per
// frame, the way a reactive "(current, previous)" callback would.
type watch[T comparable] struct {
	prev   T
	primed bool
}

// Observe records cur as the latest sample. It returns the previous sample
// and whether there was one that differs from cur.
func (w *watch[T]) Observe(cur T) (prev T, changed bool) {
	prev, primed := w.prev, w.primed
	w.prev, w.primed = cur, true
	return prev, primed && prev != cur
}

// Reset forgets the previous sample.
func (w *watch[T]) Reset() {
	var zero T
	w.prev, w.primed = zero, false
}
