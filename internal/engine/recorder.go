package engine

// Recorder captures a bounded, ordered trace of algorithm snapshots for
// step-by-step visualization. It is injected into solvers so the
// algorithms stay pure: a nil *Recorder disables tracing entirely.
//
// The bound caps memory, not correctness. Once limit snapshots are held
// the recorder silently drops further ones; the solver keeps running to
// its true termination condition.
type Recorder[T any] struct {
	limit  int
	states []T
}

// NewRecorder returns a recorder holding at most limit snapshots.
// A limit < 1 yields a recorder that keeps nothing.
func NewRecorder[T any](limit int) *Recorder[T] {
	if limit < 0 {
		limit = 0
	}
	return &Recorder[T]{limit: limit}
}

// Record appends a snapshot unless the recorder is nil or full.
func (r *Recorder[T]) Record(state T) {
	if r == nil || len(r.states) >= r.limit {
		return
	}
	r.states = append(r.states, state)
}

// Full reports whether the cap has been reached.
func (r *Recorder[T]) Full() bool {
	return r != nil && len(r.states) >= r.limit
}

// States returns the recorded snapshots in emission order.
func (r *Recorder[T]) States() []T {
	if r == nil {
		return nil
	}
	return r.states
}
