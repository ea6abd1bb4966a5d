package nn

// States holds a layer's current state record and a LIFO history of saved
// records. Embed it to implement Layer.Remember, Layer.Recall and Layer.Depth.
//
// S should be a value type whose fields are replaced, not mutated, by
// Forward: Remember stores a copy of the record.
type States[S any] struct {
	current S
	past    []S
}

// Remember pushes a copy of the current state onto the history.
func (s *States[S]) Remember() {
	s.past = append(s.past, s.current)
}

// Recall pops the most recent saved state into the current state.
// With an empty history the current state is reset to the zero value.
func (s *States[S]) Recall() {
	var zero S
	n := len(s.past)
	if n == 0 {
		s.current = zero
		return
	}
	s.current = s.past[n-1]
	s.past[n-1] = zero // release tensors held by the popped slot
	s.past = s.past[:n-1]
}

// Depth returns the number of saved states.
func (s *States[S]) Depth() int {
	return len(s.past)
}

// state returns the current state for in-place update.
func (s *States[S]) state() *S {
	return &s.current
}
