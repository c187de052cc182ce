package tuple

// Swap returns the tuple with its two values exchanged.
func (t T2[A, B]) Swap() T2[B, A] {
	return T2[B, A]{t.B, t.A}
}
