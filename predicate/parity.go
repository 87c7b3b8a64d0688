// Package predicate provides verification predicate implementations. The
// registry depends only on interfaces.VerificationPredicate, so any
// implementation here can be replaced by a real pairing-check or
// circuit-evaluation routine without registry changes.
package predicate

// Parity is the reference placeholder predicate. It stands in for a real
// cryptographic check in development and tests: it rejects proofs whose a
// or c elements contain a zero or whose public-input sequence is empty, and
// otherwise accepts iff the input sum is even.
type Parity struct{}

// Verify implements interfaces.VerificationPredicate. It is pure: same
// components, same answer, no side effects.
func (Parity) Verify(a [2]uint64, b [2][2]uint64, c [2]uint64, inputs []uint64) bool {
	if a[0] == 0 || a[1] == 0 {
		return false
	}
	if c[0] == 0 || c[1] == 0 {
		return false
	}
	if len(inputs) == 0 {
		return false
	}

	var sum uint64
	for _, input := range inputs {
		sum += input
	}
	return sum%2 == 0
}

// Func adapts a plain function to interfaces.VerificationPredicate.
type Func func(a [2]uint64, b [2][2]uint64, c [2]uint64, inputs []uint64) bool

// Verify implements interfaces.VerificationPredicate.
func (f Func) Verify(a [2]uint64, b [2][2]uint64, c [2]uint64, inputs []uint64) bool {
	return f(a, b, c, inputs)
}
