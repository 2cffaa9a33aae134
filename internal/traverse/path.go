package traverse

// Path is an ordered walk through a graph, start and end vertices included.
// A Path is never modified after it is built; Extend always returns a new one.
type Path[V comparable] []V

// Extend returns a new path made of p followed by v. The result never shares
// its backing array with p, so two branches extended from the same prefix
// cannot observe each other.
func (p Path[V]) Extend(v V) Path[V] {
	out := make(Path[V], len(p)+1)
	copy(out, p)
	out[len(p)] = v
	return out
}

// Hops returns the number of edges in the path.
func (p Path[V]) Hops() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// Last returns the final vertex of the path.
func (p Path[V]) Last() (V, bool) {
	if len(p) == 0 {
		var zero V
		return zero, false
	}
	return p[len(p)-1], true
}
