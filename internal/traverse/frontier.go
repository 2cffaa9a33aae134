package traverse

// frontier is the working set of a walk. The queue and stack share it so the
// breadth-first and depth-first variants run the same loop.
type frontier[T any] interface {
	push(T)
	pop() T
	len() int
}

// queue is a FIFO frontier.
type queue[T any] struct {
	items []T
	head  int
}

func newQueue[T any]() *queue[T] {
	return &queue[T]{}
}

func (q *queue[T]) push(item T) {
	q.items = append(q.items, item)
}

func (q *queue[T]) pop() T {
	item := q.items[q.head]
	var zero T
	q.items[q.head] = zero
	q.head++

	// Reclaim the consumed prefix once it dominates the slice.
	if q.head > 32 && q.head*2 >= len(q.items) {
		n := copy(q.items, q.items[q.head:])
		clear(q.items[n:])
		q.items = q.items[:n]
		q.head = 0
	}
	return item
}

func (q *queue[T]) len() int {
	return len(q.items) - q.head
}

// stack is a LIFO frontier.
type stack[T any] struct {
	items []T
}

func newStack[T any]() *stack[T] {
	return &stack[T]{}
}

func (s *stack[T]) push(item T) {
	s.items = append(s.items, item)
}

func (s *stack[T]) pop() T {
	last := len(s.items) - 1
	item := s.items[last]
	var zero T
	s.items[last] = zero
	s.items = s.items[:last]
	return item
}

func (s *stack[T]) len() int {
	return len(s.items)
}
