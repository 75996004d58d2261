package aoc

// Stack is a LIFO stack. The zero value is empty and ready to use.
type Stack[T any] struct {
	s []T
}

func (s *Stack[T]) Push(v ...T) {
	s.s = append(s.s, v...)
}

func (s *Stack[T]) Pop() (T, bool) {
	if len(s.s) == 0 {
		var zero T
		return zero, false
	}
	v := s.s[len(s.s)-1]
	s.s = s.s[:len(s.s)-1]
	return v, true
}

// PopN removes the top n elements and returns them in bottom-to-top
// order. It reports false, leaving s untouched, if s holds fewer than n.
func (s *Stack[T]) PopN(n int) ([]T, bool) {
	if n < 0 || n > len(s.s) {
		return nil, false
	}
	i := len(s.s) - n
	out := make([]T, n)
	copy(out, s.s[i:])
	s.s = s.s[:i]
	return out, true
}

func (s *Stack[T]) While(f func(T) bool) {
	for {
		v, ok := s.Pop()
		if !ok {
			return
		}
		if !f(v) {
			return
		}
	}
}

func (s *Stack[T]) Peek() (T, bool) {
	if len(s.s) == 0 {
		var zero T
		return zero, false
	}
	return s.s[len(s.s)-1], true
}

func (s *Stack[T]) Len() int {
	return len(s.s)
}

// Slice returns the elements bottom to top. The caller must not modify it.
func (s *Stack[T]) Slice() []T {
	return s.s
}

func NewQueue[T any](in ...T) Queue[T] {
	return Queue[T]{
		q: in,
	}
}

// Queue is a FIFO queue.
type Queue[T any] struct {
	q []T
}

func (q *Queue[T]) Len() int {
	return len(q.q)
}

func (q *Queue[T]) Push(v T) {
	q.q = append(q.q, v)
}

func (q *Queue[T]) Pop() (T, bool) {
	if len(q.q) == 0 {
		var zero T
		return zero, false
	}
	v := q.q[0]
	q.q = q.q[1:]
	return v, true
}

// Peek returns the next element without removing it.
func (q *Queue[T]) Peek() (T, bool) {
	if len(q.q) == 0 {
		var zero T
		return zero, false
	}
	return q.q[0], true
}

func (q *Queue[T]) While(f func(T) bool) {
	for {
		v, ok := q.Pop()
		if !ok {
			return
		}
		if !f(v) {
			return
		}
	}
}
