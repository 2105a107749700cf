package domain

// Many holds an NPRML field that may be absent, appear once, or repeat.
// The parser collapses all three shapes into the same slice.
type Many[T any] []T

func (m Many[T]) Items() []T {
	return m
}

func (m Many[T]) Present() bool {
	return len(m) > 0
}

func (m Many[T]) First() (T, bool) {
	var zero T
	if len(m) == 0 {
		return zero, false
	}
	return m[0], true
}

func (m Many[T]) Last() (T, bool) {
	var zero T
	if len(m) == 0 {
		return zero, false
	}
	return m[len(m)-1], true
}
