package extract

// Result is the outcome of one pipeline stage: either a set of rows or a
// coded failure reason. An absent result short-circuits every downstream
// stage; nothing is retried.
type Result[T any] struct {
	rows []T
	err  error
}

// Ok wraps a successful row set. An empty slice is still a present result.
func Ok[T any](rows []T) Result[T] {
	return Result[T]{rows: rows}
}

// Fail wraps a stage failure.
func Fail[T any](err error) Result[T] {
	return Result[T]{err: err}
}

// Rows returns the extracted rows, nil when absent.
func (r Result[T]) Rows() []T {
	if r.err != nil {
		return nil
	}
	return r.rows
}

// Err returns the failure reason, nil when present.
func (r Result[T]) Err() error {
	return r.err
}

// Absent reports whether the stage produced no data.
func (r Result[T]) Absent() bool {
	return r.err != nil
}

// Count returns the number of rows, zero when absent.
func (r Result[T]) Count() int {
	if r.err != nil {
		return 0
	}
	return len(r.rows)
}
