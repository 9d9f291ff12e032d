// Package result implements a two-armed result value used to carry
// failures across architectural layer boundaries. Operations in the
// domain and data layers that can fail return a Result instead of a
// bare error; presentation code handles both arms explicitly.
package result

// Result holds either a success value or a Failure, never both.
type Result[T any] struct {
	value   T
	failure Failure
	ok      bool
}

// Ok creates a successful Result carrying the given value.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value, ok: true}
}

// Err creates a failed Result carrying the given failure.
func Err[T any](failure Failure) Result[T] {
	return Result[T]{failure: failure}
}

// From builds a Result from a (value, error) pair, translating a
// non-nil error into a Failure. It is meant for data-layer boundary
// code wrapping calls that still speak plain errors.
func From[T any](value T, err error) Result[T] {
	if err != nil {
		return Err[T](Translate(err))
	}
	return Ok(value)
}

// IsOk reports whether the result holds a success value.
func (r Result[T]) IsOk() bool {
	return r.ok
}

// IsErr reports whether the result holds a failure.
func (r Result[T]) IsErr() bool {
	return !r.ok
}

// Value returns the success value and whether it is present.
func (r Result[T]) Value() (T, bool) {
	return r.value, r.ok
}

// Failure returns the failure arm. It is the zero Failure when the
// result is successful.
func (r Result[T]) Failure() Failure {
	return r.failure
}

// ValueOr returns the success value, or fallback when the result failed.
func (r Result[T]) ValueOr(fallback T) T {
	if r.ok {
		return r.value
	}
	return fallback
}

// MustValue returns the success value and panics on a failed result.
// Reserved for code paths where a failure is a programming error.
func (r Result[T]) MustValue() T {
	if !r.ok {
		panic("result: MustValue on failed result: " + r.failure.Error())
	}
	return r.value
}

// Match invokes exactly one of the two handlers. Both must be provided,
// which makes unhandled arms a compile-visible defect at call sites.
func (r Result[T]) Match(onOK func(T), onErr func(Failure)) {
	if r.ok {
		onOK(r.value)
		return
	}
	onErr(r.failure)
}

// Map transforms the success value of a result, passing failures through.
func Map[T, U any](r Result[T], fn func(T) U) Result[U] {
	if r.IsErr() {
		return Err[U](r.Failure())
	}
	v, _ := r.Value()
	return Ok(fn(v))
}

// FlatMap chains a result-producing transformation, passing failures through.
func FlatMap[T, U any](r Result[T], fn func(T) Result[U]) Result[U] {
	if r.IsErr() {
		return Err[U](r.Failure())
	}
	v, _ := r.Value()
	return fn(v)
}

// Fold collapses both arms into a single value of the same type.
func Fold[T, U any](r Result[T], onOK func(T) U, onErr func(Failure) U) U {
	if r.IsOk() {
		v, _ := r.Value()
		return onOK(v)
	}
	return onErr(r.Failure())
}
