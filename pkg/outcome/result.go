package outcome

// Result holds either a success value of type T or a failure value of
// type F, never both. The zero Result is a failure carrying F's zero
// value. Results are comparable with == whenever T and F are comparable.
type Result[T, F any] struct {
	value     T
	failure   F
	isSuccess bool
}

func Success[T, F any](value T) Result[T, F] {
	return Result[T, F]{
		value:     value,
		isSuccess: true,
	}
}

func Failure[T, F any](failure F) Result[T, F] {
	return Result[T, F]{
		failure:   failure,
		isSuccess: false,
	}
}

func (r Result[T, F]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T, F]) IsFailure() bool {
	return !r.isSuccess
}

// Value returns the success value, or T's zero value on failure.
func (r Result[T, F]) Value() T {
	return r.value
}

// FailureValue returns the failure value, or F's zero value on success.
func (r Result[T, F]) FailureValue() F {
	return r.failure
}

func (r Result[T, F]) Get() (T, bool) {
	return r.value, r.isSuccess
}

func (r Result[T, F]) GetFailure() (F, bool) {
	return r.failure, !r.isSuccess
}

// OnSuccess runs action with the success value and returns r unchanged.
func (r Result[T, F]) OnSuccess(action func(T)) Result[T, F] {
	if r.isSuccess {
		action(r.value)
	}
	return r
}

// OnFailure runs action with the failure value and returns r unchanged.
func (r Result[T, F]) OnFailure(action func(F)) Result[T, F] {
	if !r.isSuccess {
		action(r.failure)
	}
	return r
}

// Recover turns a failure into a success via transform; a success passes
// through untouched.
func (r Result[T, F]) Recover(transform func(F) T) Result[T, F] {
	if r.isSuccess {
		return r
	}
	return Success[T, F](transform(r.failure))
}

// FlatRecover lets the recovery itself fail: on failure the returned
// result is whatever transform produced.
func (r Result[T, F]) FlatRecover(transform func(F) Result[T, F]) Result[T, F] {
	if r.isSuccess {
		return r
	}
	return transform(r.failure)
}
