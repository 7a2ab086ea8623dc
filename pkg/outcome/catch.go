package outcome

import "fmt"

// Try bridges the ordinary (value, error) channel: a non-nil error
// becomes a failure, otherwise the value becomes a success.
func Try[T any](execute func() (T, error)) Result[T, error] {
	v, err := execute()
	if err != nil {
		return Failure[T, error](err)
	}
	return Success[T, error](v)
}

// Catch runs block and converts a panic into a failure carrying the
// recovered value as an error. This is the only place the library
// intercepts panics; panics inside transforms passed to Map, Combine
// and friends propagate to the caller.
func Catch[T any](block func() T) (res Result[T, error]) {
	defer func() {
		if r := recover(); r != nil {
			if err, ok := r.(error); ok {
				res = Failure[T, error](err)
			} else {
				res = Failure[T, error](fmt.Errorf("%v", r))
			}
		}
	}()
	return Success[T, error](block())
}
