package outcome

// Map transforms the success value; a failure passes through with its
// payload untouched.
func Map[T, F, R any](input Result[T, F], transform func(T) R) Result[R, F] {
	if input.isSuccess {
		return Success[R, F](transform(input.value))
	}
	return Failure[R, F](input.failure)
}

// MapFailure transforms the failure value; a success passes through.
func MapFailure[T, F, R any](input Result[T, F], transform func(F) R) Result[T, R] {
	if input.isSuccess {
		return Success[T, R](input.value)
	}
	return Failure[T, R](transform(input.failure))
}

// FlatMap switches to the result produced by transform; a failure passes
// through with its payload untouched.
func FlatMap[T, F, R any](input Result[T, F], transform func(T) Result[R, F]) Result[R, F] {
	if input.isSuccess {
		return transform(input.value)
	}
	return Failure[R, F](input.failure)
}

// FlatMapFailure switches the failure channel to the result produced by
// transform; a success passes through.
func FlatMapFailure[T, F, R any](input Result[T, F], transform func(F) Result[T, R]) Result[T, R] {
	if input.isSuccess {
		return Success[T, R](input.value)
	}
	return transform(input.failure)
}

// Fold collapses a result to a single value via the matching handler.
func Fold[T, F, R any](input Result[T, F], onSuccess func(T) R, onFailure func(F) R) R {
	if input.isSuccess {
		return onSuccess(input.value)
	}
	return onFailure(input.failure)
}
