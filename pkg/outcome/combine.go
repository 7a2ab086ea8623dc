package outcome

// The fixed-arity Combine/FlatCombine forms erase their inputs to
// Result[any, F], run the shared first-failure scan, and restore the
// static types positionally when calling transform. Keeping the scan in
// one place keeps the short-circuit order identical across arities.

func erase[T, F any](r Result[T, F]) Result[any, F] {
	if r.isSuccess {
		return Success[any, F](r.value)
	}
	return Failure[any, F](r.failure)
}

// combineErased scans results in argument order and returns the first
// failure; transform runs only when every input succeeded.
func combineErased[F, R any](results []Result[any, F], transform func(values []any) Result[R, F]) Result[R, F] {
	values := make([]any, 0, len(results))
	for _, r := range results {
		if !r.isSuccess {
			return Failure[R, F](r.failure)
		}
		values = append(values, r.value)
	}
	return transform(values)
}

func Combine2[T1, T2, F, R any](r1 Result[T1, F], r2 Result[T2, F],
	transform func(T1, T2) R) Result[R, F] {
	return FlatCombine2(r1, r2, func(v1 T1, v2 T2) Result[R, F] {
		return Success[R, F](transform(v1, v2))
	})
}

func Combine3[T1, T2, T3, F, R any](r1 Result[T1, F], r2 Result[T2, F], r3 Result[T3, F],
	transform func(T1, T2, T3) R) Result[R, F] {
	return FlatCombine3(r1, r2, r3, func(v1 T1, v2 T2, v3 T3) Result[R, F] {
		return Success[R, F](transform(v1, v2, v3))
	})
}

func Combine4[T1, T2, T3, T4, F, R any](r1 Result[T1, F], r2 Result[T2, F], r3 Result[T3, F],
	r4 Result[T4, F], transform func(T1, T2, T3, T4) R) Result[R, F] {
	return FlatCombine4(r1, r2, r3, r4, func(v1 T1, v2 T2, v3 T3, v4 T4) Result[R, F] {
		return Success[R, F](transform(v1, v2, v3, v4))
	})
}

func Combine5[T1, T2, T3, T4, T5, F, R any](r1 Result[T1, F], r2 Result[T2, F], r3 Result[T3, F],
	r4 Result[T4, F], r5 Result[T5, F], transform func(T1, T2, T3, T4, T5) R) Result[R, F] {
	return FlatCombine5(r1, r2, r3, r4, r5, func(v1 T1, v2 T2, v3 T3, v4 T4, v5 T5) Result[R, F] {
		return Success[R, F](transform(v1, v2, v3, v4, v5))
	})
}

func FlatCombine2[T1, T2, F, R any](r1 Result[T1, F], r2 Result[T2, F],
	transform func(T1, T2) Result[R, F]) Result[R, F] {
	return combineErased([]Result[any, F]{erase(r1), erase(r2)},
		func(values []any) Result[R, F] {
			return transform(values[0].(T1), values[1].(T2))
		})
}

func FlatCombine3[T1, T2, T3, F, R any](r1 Result[T1, F], r2 Result[T2, F], r3 Result[T3, F],
	transform func(T1, T2, T3) Result[R, F]) Result[R, F] {
	return combineErased([]Result[any, F]{erase(r1), erase(r2), erase(r3)},
		func(values []any) Result[R, F] {
			return transform(values[0].(T1), values[1].(T2), values[2].(T3))
		})
}

func FlatCombine4[T1, T2, T3, T4, F, R any](r1 Result[T1, F], r2 Result[T2, F], r3 Result[T3, F],
	r4 Result[T4, F], transform func(T1, T2, T3, T4) Result[R, F]) Result[R, F] {
	return combineErased([]Result[any, F]{erase(r1), erase(r2), erase(r3), erase(r4)},
		func(values []any) Result[R, F] {
			return transform(values[0].(T1), values[1].(T2), values[2].(T3), values[3].(T4))
		})
}

func FlatCombine5[T1, T2, T3, T4, T5, F, R any](r1 Result[T1, F], r2 Result[T2, F], r3 Result[T3, F],
	r4 Result[T4, F], r5 Result[T5, F], transform func(T1, T2, T3, T4, T5) Result[R, F]) Result[R, F] {
	return combineErased([]Result[any, F]{erase(r1), erase(r2), erase(r3), erase(r4), erase(r5)},
		func(values []any) Result[R, F] {
			return transform(values[0].(T1), values[1].(T2), values[2].(T3), values[3].(T4), values[4].(T5))
		})
}

// CombineAll folds any number of same-typed results into one; the first
// failure in slice order wins, otherwise transform receives the success
// values in order.
func CombineAll[T, F, R any](results []Result[T, F], transform func([]T) R) Result[R, F] {
	return FlatCombineAll(results, func(values []T) Result[R, F] {
		return Success[R, F](transform(values))
	})
}

// FlatCombineAll is CombineAll with a transform that may itself fail.
func FlatCombineAll[T, F, R any](results []Result[T, F], transform func([]T) Result[R, F]) Result[R, F] {
	erased := make([]Result[any, F], len(results))
	for i, r := range results {
		erased[i] = erase(r)
	}
	return combineErased(erased, func(values []any) Result[R, F] {
		restored := make([]T, len(values))
		for i, v := range values {
			restored[i] = v.(T)
		}
		return transform(restored)
	})
}
