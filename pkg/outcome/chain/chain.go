package chain

import (
	"context"

	"github.com/ib-77/outcome/pkg/outcome"
)

// Chain wraps an outcome.Result with context to enable fluent chaining
type Chain[T, F any] struct {
	ctx context.Context
	res outcome.Result[T, F]
}

// Start creates a new chain from an outcome.Result
func Start[T, F any](ctx context.Context, r outcome.Result[T, F]) Chain[T, F] {
	return Chain[T, F]{ctx: ctx, res: r}
}

// FromValue creates a new chain from a successful value
func FromValue[T, F any](ctx context.Context, v T) Chain[T, F] {
	return Start(ctx, outcome.Success[T, F](v))
}

// Result returns the underlying outcome.Result
func (c Chain[T, F]) Result() outcome.Result[T, F] {
	return c.res
}

// Then composes functions that already return outcome.Result[T, F]
func (c Chain[T, F]) Then(onSuccess func(ctx context.Context, t T) outcome.Result[T, F]) Chain[T, F] {
	if c.res.IsFailure() {
		return c
	}
	return Chain[T, F]{ctx: c.ctx, res: onSuccess(c.ctx, c.res.Value())}
}

// Map transforms the successful value to a new value
func (c Chain[T, F]) Map(onSuccess func(ctx context.Context, t T) T) Chain[T, F] {
	if c.res.IsFailure() {
		return c
	}
	return Chain[T, F]{ctx: c.ctx, res: outcome.Success[T, F](onSuccess(c.ctx, c.res.Value()))}
}

// Recover composes a failure handler that may itself fail
func (c Chain[T, F]) Recover(onFailure func(ctx context.Context, f F) outcome.Result[T, F]) Chain[T, F] {
	if c.res.IsSuccess() {
		return c
	}
	return Chain[T, F]{ctx: c.ctx, res: onFailure(c.ctx, c.res.FailureValue())}
}

// Ensure triggers side effects for success/failure without changing the result
func (c Chain[T, F]) Ensure(onSuccess func(context.Context, T), onFailure func(context.Context, F)) Chain[T, F] {
	if c.res.IsFailure() {
		if onFailure != nil {
			onFailure(c.ctx, c.res.FailureValue())
		}
		return c
	}

	if onSuccess != nil {
		onSuccess(c.ctx, c.res.Value())
	}
	return c
}

func (c Chain[T, F]) Or(alternative Chain[T, F]) Chain[T, F] {
	return c.or(alternative)
}

func (c Chain[T, F]) or(chains ...Chain[T, F]) Chain[T, F] {
	candidates := make([]Chain[T, F], 0, len(chains)+1)
	candidates = append(candidates, c)
	candidates = append(candidates, chains...)

	for _, ch := range candidates {
		if ch.res.IsSuccess() {
			return ch
		}
	}

	return c
}

func (c Chain[T, F]) And(required Chain[T, F]) Chain[T, F] {
	return c.and(required)
}

func (c Chain[T, F]) and(chains ...Chain[T, F]) Chain[T, F] {
	candidates := make([]Chain[T, F], 0, len(chains)+1)
	candidates = append(candidates, c)
	candidates = append(candidates, chains...)

	last := c
	for _, ch := range candidates {
		if ch.res.IsFailure() {
			return ch
		}
		last = ch
	}

	return last
}

// Finally collapses the chain to a final value of the carried type
func (c Chain[T, F]) Finally(onSuccess func(context.Context, T) T, onFailure func(context.Context, F) T) T {
	return FinallyTo(c, onSuccess, onFailure)
}

// Switch chains a function that returns outcome.Result[U, F]
func Switch[T, U, F any](c Chain[T, F], onSuccess func(context.Context, T) outcome.Result[U, F]) Chain[U, F] {
	if failure, ok := c.res.GetFailure(); ok {
		return Chain[U, F]{ctx: c.ctx, res: outcome.Failure[U, F](failure)}
	}
	return Chain[U, F]{ctx: c.ctx, res: onSuccess(c.ctx, c.res.Value())}
}

// MapTo chains a pure transformation function T -> U
func MapTo[T, U, F any](c Chain[T, F], onSuccess func(context.Context, T) U) Chain[U, F] {
	return Switch(c, func(ctx context.Context, t T) outcome.Result[U, F] {
		return outcome.Success[U, F](onSuccess(ctx, t))
	})
}

// TryThen composes functions that return (T, error) — like repo calls
func TryThen[T any](c Chain[T, error], try func(ctx context.Context, t T) (T, error)) Chain[T, error] {
	if c.res.IsFailure() {
		return c
	}
	u, err := try(c.ctx, c.res.Value())
	if err != nil {
		return Chain[T, error]{ctx: c.ctx, res: outcome.Failure[T, error](err)}
	}
	return Chain[T, error]{ctx: c.ctx, res: outcome.Success[T, error](u)}
}

// FinallyTo collapses the chain to a final value, delegating to outcome.Fold
func FinallyTo[T, F, R any](c Chain[T, F],
	onSuccess func(context.Context, T) R,
	onFailure func(context.Context, F) R) R {

	return outcome.Fold(c.res,
		func(t T) R { return onSuccess(c.ctx, t) },
		func(f F) R { return onFailure(c.ctx, f) })
}
