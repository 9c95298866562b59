// Package outcome models the result of a call to an external collaborator.
//
// A collaborator call either succeeds (Ok), fails in a way the caller absorbs
// by substituting a default (Degraded), or fails in a way that must reach the
// caller (Fatal). Only Fatal outcomes are turned back into Go errors.
package outcome

import "fmt"

type Kind int

const (
	KindOk Kind = iota
	KindDegraded
	KindFatal
)

func (k Kind) String() string {
	switch k {
	case KindOk:
		return "ok"
	case KindDegraded:
		return "degraded"
	case KindFatal:
		return "fatal"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

type Outcome[T any] struct {
	kind  Kind
	value T
	cause error
}

func Ok[T any](value T) Outcome[T] {
	return Outcome[T]{kind: KindOk, value: value}
}

// Degraded carries the substituted default and, optionally, what caused the
// substitution. A nil cause means "nothing there" rather than "it broke".
func Degraded[T any](fallback T, cause error) Outcome[T] {
	return Outcome[T]{kind: KindDegraded, value: fallback, cause: cause}
}

func Fatal[T any](err error) Outcome[T] {
	return Outcome[T]{kind: KindFatal, cause: err}
}

func (o Outcome[T]) Kind() Kind { return o.kind }

func (o Outcome[T]) IsOk() bool { return o.kind == KindOk }

func (o Outcome[T]) IsDegraded() bool { return o.kind == KindDegraded }

func (o Outcome[T]) IsFatal() bool { return o.kind == KindFatal }

// Cause returns the underlying error for Degraded and Fatal outcomes.
func (o Outcome[T]) Cause() error { return o.cause }

// Value returns the carried value; for Fatal outcomes it is the zero value.
func (o Outcome[T]) Value() T { return o.value }

// Unwrap converts the outcome back into Go's (value, error) convention.
// Degraded outcomes are absorbed: the default is returned with a nil error.
func (o Outcome[T]) Unwrap() (T, error) {
	if o.kind == KindFatal {
		var zero T
		return zero, o.cause
	}
	return o.value, nil
}

// Absorb converts a (value, error) pair into an outcome that never turns
// Fatal: errors become Degraded(fallback, err).
func Absorb[T any](value T, err error, fallback T) Outcome[T] {
	if err != nil {
		return Degraded(fallback, err)
	}
	return Ok(value)
}
