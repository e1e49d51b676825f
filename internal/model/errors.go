package model

import "errors"

var (
	// ErrMalformedInput marks missing or inconsistent entity data. No schedule
	// is attempted on top of it.
	ErrMalformedInput = errors.New("malformed scheduling input")

	// ErrInfeasibleModel marks a proven-empty feasible set. Retrying without
	// relaxing constraints cannot succeed, so the caller decides what to relax.
	ErrInfeasibleModel = errors.New("no assignment satisfies the scheduling constraints")

	// ErrSolver marks an opaque solver failure, surfaced verbatim.
	ErrSolver = errors.New("solver failure")
)
