package service

import "errors"

var (
	// ErrInvalidInput marks requests rejected before touching any upstream.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUpstreamUnavailable marks failures reading the calendar, task, or
	// mail provider. Conflict checks fail closed on it: no availability
	// claim is made without calendar data.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)
