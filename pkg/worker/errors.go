package worker

import "errors"

var (
	// ErrUnreachable indicates the worker could not be reached at all.
	ErrUnreachable = errors.New("worker unreachable")

	// ErrWorkerRejected indicates the worker answered with a non-success
	// status. The error text carries the status code, and for schedule
	// submissions the response body as well.
	ErrWorkerRejected = errors.New("worker rejected request")
)
