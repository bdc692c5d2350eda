// Package worker is the HTTP client for the remote tracking and scheduling
// worker, plus the client-side aggregation of its open-tracking logs.
//
// Every endpoint authenticates with a shared secret passed as a query
// parameter. Non-success statuses surface as ErrWorkerRejected with the
// status code; nothing is retried here.
package worker
