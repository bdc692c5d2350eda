package mailer

import "errors"

var (
	// ErrInvalidAddress indicates a sender or recipient address failed to
	// parse; the message is never handed to the transport in that case.
	ErrInvalidAddress = errors.New("invalid mail address")

	// ErrAssembleFailed indicates the multipart tree could not be written.
	ErrAssembleFailed = errors.New("failed to assemble message")

	// ErrDelivery indicates the SMTP relay rejected the message or was
	// unreachable. Deliveries are never retried automatically.
	ErrDelivery = errors.New("smtp delivery failed")
)
