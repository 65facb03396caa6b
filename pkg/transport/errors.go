package transport

import "errors"

var (
	// ErrDeliveryFailed indicates a message was not accepted by the
	// channel. Row-scoped: the pipeline logs it and leaves the row
	// unmarked for the next run.
	ErrDeliveryFailed = errors.New("failed to deliver mail")

	// ErrInvalidServerURL indicates a malformed SMTP endpoint URL.
	// Configuration-scoped: reported before any row is processed.
	ErrInvalidServerURL = errors.New("invalid smtp server url")
)
