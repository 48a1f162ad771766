package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("Given Param is not valid")

	// ErrUpstreamUnreachable wraps network level failures against the plans backend
	ErrUpstreamUnreachable = errors.New("plans backend unreachable")
	// ErrUpstreamRejected means the backend answered but reported success:false;
	// the backend supplied message should be surfaced verbatim next to it
	ErrUpstreamRejected = errors.New("plans backend rejected the request")
	// ErrPaymentUnavailable means the payment provider key or sdk could not be obtained
	ErrPaymentUnavailable = errors.New("payment service unavailable")
	// ErrPaymentFailed means the card widget reported a failure; nothing was charged
	ErrPaymentFailed = errors.New("payment failed")

	ErrInvalidStateTransition = errors.New("invalid purchase state transition")
	ErrAttemptNotFound        = errors.New("purchase attempt not found")
	ErrInvalidNumberFormat    = errors.New("invalid number format")
)
