package finances

import "errors"

var (
	// ErrInvalidFilter is returned when a transaction filter cannot be applied.
	ErrInvalidFilter = errors.New("invalid transaction filter")
	// ErrUnknownAccount is returned when a client has no account with the requested name.
	ErrUnknownAccount = errors.New("unknown account")
	// ErrForeignInvestment is returned when an investment built for a client is added to another one.
	ErrForeignInvestment = errors.New("investment belongs to another client")
	// ErrInvalidAmount is returned when an amount cannot be parsed.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrInvalidRate is returned when a monthly rate cannot be parsed or is negative.
	ErrInvalidRate = errors.New("invalid monthly rate")
)
