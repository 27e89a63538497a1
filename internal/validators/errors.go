package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrUnknownCategory   = errors.New("unknown category")
	ErrAmountNotPositive = errors.New("amount must be positive")
	ErrAmountNotWhole    = errors.New("amount must be a whole number")
	ErrAmountOutOfRange  = errors.New("amount does not fit the ledger range")
)
