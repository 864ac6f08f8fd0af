package domain

import "errors"

var (
	ErrAccountNotFound           = errors.New("account not found")
	ErrInsufficientBalance       = errors.New("insufficient balance")
	ErrSelfTransferNotAllowed    = errors.New("self transfer not allowed")
	ErrSelfExchangeNotAllowed    = errors.New("self exchange not allowed")
	ErrListingNotFound           = errors.New("listing not found")
	ErrListingUnavailable        = errors.New("listing unavailable")
	ErrInvalidAmount             = errors.New("invalid amount")
	ErrMissingDescription        = errors.New("missing description")
	ErrIntentNotFound            = errors.New("payment intent not found")
	ErrAmountMismatch            = errors.New("reported amount does not match expected amount")
	ErrVerificationNotApplicable = errors.New("verification not applicable")
	ErrUnauthorized              = errors.New("unauthorized")
	ErrInvalidPack               = errors.New("invalid pack")
	ErrInvalidRail               = errors.New("invalid payment rail")
	ErrIntentNotPending          = errors.New("payment intent is not pending")
	ErrReferralExists            = errors.New("referral already exists")
	ErrSelfReferral              = errors.New("self referral not allowed")
	ErrNoActiveUnit              = errors.New("balance change outside of a transaction")
	ErrTransactionConflict       = errors.New("transaction conflict")
	ErrDuplicateReference        = errors.New("external reference already used")
)

// IsNotFound reports whether err is one of the lookup failures.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrAccountNotFound) ||
		errors.Is(err, ErrListingNotFound) ||
		errors.Is(err, ErrIntentNotFound)
}

// IsRetryable reports whether the whole unit of work may be run again.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrTransactionConflict)
}
