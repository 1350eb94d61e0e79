package domain

import "errors"

var (
	// ErrSigningUnavailable is returned when a state-changing call is
	// attempted on a session that has no signer. The call fails before
	// reaching the network.
	ErrSigningUnavailable = errors.New("signing unavailable")

	// ErrUserRejected is returned when the signer declined the request.
	ErrUserRejected = errors.New("signature request rejected")

	// ErrPendingRequestConflict is returned when a prior signing request
	// for the same account is still outstanding.
	ErrPendingRequestConflict = errors.New("pending signing request conflict")

	// ErrContractRevert is returned when the remote contract rejected the
	// call. Wrapped errors carry the normalized revert reason.
	ErrContractRevert = errors.New("contract revert")

	// ErrNetworkFailure is returned when the ledger transport is
	// unreachable or timed out.
	ErrNetworkFailure = errors.New("network failure")

	// ErrNotFound is returned when a token does not exist. Distinct from
	// "not listed", which is a normal non-error state.
	ErrNotFound = errors.New("token not found")

	// ErrInvalidRoyalty is returned for royalty fees outside [0, 100].
	ErrInvalidRoyalty = errors.New("royalty fee out of range")

	// ErrInvalidPrice is returned for non-positive listing prices.
	ErrInvalidPrice = errors.New("price must be positive")

	// ErrNotListed is returned when an operation requires an active
	// listing and none exists.
	ErrNotListed = errors.New("token is not listed")

	// ErrApprovalRequired is returned when a list attempt cannot proceed
	// because the marketplace holds no approval for the token. The safe
	// default on approval uncertainty is to require the approval flow.
	ErrApprovalRequired = errors.New("marketplace approval required")
)
