package rest

import (
	goerrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openmarket/ledger/internal/api/shared/errors"
	"github.com/openmarket/ledger/internal/domain"
)

// respondBadRequest responds with a bad request error
func respondBadRequest(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusBadRequest, errors.NewBadRequestError(message, details...))
}

// respondNotFound responds with a not found error
func respondNotFound(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusNotFound, errors.NewNotFoundError(message, details...))
}

// respondInternalError responds with an internal server error
func respondInternalError(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusInternalServerError, errors.NewInternalError(message, details...))
}

// respondLedgerError maps a domain error onto the matching HTTP status
// and error code.
func respondLedgerError(c *gin.Context, err error) {
	switch {
	case goerrors.Is(err, domain.ErrNotFound):
		respondNotFound(c, "Not found", err.Error())

	case goerrors.Is(err, domain.ErrSigningUnavailable):
		c.JSON(http.StatusForbidden, errors.New(errors.ErrCodeSigningUnavailable,
			"Session is read-only, no signing key configured", err.Error()))

	case goerrors.Is(err, domain.ErrUserRejected):
		c.JSON(http.StatusBadRequest, errors.New(errors.ErrCodeUserRejected,
			"Request was rejected by the signer", err.Error()))

	case goerrors.Is(err, domain.ErrPendingRequestConflict):
		c.JSON(http.StatusConflict, errors.New(errors.ErrCodePendingConflict,
			"A conflicting request is already pending", err.Error()))

	case goerrors.Is(err, domain.ErrNotListed):
		c.JSON(http.StatusConflict, errors.New(errors.ErrCodeNotListed,
			"Token has no active listing", err.Error()))

	case goerrors.Is(err, domain.ErrApprovalRequired):
		c.JSON(http.StatusConflict, errors.New(errors.ErrCodeApprovalRequired,
			"Marketplace approval is required first", err.Error()))

	case goerrors.Is(err, domain.ErrInvalidRoyalty), goerrors.Is(err, domain.ErrInvalidPrice):
		c.JSON(http.StatusUnprocessableEntity, errors.NewValidationError(err.Error()))

	case goerrors.Is(err, domain.ErrContractRevert):
		c.JSON(http.StatusUnprocessableEntity, errors.New(errors.ErrCodeContractRevert,
			"Contract rejected the operation", err.Error()))

	case goerrors.Is(err, domain.ErrNetworkFailure):
		c.JSON(http.StatusBadGateway, errors.New(errors.ErrCodeNetworkFailure,
			"Upstream node is unreachable", err.Error()))

	default:
		respondInternalError(c, "Internal error", err.Error())
	}
}
