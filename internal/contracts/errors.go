package contracts

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/openmarket/ledger/internal/domain"
)

// NormalizeRPCError maps raw node errors onto the domain error taxonomy.
// Already-normalized errors pass through unchanged so callers can wrap
// freely without double classification.
func NormalizeRPCError(err error) error {
	if err == nil {
		return nil
	}

	for _, sentinel := range []error{
		domain.ErrSigningUnavailable,
		domain.ErrUserRejected,
		domain.ErrPendingRequestConflict,
		domain.ErrContractRevert,
		domain.ErrNetworkFailure,
		domain.ErrNotFound,
	} {
		if errors.Is(err, sentinel) {
			return err
		}
	}

	msg := strings.ToLower(err.Error())

	switch {
	case strings.Contains(msg, "execution reverted"):
		if reason := revertReason(err); reason != "" {
			return fmt.Errorf("%w: %s", domain.ErrContractRevert, reason)
		}
		return domain.ErrContractRevert

	case strings.Contains(msg, "user denied") || strings.Contains(msg, "user rejected"):
		return domain.ErrUserRejected

	case strings.Contains(msg, "already known"),
		strings.Contains(msg, "replacement transaction underpriced"),
		strings.Contains(msg, "nonce too low"):
		return fmt.Errorf("%w: %s", domain.ErrPendingRequestConflict, err.Error())

	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return fmt.Errorf("%w: %s", domain.ErrNetworkFailure, err.Error())

	default:
		return fmt.Errorf("%w: %s", domain.ErrNetworkFailure, err.Error())
	}
}

// revertReason extracts the human-readable reason appended by nodes after
// the "execution reverted" prefix, when present.
func revertReason(err error) string {
	msg := err.Error()

	idx := strings.Index(strings.ToLower(msg), "execution reverted")
	if idx < 0 {
		return ""
	}

	rest := msg[idx+len("execution reverted"):]
	rest = strings.TrimLeft(rest, ": ")
	return strings.TrimSpace(rest)
}
