package contracts

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openmarket/ledger/internal/domain"
)

func TestNormalizeRPCError(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected error
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: nil,
		},
		{
			name:     "execution reverted",
			err:      errors.New("execution reverted: item already sold"),
			expected: domain.ErrContractRevert,
		},
		{
			name:     "execution reverted without reason",
			err:      errors.New("execution reverted"),
			expected: domain.ErrContractRevert,
		},
		{
			name:     "user denied",
			err:      errors.New("MetaMask Tx Signature: User denied transaction signature"),
			expected: domain.ErrUserRejected,
		},
		{
			name:     "already known",
			err:      errors.New("already known"),
			expected: domain.ErrPendingRequestConflict,
		},
		{
			name:     "replacement underpriced",
			err:      errors.New("replacement transaction underpriced"),
			expected: domain.ErrPendingRequestConflict,
		},
		{
			name:     "nonce too low",
			err:      errors.New("nonce too low"),
			expected: domain.ErrPendingRequestConflict,
		},
		{
			name:     "context deadline",
			err:      fmt.Errorf("call failed: %w", context.DeadlineExceeded),
			expected: domain.ErrNetworkFailure,
		},
		{
			name:     "connection refused",
			err:      errors.New("dial tcp 127.0.0.1:8545: connect: connection refused"),
			expected: domain.ErrNetworkFailure,
		},
		{
			name:     "already normalized passes through",
			err:      fmt.Errorf("%w: token 5", domain.ErrNotFound),
			expected: domain.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := NormalizeRPCError(tc.err)
			if tc.expected == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tc.expected)
		})
	}
}

func TestNormalizeRPCError_KeepsRevertReason(t *testing.T) {
	got := NormalizeRPCError(errors.New("execution reverted: listing fee mismatch"))

	require.ErrorIs(t, got, domain.ErrContractRevert)
	assert.Contains(t, got.Error(), "listing fee mismatch")
}

func TestRevertReason(t *testing.T) {
	assert.Equal(t, "item already sold",
		revertReason(errors.New("execution reverted: item already sold")))
	assert.Equal(t, "",
		revertReason(errors.New("execution reverted")))
	assert.Equal(t, "",
		revertReason(errors.New("connection refused")))
}
