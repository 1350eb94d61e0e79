package rest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apierrors "github.com/openmarket/ledger/internal/api/shared/errors"
	"github.com/openmarket/ledger/internal/domain"
	"github.com/openmarket/ledger/internal/logger"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	if err := logger.Initialize(logger.Config{Debug: true}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func TestRespondLedgerError(t *testing.T) {
	testCases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   apierrors.ErrorCode
	}{
		{
			name:       "not found",
			err:        fmt.Errorf("%w: token 7", domain.ErrNotFound),
			wantStatus: http.StatusNotFound,
			wantCode:   apierrors.ErrCodeNotFound,
		},
		{
			name:       "signing unavailable",
			err:        domain.ErrSigningUnavailable,
			wantStatus: http.StatusForbidden,
			wantCode:   apierrors.ErrCodeSigningUnavailable,
		},
		{
			name:       "user rejected",
			err:        domain.ErrUserRejected,
			wantStatus: http.StatusBadRequest,
			wantCode:   apierrors.ErrCodeUserRejected,
		},
		{
			name:       "pending conflict",
			err:        domain.ErrPendingRequestConflict,
			wantStatus: http.StatusConflict,
			wantCode:   apierrors.ErrCodePendingConflict,
		},
		{
			name:       "not listed",
			err:        fmt.Errorf("%w: token 7", domain.ErrNotListed),
			wantStatus: http.StatusConflict,
			wantCode:   apierrors.ErrCodeNotListed,
		},
		{
			name:       "approval required",
			err:        fmt.Errorf("%w: marketplace is not approved for token 7", domain.ErrApprovalRequired),
			wantStatus: http.StatusConflict,
			wantCode:   apierrors.ErrCodeApprovalRequired,
		},
		{
			name:       "invalid royalty",
			err:        fmt.Errorf("%w: 101", domain.ErrInvalidRoyalty),
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   apierrors.ErrCodeValidationFailed,
		},
		{
			name:       "invalid price",
			err:        fmt.Errorf("%w: listing price must be positive", domain.ErrInvalidPrice),
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   apierrors.ErrCodeValidationFailed,
		},
		{
			name:       "contract revert",
			err:        fmt.Errorf("%w: not the seller", domain.ErrContractRevert),
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   apierrors.ErrCodeContractRevert,
		},
		{
			name:       "network failure",
			err:        fmt.Errorf("%w: connection refused", domain.ErrNetworkFailure),
			wantStatus: http.StatusBadGateway,
			wantCode:   apierrors.ErrCodeNetworkFailure,
		},
		{
			name:       "unclassified",
			err:        fmt.Errorf("something unexpected"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   apierrors.ErrCodeInternalError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			respondLedgerError(c, tc.err)

			assert.Equal(t, tc.wantStatus, w.Code)

			var apiErr apierrors.APIError
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &apiErr))
			assert.Equal(t, tc.wantCode, apiErr.Code)
		})
	}
}
