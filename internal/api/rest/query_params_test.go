package rest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHistoryQueryParams_Validate(t *testing.T) {
	testCases := []struct {
		name         string
		params       HistoryQueryParams
		wantValid    bool
		wantPageSize int
	}{
		{
			name:         "defaults",
			params:       HistoryQueryParams{Page: 1, PageSize: 20},
			wantValid:    true,
			wantPageSize: 20,
		},
		{
			name:         "clamped to max page size",
			params:       HistoryQueryParams{Page: 1, PageSize: 500},
			wantValid:    true,
			wantPageSize: MAX_PAGE_SIZE,
		},
		{
			name:      "zero page",
			params:    HistoryQueryParams{Page: 0, PageSize: 20},
			wantValid: false,
		},
		{
			name:      "negative page",
			params:    HistoryQueryParams{Page: -1, PageSize: 20},
			wantValid: false,
		},
		{
			name:      "zero page size",
			params:    HistoryQueryParams{Page: 1, PageSize: 0},
			wantValid: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			valid := tc.params.Validate()
			assert.Equal(t, tc.wantValid, valid)
			if tc.wantValid {
				assert.Equal(t, tc.wantPageSize, tc.params.PageSize)
			}
		})
	}
}
