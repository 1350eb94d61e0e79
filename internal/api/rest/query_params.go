package rest

const MAX_PAGE_SIZE = 100

// HistoryQueryParams holds pagination parameters for
// GET /tokens/:id/history
type HistoryQueryParams struct {
	Page     int `form:"page,default=1"`
	PageSize int `form:"pageSize,default=20"`
}

// Validate clamps the parameters to sane bounds and reports whether
// they were valid to begin with.
func (p *HistoryQueryParams) Validate() bool {
	if p.Page < 1 || p.PageSize < 1 {
		return false
	}
	if p.PageSize > MAX_PAGE_SIZE {
		p.PageSize = MAX_PAGE_SIZE
	}
	return true
}

// TokensQueryParams holds filters for GET /tokens
type TokensQueryParams struct {
	Owner   string `form:"owner"`
	Creator string `form:"creator"`
}

// ApprovalsQueryParams holds filters for GET /approvals
type ApprovalsQueryParams struct {
	TokenIds []string `form:"token_id"`
}
