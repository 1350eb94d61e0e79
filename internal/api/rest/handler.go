package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openmarket/ledger/internal/api/shared/dto"
	"github.com/openmarket/ledger/internal/ledger"
)

// Handler defines the interface for REST API handlers
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)

	// GetToken retrieves a token with its listing state and metadata
	// GET /api/v1/tokens/:id
	GetToken(c *gin.Context)

	// ListTokens retrieves tokens filtered by owner or creator
	// GET /api/v1/tokens?owner=<address>|creator=<address>
	ListTokens(c *gin.Context)

	// GetListing retrieves the current listing record of a token
	// GET /api/v1/tokens/:id/listing
	GetListing(c *gin.Context)

	// GetHistory retrieves one page of a token's completed sales
	// GET /api/v1/tokens/:id/history?page=<page>&pageSize=<pageSize>
	GetHistory(c *gin.Context)

	// GetMarketplaceListings retrieves every actively listed token
	// GET /api/v1/marketplace/listings
	GetMarketplaceListings(c *gin.Context)

	// GetListingFee retrieves the marketplace's flat listing fee
	// GET /api/v1/marketplace/fee
	GetListingFee(c *gin.Context)

	// GetApprovals reports the session account's marketplace approvals
	// GET /api/v1/approvals?token_id=<id>&token_id=<id>
	GetApprovals(c *gin.Context)

	// Mint creates a new token (requires authentication)
	// POST /api/v1/tokens
	Mint(c *gin.Context)

	// Transfer moves a token to another account (requires authentication)
	// POST /api/v1/tokens/:id/transfer
	Transfer(c *gin.Context)

	// List puts a token up for sale (requires authentication)
	// POST /api/v1/tokens/:id/listing
	List(c *gin.Context)

	// UpdatePrice changes an active listing's price (requires authentication)
	// PATCH /api/v1/tokens/:id/listing
	UpdatePrice(c *gin.Context)

	// Delist cancels an active listing (requires authentication)
	// DELETE /api/v1/tokens/:id/listing
	Delist(c *gin.Context)

	// Buy purchases a listed token (requires authentication)
	// POST /api/v1/tokens/:id/buy
	Buy(c *gin.Context)

	// ApproveToken grants the marketplace rights over one token (requires authentication)
	// POST /api/v1/tokens/:id/approve
	ApproveToken(c *gin.Context)

	// ApproveAll grants or revokes marketplace rights over every token (requires authentication)
	// POST /api/v1/approvals
	ApproveAll(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	ledger *ledger.Client
}

// NewHandler creates a new REST API handler over the ledger client
func NewHandler(client *ledger.Client) Handler {
	return &handler{
		ledger: client,
	}
}

func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:  "ok",
		Account: h.ledger.Account(),
		Signing: h.ledger.Account() != "",
	})
}

func (h *handler) GetToken(c *gin.Context) {
	tokenId := c.Param("id")
	if tokenId == "" {
		respondBadRequest(c, "Token id is required")
		return
	}

	detail, err := h.ledger.GetInfoWithMetadata(c.Request.Context(), tokenId)
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

func (h *handler) ListTokens(c *gin.Context) {
	var params TokensQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBadRequest(c, "Invalid query parameters", err.Error())
		return
	}

	switch {
	case params.Owner != "":
		tokens, err := h.ledger.GetByOwner(c.Request.Context(), params.Owner)
		if err != nil {
			respondLedgerError(c, err)
			return
		}
		c.JSON(http.StatusOK, tokens)

	case params.Creator != "":
		tokens, err := h.ledger.GetByCreator(c.Request.Context(), params.Creator)
		if err != nil {
			respondLedgerError(c, err)
			return
		}
		c.JSON(http.StatusOK, tokens)

	default:
		respondBadRequest(c, "Either owner or creator filter is required")
	}
}

func (h *handler) GetListing(c *gin.Context) {
	tokenId := c.Param("id")

	listing, err := h.ledger.GetListing(c.Request.Context(), tokenId)
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	c.JSON(http.StatusOK, listing)
}

func (h *handler) GetHistory(c *gin.Context) {
	tokenId := c.Param("id")

	var params HistoryQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBadRequest(c, "Invalid query parameters", err.Error())
		return
	}
	if !params.Validate() {
		respondBadRequest(c, "page and pageSize must be >= 1")
		return
	}

	page, err := h.ledger.GetHistory(c.Request.Context(), tokenId, params.Page, params.PageSize)
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

func (h *handler) GetMarketplaceListings(c *gin.Context) {
	tokens, err := h.ledger.GetMarketplaceListings(c.Request.Context())
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	c.JSON(http.StatusOK, tokens)
}

func (h *handler) GetListingFee(c *gin.Context) {
	fee, err := h.ledger.GetListingFee(c.Request.Context())
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FeeResponse{ListingFee: fee})
}

func (h *handler) GetApprovals(c *gin.Context) {
	var params ApprovalsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBadRequest(c, "Invalid query parameters", err.Error())
		return
	}

	state, err := h.ledger.GetApprovalState(c.Request.Context(), params.TokenIds)
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	c.JSON(http.StatusOK, state)
}

func (h *handler) Mint(c *gin.Context) {
	var req dto.MintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	token, err := h.ledger.Mint(c.Request.Context(), req.CID, req.RoyaltyFee)
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	c.JSON(http.StatusCreated, token)
}

func (h *handler) Transfer(c *gin.Context) {
	tokenId := c.Param("id")

	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	token, err := h.ledger.Transfer(c.Request.Context(), req.To, tokenId)
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	c.JSON(http.StatusOK, token)
}

func (h *handler) List(c *gin.Context) {
	tokenId := c.Param("id")

	var req dto.ListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	listing, err := h.ledger.List(c.Request.Context(), tokenId, req.Price)
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	c.JSON(http.StatusCreated, listing)
}

func (h *handler) UpdatePrice(c *gin.Context) {
	tokenId := c.Param("id")

	var req dto.UpdatePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	listing, err := h.ledger.UpdatePrice(c.Request.Context(), tokenId, req.Price)
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	c.JSON(http.StatusOK, listing)
}

func (h *handler) Delist(c *gin.Context) {
	tokenId := c.Param("id")

	listing, err := h.ledger.Delist(c.Request.Context(), tokenId)
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	c.JSON(http.StatusOK, listing)
}

func (h *handler) Buy(c *gin.Context) {
	tokenId := c.Param("id")

	token, err := h.ledger.Buy(c.Request.Context(), tokenId)
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	c.JSON(http.StatusOK, token)
}

func (h *handler) ApproveToken(c *gin.Context) {
	tokenId := c.Param("id")

	if err := h.ledger.ApproveSingle(c.Request.Context(), tokenId); err != nil {
		respondLedgerError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TxResponse{Ok: true})
}

func (h *handler) ApproveAll(c *gin.Context) {
	var req dto.ApproveAllRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	if err := h.ledger.ApproveAll(c.Request.Context(), *req.Approved); err != nil {
		respondLedgerError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TxResponse{Ok: true})
}
