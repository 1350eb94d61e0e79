package ledger

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/openmarket/ledger/internal/cache"
	"github.com/openmarket/ledger/internal/contracts"
	"github.com/openmarket/ledger/internal/domain"
	"github.com/openmarket/ledger/internal/logger"
	"github.com/openmarket/ledger/internal/metadata"
	"github.com/openmarket/ledger/internal/session"
)

// TokenDetail joins a market token with its resolved metadata. Metadata
// is nil when resolution fails; the chain state is still returned.
type TokenDetail struct {
	domain.MarketToken
	Metadata *domain.TokenMetadata `json:"metadata,omitempty"`
}

// Options tunes the client's cache and worker pool.
type Options struct {
	CacheTTL      time.Duration
	PoolSize      int
	QueueSize     int
	MaxBlockRange uint64
}

// Client is the single entry point for marketplace reads and writes.
// Every mutating operation submits the transaction, waits for the
// receipt, then re-reads the affected records so callers always get the
// post-transaction chain state back.
type Client struct {
	sess     *session.Session
	resolver metadata.Resolver

	approveAll    *cache.Cache[bool]
	approveSingle *cache.Cache[string]

	pool          pond.ResultPool[domain.MarketToken]
	maxBlockRange uint64
}

func New(sess *session.Session, resolver metadata.Resolver, opts Options) *Client {
	if opts.PoolSize <= 0 {
		opts.PoolSize = 10
	}
	if opts.QueueSize <= 0 {
		opts.QueueSize = 1024
	}
	if opts.MaxBlockRange == 0 {
		opts.MaxBlockRange = 5000
	}

	return &Client{
		sess:          sess,
		resolver:      resolver,
		approveAll:    cache.New[bool](opts.CacheTTL),
		approveSingle: cache.New[string](opts.CacheTTL),
		pool:          pond.NewResultPool[domain.MarketToken](opts.PoolSize, pond.WithQueueSize(opts.QueueSize)),
		maxBlockRange: opts.MaxBlockRange,
	}
}

// Close stops the worker pool.
func (c *Client) Close() {
	_ = c.pool.Stop()
}

// Account returns the session account, empty in read-only sessions.
func (c *Client) Account() string {
	return c.sess.Account
}

func (c *Client) requireSigner() error {
	if !c.sess.HasSigner {
		return domain.ErrSigningUnavailable
	}
	return nil
}

// Mint creates a token pointing at the given metadata CID and returns
// the freshly re-read registry record.
func (c *Client) Mint(ctx context.Context, cid string, royaltyFee int64) (*domain.Token, error) {
	if err := c.requireSigner(); err != nil {
		return nil, err
	}

	tokenId, err := c.sess.Token.Mint(ctx, cid, royaltyFee)
	if err != nil {
		return nil, err
	}

	info, err := c.sess.Token.GetTokenInfoById(ctx, tokenId)
	if err != nil {
		return nil, fmt.Errorf("minted token %s but failed to re-read it: %w", tokenId, err)
	}

	token := info.Token()
	logger.InfoCtx(ctx, "token minted",
		zap.String("tokenId", token.Id),
		zap.String("creator", token.Creator))

	return &token, nil
}

// GetInfo returns a token joined with its current listing state.
func (c *Client) GetInfo(ctx context.Context, tokenId string) (*domain.MarketToken, error) {
	info, err := c.sess.Token.GetTokenInfoById(ctx, tokenId)
	if err != nil {
		return nil, err
	}

	mt := c.joinListing(ctx, info.Token())
	return &mt, nil
}

// GetInfoWithMetadata is GetInfo plus the resolved metadata document.
// Metadata failures degrade to a nil document instead of failing the read.
func (c *Client) GetInfoWithMetadata(ctx context.Context, tokenId string) (*TokenDetail, error) {
	mt, err := c.GetInfo(ctx, tokenId)
	if err != nil {
		return nil, err
	}

	detail := &TokenDetail{MarketToken: *mt}

	meta, err := c.resolver.Resolve(ctx, mt.CID)
	if err != nil {
		logger.WarnCtx(ctx, "metadata resolution failed",
			zap.String("tokenId", tokenId),
			zap.String("cid", mt.CID),
			zap.Error(err))
		return detail, nil
	}

	detail.Metadata = meta
	return detail, nil
}

// GetByOwner returns every token held by owner, each joined with its
// listing state.
func (c *Client) GetByOwner(ctx context.Context, owner string) ([]domain.MarketToken, error) {
	infos, err := c.sess.Token.GetTokenInfoByOwner(ctx, owner)
	if err != nil {
		return nil, err
	}

	return c.joinListings(ctx, infosToTokens(infos))
}

// GetByCreator returns every token minted by creator, each joined with
// its listing state.
func (c *Client) GetByCreator(ctx context.Context, creator string) ([]domain.MarketToken, error) {
	infos, err := c.sess.Token.GetTokenInfoByCreator(ctx, creator)
	if err != nil {
		return nil, err
	}

	return c.joinListings(ctx, infosToTokens(infos))
}

// GetMarketplaceListings returns the tokens with an active listing.
// Canceled and sold listings are filtered out after settling every
// lookup, so one bad record never hides the rest.
func (c *Client) GetMarketplaceListings(ctx context.Context) ([]domain.MarketToken, error) {
	listings, err := c.sess.Market.GetAllListings(ctx)
	if err != nil {
		return nil, err
	}

	group := c.pool.NewGroup()
	for i := range listings {
		listing := listings[i].Listing()
		group.SubmitErr(func() (domain.MarketToken, error) {
			if !listing.Active() {
				return domain.MarketToken{}, nil
			}

			info, err := c.sess.Token.GetTokenInfoById(ctx, listing.TokenId)
			if err != nil {
				logger.WarnCtx(ctx, "skipping unreadable listed token",
					zap.String("tokenId", listing.TokenId),
					zap.Error(err))
				return domain.MarketToken{}, nil
			}

			return domain.MarketToken{
				Token:  info.Token(),
				Listed: true,
				Price:  listing.Price,
			}, nil
		})
	}

	settled, err := group.Wait()
	if err != nil {
		return nil, err
	}

	results := make([]domain.MarketToken, 0, len(settled))
	for _, mt := range settled {
		if mt.Listed {
			results = append(results, mt)
		}
	}

	return results, nil
}

// GetListing returns the current listing record for a token, degrading
// to the not-listed default when the marketplace has no record.
func (c *Client) GetListing(ctx context.Context, tokenId string) (*domain.Listing, error) {
	info, err := c.sess.Market.GetListingById(ctx, tokenId)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NotListed(tokenId), nil
		}
		return nil, err
	}

	listing := info.Listing()
	return &listing, nil
}

// GetListingFee returns the marketplace's flat listing fee in ETH.
func (c *Client) GetListingFee(ctx context.Context) (decimal.Decimal, error) {
	fee, err := c.sess.Market.GetListingFee(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	return domain.WeiToEth(fee), nil
}

// List puts a token up for sale. The marketplace must already be
// approved for the token; without that the on-chain call would revert
// after the listing fee is spent, so the check fails first with
// ErrApprovalRequired.
func (c *Client) List(ctx context.Context, tokenId string, price decimal.Decimal) (*domain.Listing, error) {
	if err := c.requireSigner(); err != nil {
		return nil, err
	}

	if price.Sign() <= 0 {
		return nil, fmt.Errorf("%w: listing price must be positive", domain.ErrInvalidPrice)
	}

	approved, err := c.marketplaceApproved(ctx, tokenId)
	if err != nil {
		return nil, err
	}
	if !approved {
		return nil, fmt.Errorf("%w: marketplace is not approved for token %s",
			domain.ErrApprovalRequired, tokenId)
	}

	fee, err := c.sess.Market.GetListingFee(ctx)
	if err != nil {
		return nil, err
	}

	if err := c.sess.Market.ListItem(ctx, tokenId, domain.EthToWei(price), fee); err != nil {
		return nil, err
	}

	return c.rereadListing(ctx, tokenId)
}

// Delist cancels the caller's active listing.
func (c *Client) Delist(ctx context.Context, tokenId string) (*domain.Listing, error) {
	if err := c.requireSigner(); err != nil {
		return nil, err
	}

	if err := c.ensureActiveListing(ctx, tokenId); err != nil {
		return nil, err
	}

	if err := c.sess.Market.CancelListing(ctx, tokenId); err != nil {
		return nil, err
	}

	return c.rereadListing(ctx, tokenId)
}

// UpdatePrice changes the asking price of the caller's active listing.
func (c *Client) UpdatePrice(ctx context.Context, tokenId string, newPrice decimal.Decimal) (*domain.Listing, error) {
	if err := c.requireSigner(); err != nil {
		return nil, err
	}

	if newPrice.Sign() <= 0 {
		return nil, fmt.Errorf("%w: listing price must be positive", domain.ErrInvalidPrice)
	}

	if err := c.ensureActiveListing(ctx, tokenId); err != nil {
		return nil, err
	}

	if err := c.sess.Market.UpdateListingPrice(ctx, tokenId, domain.EthToWei(newPrice)); err != nil {
		return nil, err
	}

	return c.rereadListing(ctx, tokenId)
}

// Buy purchases an actively listed token at its asking price and
// returns the re-read post-sale record.
func (c *Client) Buy(ctx context.Context, tokenId string) (*domain.MarketToken, error) {
	if err := c.requireSigner(); err != nil {
		return nil, err
	}

	listing, err := c.GetListing(ctx, tokenId)
	if err != nil {
		return nil, err
	}
	if !listing.Active() {
		return nil, fmt.Errorf("%w: token %s", domain.ErrNotListed, tokenId)
	}

	if err := c.sess.Market.BuyItem(ctx, tokenId, domain.EthToWei(listing.Price)); err != nil {
		return nil, err
	}

	c.approveSingle.Invalidate(cache.ApproveSingleKey(tokenId))

	logger.InfoCtx(ctx, "token purchased",
		zap.String("tokenId", tokenId),
		zap.String("buyer", c.sess.Account),
		zap.String("price", listing.Price.String()))

	return c.GetInfo(ctx, tokenId)
}

// Transfer moves a token from the session account to another address.
func (c *Client) Transfer(ctx context.Context, to, tokenId string) (*domain.MarketToken, error) {
	if err := c.requireSigner(); err != nil {
		return nil, err
	}

	if err := c.sess.Token.Transfer(ctx, c.sess.Account, to, tokenId); err != nil {
		return nil, err
	}

	c.approveSingle.Invalidate(cache.ApproveSingleKey(tokenId))

	return c.GetInfo(ctx, tokenId)
}

// ApproveSingle grants the marketplace transfer rights over one token.
func (c *Client) ApproveSingle(ctx context.Context, tokenId string) error {
	if err := c.requireSigner(); err != nil {
		return err
	}

	marketAddr := c.sess.Market.Address().Hex()

	key := cache.ApproveSingleKey(tokenId)
	c.approveSingle.Invalidate(key)

	if err := c.sess.Token.Approve(ctx, marketAddr, tokenId); err != nil {
		return err
	}

	c.approveSingle.WriteThrough(key, strings.ToLower(marketAddr))
	return nil
}

// ApproveAll grants or revokes marketplace transfer rights over every
// token of the session account.
func (c *Client) ApproveAll(ctx context.Context, approved bool) error {
	if err := c.requireSigner(); err != nil {
		return err
	}

	marketAddr := c.sess.Market.Address().Hex()

	key := cache.ApproveAllKey(c.sess.Account, marketAddr)
	c.approveAll.Invalidate(key)

	if err := c.sess.Token.SetApprovalForAll(ctx, marketAddr, approved); err != nil {
		return err
	}

	c.approveAll.WriteThrough(key, approved)
	return nil
}

// GetApprovalState reports the marketplace permissions of the session
// account, checking the requested token ids individually.
func (c *Client) GetApprovalState(ctx context.Context, tokenIds []string) (*domain.ApprovalState, error) {
	marketAddr := c.sess.Market.Address().Hex()

	all, err := c.isApprovedForAll(ctx, c.sess.Account, marketAddr)
	if err != nil {
		return nil, err
	}

	state := &domain.ApprovalState{
		Owner:       c.sess.Account,
		Marketplace: all,
	}

	if len(tokenIds) > 0 {
		state.Tokens = make(map[string]bool, len(tokenIds))
		for _, tokenId := range tokenIds {
			operator, err := c.approvedOperator(ctx, tokenId)
			if err != nil {
				return nil, err
			}
			state.Tokens[tokenId] = all || operator == strings.ToLower(marketAddr)
		}
	}

	return state, nil
}

// marketplaceApproved reports whether the marketplace may transfer the
// token. A cached positive skips the chain read; anything else is
// re-verified so a stale negative never blocks a valid listing.
func (c *Client) marketplaceApproved(ctx context.Context, tokenId string) (bool, error) {
	marketAddr := strings.ToLower(c.sess.Market.Address().Hex())

	if all, ok := c.approveAll.Get(cache.ApproveAllKey(c.sess.Account, marketAddr)); ok && all {
		return true, nil
	}
	if operator, ok := c.approveSingle.Get(cache.ApproveSingleKey(tokenId)); ok && operator == marketAddr {
		return true, nil
	}

	all, err := c.isApprovedForAll(ctx, c.sess.Account, marketAddr)
	if err != nil {
		return false, err
	}
	if all {
		return true, nil
	}

	operator, err := c.approvedOperator(ctx, tokenId)
	if err != nil {
		return false, err
	}

	return operator == marketAddr, nil
}

func (c *Client) isApprovedForAll(ctx context.Context, owner, operator string) (bool, error) {
	key := cache.ApproveAllKey(owner, operator)

	all, err := c.sess.Token.IsApprovedForAll(ctx, owner, operator)
	if err != nil {
		return false, err
	}

	c.approveAll.WriteThrough(key, all)
	return all, nil
}

func (c *Client) approvedOperator(ctx context.Context, tokenId string) (string, error) {
	operator, err := c.sess.Token.GetApproved(ctx, tokenId)
	if err != nil {
		return "", err
	}

	operator = strings.ToLower(operator)
	c.approveSingle.WriteThrough(cache.ApproveSingleKey(tokenId), operator)
	return operator, nil
}

// ensureActiveListing guards mutations that only make sense against an
// open listing, so the caller gets ErrNotListed instead of a revert.
func (c *Client) ensureActiveListing(ctx context.Context, tokenId string) error {
	listing, err := c.GetListing(ctx, tokenId)
	if err != nil {
		return err
	}
	if !listing.Active() {
		return fmt.Errorf("%w: token %s", domain.ErrNotListed, tokenId)
	}
	return nil
}

// rereadListing returns the authoritative listing record after a write.
func (c *Client) rereadListing(ctx context.Context, tokenId string) (*domain.Listing, error) {
	listing, err := c.GetListing(ctx, tokenId)
	if err != nil {
		return nil, fmt.Errorf("listing for token %s changed but failed to re-read it: %w", tokenId, err)
	}
	return listing, nil
}

// joinListing attaches the current listing state to a token. Listing
// read failures degrade to not-listed; the token itself is authoritative.
func (c *Client) joinListing(ctx context.Context, token domain.Token) domain.MarketToken {
	mt := domain.MarketToken{Token: token, Price: decimal.Zero}

	listing, err := c.GetListing(ctx, token.Id)
	if err != nil {
		logger.WarnCtx(ctx, "listing lookup failed, treating token as not listed",
			zap.String("tokenId", token.Id),
			zap.Error(err))
		return mt
	}

	if listing.Active() {
		mt.Listed = true
		mt.Price = listing.Price
	}

	return mt
}

// joinListings fans the per-token listing lookups out over the worker
// pool and settles them all before returning.
func (c *Client) joinListings(ctx context.Context, tokens []domain.Token) ([]domain.MarketToken, error) {
	group := c.pool.NewGroup()
	for i := range tokens {
		token := tokens[i]
		group.SubmitErr(func() (domain.MarketToken, error) {
			return c.joinListing(ctx, token), nil
		})
	}

	results, err := group.Wait()
	if err != nil {
		return nil, err
	}
	if results == nil {
		results = []domain.MarketToken{}
	}

	return results, nil
}

func infosToTokens(infos []contracts.TokenInfo) []domain.Token {
	tokens := make([]domain.Token, 0, len(infos))
	for i := range infos {
		tokens = append(tokens, infos[i].Token())
	}
	return tokens
}
