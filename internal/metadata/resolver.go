package metadata

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/openmarket/ledger/internal/adapter"
	"github.com/openmarket/ledger/internal/cache"
	"github.com/openmarket/ledger/internal/domain"
	"github.com/openmarket/ledger/internal/logger"
)

//go:generate mockgen -source=resolver.go -destination=../mocks/resolver.go -package=mocks -mock_names Resolver=MockResolver

const defaultCategory = "Unknown"

// Resolver fetches token metadata documents addressed by CID.
type Resolver interface {
	Resolve(ctx context.Context, cid string) (*domain.TokenMetadata, error)
}

type gatewayResolver struct {
	http     adapter.HTTPClient
	gateways []string
	cache    *cache.Cache[domain.TokenMetadata]
}

// NewGatewayResolver tries each IPFS gateway in order and caches
// successful lookups. Metadata is immutable per CID so the cache never
// needs invalidation, only expiry.
func NewGatewayResolver(http adapter.HTTPClient, gateways []string, ttl time.Duration) Resolver {
	return &gatewayResolver{
		http:     http,
		gateways: gateways,
		cache:    cache.New[domain.TokenMetadata](ttl),
	}
}

func (r *gatewayResolver) Resolve(ctx context.Context, cid string) (*domain.TokenMetadata, error) {
	if cid == "" {
		return nil, fmt.Errorf("%w: empty cid", domain.ErrNotFound)
	}

	if cached, ok := r.cache.Get(cid); ok {
		return &cached, nil
	}

	var lastErr error
	for _, gateway := range r.gateways {
		url := gatewayURL(gateway, cid)

		var meta domain.TokenMetadata
		if err := r.http.Get(ctx, url, &meta); err != nil {
			lastErr = err
			logger.WarnCtx(ctx, "metadata gateway failed",
				zap.String("gateway", gateway),
				zap.String("cid", cid),
				zap.Error(err))
			continue
		}

		if err := validateMetadata(meta); err != nil {
			lastErr = err
			logger.WarnCtx(ctx, "metadata document rejected",
				zap.String("gateway", gateway),
				zap.String("cid", cid),
				zap.Error(err))
			continue
		}

		normalizeCategory(&meta)

		r.cache.WriteThrough(cid, meta)
		return &meta, nil
	}

	return nil, fmt.Errorf("%w: all metadata gateways failed for %s: %v",
		domain.ErrNetworkFailure, cid, lastErr)
}

func validateMetadata(meta domain.TokenMetadata) error {
	if meta.Name == "" || meta.Description == "" || meta.Image == "" {
		return errors.New("missing required fields (name, description, image)")
	}
	return nil
}

// normalizeCategory backfills a missing category from the "category"
// trait, then falls back to the default.
func normalizeCategory(meta *domain.TokenMetadata) {
	if meta.Category != "" {
		return
	}

	for _, attr := range meta.Attributes {
		if strings.EqualFold(attr.TraitType, "category") {
			meta.Category = fmt.Sprint(attr.Value)
			return
		}
	}

	meta.Category = defaultCategory
}

func gatewayURL(gateway, cid string) string {
	if !strings.HasSuffix(gateway, "/") {
		gateway += "/"
	}
	return gateway + strings.TrimPrefix(cid, "ipfs://")
}
