package ledger

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/openmarket/ledger/internal/domain"
	"github.com/openmarket/ledger/internal/logger"
)

// GetHistory returns one page of a token's completed sales, newest
// first. The marketplace's aggregate counter is the authoritative total;
// the event log is scanned backward from the latest sale block in
// bounded windows, only as far as the requested page needs. Pages past
// the end return an empty page without touching the log.
func (c *Client) GetHistory(ctx context.Context, tokenId string, page, pageSize int) (*domain.Page[domain.SaleTransaction], error) {
	if page < 1 {
		return nil, fmt.Errorf("page must be >= 1, got %d", page)
	}
	if pageSize < 1 {
		return nil, fmt.Errorf("pageSize must be >= 1, got %d", pageSize)
	}

	stats, err := c.sess.Market.GetHistoricalTransaction(ctx, tokenId)
	if err != nil {
		return nil, err
	}

	total := int(stats.TotalCount)
	offset := (page - 1) * pageSize

	if total == 0 || offset >= total {
		return domain.NewPage[domain.SaleTransaction](nil, total, page, pageSize), nil
	}

	// The page covers positions [offset, offset+length) of the
	// newest-first sequence; scanning can stop once that many events
	// are accumulated.
	length := pageSize
	if remaining := total - offset; remaining < length {
		length = remaining
	}
	need := offset + length

	sales, err := c.scanBackward(ctx, tokenId, stats.StartBlock, stats.LatestBlock, need)
	if err != nil {
		return nil, err
	}

	if offset >= len(sales) {
		logger.WarnCtx(ctx, "sale history scan came up short",
			zap.String("tokenId", tokenId),
			zap.Int("total", total),
			zap.Int("found", len(sales)))
		return domain.NewPage[domain.SaleTransaction](nil, total, page, pageSize), nil
	}

	end := offset + length
	if end > len(sales) {
		end = len(sales)
	}

	return domain.NewPage(sales[offset:end], total, page, pageSize), nil
}

// scanBackward walks the event log from latestBlock down to startBlock
// in windows of at most maxBlockRange blocks, accumulating sales newest
// first, and stops as soon as need events are collected.
func (c *Client) scanBackward(ctx context.Context, tokenId string, startBlock, latestBlock uint64, need int) ([]domain.SaleTransaction, error) {
	if latestBlock < startBlock {
		return nil, nil
	}

	acc := make([]domain.SaleTransaction, 0, need)
	toBlock := latestBlock

	for {
		fromBlock := startBlock
		if span := c.maxBlockRange - 1; toBlock >= startBlock+span {
			fromBlock = toBlock - span
		}

		window, err := c.sess.Market.FilterItemSold(ctx, tokenId, fromBlock, toBlock)
		if err != nil {
			return nil, err
		}

		// The node returns ascending order; the accumulator is newest first.
		for i := len(window) - 1; i >= 0; i-- {
			acc = append(acc, window[i])
		}

		if len(acc) >= need || fromBlock <= startBlock {
			return acc, nil
		}

		toBlock = fromBlock - 1
	}
}
