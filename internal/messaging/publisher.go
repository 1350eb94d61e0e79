package messaging

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/openmarket/ledger/internal/adapter"
	"github.com/openmarket/ledger/internal/domain"
	"github.com/openmarket/ledger/internal/logger"
)

//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names Publisher=MockPublisher

// Publisher emits marketplace sale events to downstream consumers.
type Publisher interface {
	PublishSaleEvent(ctx context.Context, event domain.SaleEvent) error
}

type jetStreamPublisher struct {
	js            adapter.JetStream
	json          adapter.JSON
	subjectPrefix string
}

// NewJetStreamPublisher publishes sale events on
// "<prefix>.sales.<tokenId>" subjects.
func NewJetStreamPublisher(js adapter.JetStream, json adapter.JSON, subjectPrefix string) Publisher {
	return &jetStreamPublisher{
		js:            js,
		json:          json,
		subjectPrefix: subjectPrefix,
	}
}

func (p *jetStreamPublisher) PublishSaleEvent(ctx context.Context, event domain.SaleEvent) error {
	payload, err := p.json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal sale event %s: %w", event.Id, err)
	}

	subject := fmt.Sprintf("%s.sales.%s", p.subjectPrefix, event.TokenId)

	ack, err := p.js.Publish(ctx, subject, payload)
	if err != nil {
		return fmt.Errorf("failed to publish sale event %s: %w", event.Id, err)
	}

	logger.InfoCtx(ctx, "sale event published",
		zap.String("eventId", event.Id),
		zap.String("subject", subject),
		zap.Uint64("sequence", ack.Sequence))

	return nil
}
