package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openmarket/ledger/internal/adapter"
	"github.com/openmarket/ledger/internal/domain"
	"github.com/openmarket/ledger/internal/logger"
	"github.com/openmarket/ledger/internal/mocks"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: true}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func newTestSaleEvent() domain.SaleEvent {
	return domain.SaleEvent{
		Id:          "01J8ZQ4X5N6P7Q8R9S0T1V2W3X",
		TokenId:     "42",
		Seller:      "0x2222222222222222222222222222222222222222",
		Buyer:       "0x3333333333333333333333333333333333333333",
		Price:       decimal.RequireFromString("1.5"),
		TxHash:      "0xdeadbeef",
		BlockNumber: 123,
		SoldAt:      time.Unix(1_700_000_000, 0).UTC(),
	}
}

func TestPublishSaleEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	js := mocks.NewMockJetStream(ctrl)
	event := newTestSaleEvent()

	js.EXPECT().
		Publish(gomock.Any(), "market.sales.42", gomock.Any()).
		DoAndReturn(func(ctx context.Context, subject string, data []byte, opts ...jetstream.PublishOpt) (*jetstream.PubAck, error) {
			var got domain.SaleEvent
			require.NoError(t, json.Unmarshal(data, &got))
			assert.Equal(t, event.Id, got.Id)
			assert.Equal(t, event.TokenId, got.TokenId)
			assert.True(t, got.Price.Equal(event.Price))
			assert.Equal(t, event.BlockNumber, got.BlockNumber)
			return &jetstream.PubAck{Stream: "MARKET", Sequence: 7}, nil
		})

	p := NewJetStreamPublisher(js, adapter.NewJSON(), "market")

	err := p.PublishSaleEvent(context.Background(), event)
	assert.NoError(t, err)
}

func TestPublishSaleEvent_MarshalError(t *testing.T) {
	ctrl := gomock.NewController(t)
	js := mocks.NewMockJetStream(ctrl)
	codec := mocks.NewMockJSON(ctrl)

	// No Publish expectation: a payload that fails to encode never
	// reaches the stream.
	codec.EXPECT().
		Marshal(gomock.Any()).
		Return(nil, errors.New("unsupported type"))

	p := NewJetStreamPublisher(js, codec, "market")

	err := p.PublishSaleEvent(context.Background(), newTestSaleEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to marshal sale event")
}

func TestPublishSaleEvent_PublishError(t *testing.T) {
	ctrl := gomock.NewController(t)
	js := mocks.NewMockJetStream(ctrl)

	js.EXPECT().
		Publish(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("no responders available"))

	p := NewJetStreamPublisher(js, adapter.NewJSON(), "market")

	err := p.PublishSaleEvent(context.Background(), newTestSaleEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to publish sale event")
}
