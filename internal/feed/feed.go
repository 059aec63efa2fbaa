// Package feed is the production write path: a Kafka consumer that
// decodes trades from a topic and stores them, so the query service can
// run against live data instead of the seeded snapshot.
package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"tradedesk/internal/model"
	"tradedesk/internal/repository"
	"tradedesk/internal/ws"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"github.com/sirupsen/logrus"
)

const pollTimeout = 500 * time.Millisecond

type Config struct {
	Broker  string
	Topic   string
	GroupID string
}

type Feed struct {
	consumer *kafka.Consumer
	repo     repository.TradeRepository
	hub      *ws.Hub
	logger   *logrus.Logger
}

func New(cfg Config, repo repository.TradeRepository, hub *ws.Hub, logger *logrus.Logger) (*Feed, error) {
	consumer, err := kafka.NewConsumer(&kafka.ConfigMap{
		"bootstrap.servers": cfg.Broker,
		"group.id":          cfg.GroupID,
		"auto.offset.reset": "earliest",
	})
	if err != nil {
		return nil, fmt.Errorf("creating Kafka consumer: %w", err)
	}
	if err := consumer.SubscribeTopics([]string{cfg.Topic}, nil); err != nil {
		consumer.Close()
		return nil, fmt.Errorf("subscribing to %s: %w", cfg.Topic, err)
	}

	return &Feed{
		consumer: consumer,
		repo:     repo,
		hub:      hub,
		logger:   logger,
	}, nil
}

// Run consumes trades until the context is cancelled. Records that fail
// validation or carry an already-stored id are logged and skipped; the
// feed never overwrites an existing trade.
func (f *Feed) Run(ctx context.Context) error {
	f.logger.Infof("trade feed started (topic subscription active)")

	for {
		select {
		case <-ctx.Done():
			f.logger.Info("trade feed shutting down")
			return f.consumer.Close()
		default:
			msg, err := f.consumer.ReadMessage(pollTimeout)
			if err != nil {
				var kerr kafka.Error
				if errors.As(err, &kerr) && kerr.IsTimeout() {
					continue
				}
				f.logger.Errorf("reading trade message: %v", err)
				continue
			}
			f.ingest(msg.Value)
		}
	}
}

func (f *Feed) ingest(payload []byte) {
	var trade model.Trade
	if err := json.Unmarshal(payload, &trade); err != nil {
		f.logger.Warnf("dropping undecodable trade message: %v", err)
		return
	}
	if err := trade.Validate(); err != nil {
		f.logger.Warnf("dropping invalid trade %q: %v", trade.TradeID, err)
		return
	}
	if err := f.repo.Put(&trade); err != nil {
		f.logger.Warnf("dropping trade %q: %v", trade.TradeID, err)
		return
	}
	if f.hub != nil {
		f.hub.Broadcast(trade)
	}
}
