package noop

import (
	"context"

	"github.com/Mukunt07/subramaniya-mess/internal/mq"
)

// Publisher implements mq.Publisher but does nothing. Used in dev mode when
// no broker is running; activity events are best-effort anyway.
type Publisher struct{}

func NewPublisher() *Publisher {
	return &Publisher{}
}

func (p *Publisher) Publish(ctx context.Context, topic string, body []byte) error {
	return nil
}

func (p *Publisher) Close() {}

var _ mq.Publisher = (*Publisher)(nil)
