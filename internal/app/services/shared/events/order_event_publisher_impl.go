package events

import (
	"context"
	"labdash-service/internal/app/contracts"
	"labdash-service/internal/pkg/constvars"
	"labdash-service/internal/pkg/exceptions"
	"labdash-service/internal/pkg/utils"
	"time"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type orderEventPublisher struct {
	Channel *amqp091.Channel
	Queue   string
	Log     *zap.Logger
}

type orderEvent struct {
	EventID   string      `json:"event_id"`
	EventType string      `json:"event_type"`
	OrderID   string      `json:"order_id"`
	EmittedAt time.Time   `json:"emitted_at"`
	Payload   interface{} `json:"payload,omitempty"`
}

func NewOrderEventPublisher(rabbitMQConnection *amqp091.Connection, queue string, logger *zap.Logger) (contracts.OrderEventPublisher, error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, err
	}

	_, err = channel.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		return nil, err
	}

	return &orderEventPublisher{
		Channel: channel,
		Queue:   queue,
		Log:     logger,
	}, nil
}

func (p *orderEventPublisher) Publish(ctx context.Context, eventType, orderID string, payload interface{}) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	event := orderEvent{
		EventID:   utils.GenerateEventID(),
		EventType: eventType,
		OrderID:   orderID,
		EmittedAt: time.Now().UTC(),
		Payload:   payload,
	}
	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
	}

	err = p.Channel.PublishWithContext(ctx, "", p.Queue, false, false, message)
	if err != nil {
		p.Log.Error("orderEventPublisher.Publish failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEventKey, eventType),
			zap.String(constvars.LoggingOrderIDKey, orderID),
			zap.Error(err),
		)
		return exceptions.ErrRabbitMQPublishMessage(err, p.Queue)
	}

	p.Log.Info("orderEventPublisher.Publish succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEventKey, eventType),
		zap.String(constvars.LoggingOrderIDKey, orderID),
	)
	return nil
}

// NoopOrderEventPublisher satisfies the publisher contract when the broker is
// disabled. Order flows proceed without emitting events.
type NoopOrderEventPublisher struct{}

func NewNoopOrderEventPublisher() contracts.OrderEventPublisher {
	return NoopOrderEventPublisher{}
}

func (NoopOrderEventPublisher) Publish(ctx context.Context, eventType, orderID string, payload interface{}) error {
	return nil
}
