package events

import (
	"context"
	"sync"
	"time"

	"avalia-service/internal/app/contracts"
	"avalia-service/internal/pkg/constvars"
	"avalia-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// BatteryCompletedMessage is the payload published when a battery is completed.
type BatteryCompletedMessage struct {
	BatteryID   string    `json:"id_bateria"`
	CompletedAt time.Time `json:"completado_em"`
}

type batteryEventPublisher struct {
	ch    *amqp.Channel
	log   *zap.Logger
	queue string
	mu    sync.Mutex
}

// NewBatteryEventPublisher opens a channel and declares the durable
// completion queue so publishing never races the consumer's declaration.
func NewBatteryEventPublisher(conn *amqp.Connection, log *zap.Logger, queue string) (contracts.EventPublisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		queue,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, err
	}

	return &batteryEventPublisher{
		ch:    ch,
		log:   log,
		queue: queue,
	}, nil
}

func (p *batteryEventPublisher) PublishBatteryCompleted(ctx context.Context, batteryID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	p.log.Info("BatteryEventPublisher.PublishBatteryCompleted called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("battery_id", batteryID),
	)

	body, err := json.Marshal(BatteryCompletedMessage{
		BatteryID:   batteryID,
		CompletedAt: time.Now().UTC(),
	})
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	msg := amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp.Persistent,
	}
	if err := p.ch.PublishWithContext(ctx, "", p.queue, false, false, msg); err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.queue)
	}
	return nil
}
