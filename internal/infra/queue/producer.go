package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/imobsites/crm-board/internal/entity"
)

// OrderSavePayload é a mensagem de gravação de ordenação. MessageID
// permite rastrear a mensagem do outbox até a DLQ.
type OrderSavePayload struct {
	MessageID string             `json:"message_id"`
	Order     entity.ColumnOrder `json:"order"`
	SavedAt   time.Time          `json:"saved_at"`
}

// RabbitMQProducer implementa usecase.OrderPersister publicando a
// gravação na fila; quem chama o endpoint remoto de fato é o Worker.
type RabbitMQProducer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewProducer(conn *amqp.Connection, ch *amqp.Channel) *RabbitMQProducer {
	return &RabbitMQProducer{
		Conn: conn,
		Ch:   ch,
	}
}

func (p *RabbitMQProducer) SaveOrder(ctx context.Context, order entity.ColumnOrder) error {
	payload := OrderSavePayload{
		MessageID: uuid.New().String(),
		Order:     order,
		SavedAt:   time.Now(),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("erro ao converter payload: %v", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // Mandatory
		false, // Immediate
		amqp.Publishing{
			ContentType:  "application/json",
			MessageId:    payload.MessageID,
			Body:         body,
			DeliveryMode: amqp.Persistent, // Mensagem salva no disco (segurança!)
		},
	)

	if err != nil {
		return fmt.Errorf("falha ao publicar no RabbitMQ: %v", err)
	}

	return nil
}
