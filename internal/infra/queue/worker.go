package queue

import (
	"context"
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/imobsites/crm-board/internal/usecase"
)

// Worker consome a fila de gravações e chama o endpoint remoto de
// verdade (POST /api/clientes). Como só a versão mais nova da ordenação
// importa, mensagem que falha vai para a DLQ em vez de reenfileirar:
// a próxima mutação do quadro publica um payload mais fresco.
type Worker struct {
	Channel   *amqp.Channel
	Persister usecase.OrderPersister
}

func NewWorker(ch *amqp.Channel, persister usecase.OrderPersister) *Worker {
	return &Worker{
		Channel:   ch,
		Persister: persister,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName, // fila
		"",        // consumer
		false,     // auto-ack (manual é mais seguro)
		false,     // exclusive
		false,     // no-local
		false,     // no-wait
		nil,       // args
	)
	if err != nil {
		log.Fatalf("❌ Falha ao registrar consumidor RabbitMQ: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload OrderSavePayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("❌ [WORKER] JSON inválido: %s", err)
				// Mensagem podre (malformada). Rejeita sem requeue para não travar a fila.
				d.Nack(false, false)
				continue
			}

			log.Printf("⚙️ [WORKER] Persistindo ordenação (msg %s)", payload.MessageID)

			if err := w.Persister.SaveOrder(context.Background(), payload.Order); err != nil {
				log.Printf("❌ [WORKER] Falha na persistência remota: %s", err)
				d.Nack(false, false)
			} else {
				log.Printf("✅ [WORKER] Ordenação persistida (msg %s)", payload.MessageID)
				d.Ack(false)
			}
		}
	}()

	log.Printf(" [*] Worker rodando e aguardando na fila '%s'", queueName)
	<-forever
}
