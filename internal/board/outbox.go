package board

import (
	"context"
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/imobsites/crm-board/internal/entity"
	"github.com/imobsites/crm-board/internal/usecase"
)

// Outbox persiste a ordenação sem bloquear a UI: o cache local é escrito
// na hora e a gravação remota roda em segundo plano, com no máximo um
// job em voo — enfileirar de novo durante um job substitui o payload
// pendente (só a versão mais nova interessa).
//
// Falha de persistência nunca reverte o estado em memória: perder a
// ordenação manual do usuário é pior que perder uma rodada de gravação.
// O próximo enqueue tenta de novo implicitamente.
type Outbox struct {
	cache  usecase.OrderCache
	remote usecase.OrderPersister

	mu       sync.Mutex
	cond     *sync.Cond
	inflight bool
	pending  entity.ColumnOrder

	onError func(stage string, err error)
}

type OutboxOption func(*Outbox)

// WithErrorHook registra o callback de falha de persistência (métricas,
// notificação ao usuário). Recebe o estágio: "cache" ou "remote".
func WithErrorHook(fn func(stage string, err error)) OutboxOption {
	return func(o *Outbox) { o.onError = fn }
}

func NewOutbox(cache usecase.OrderCache, remote usecase.OrderPersister, opts ...OutboxOption) *Outbox {
	o := &Outbox{cache: cache, remote: remote}
	o.cond = sync.NewCond(&o.mu)
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Enqueue grava o cache local e agenda a gravação remota. Retorna antes
// da gravação remota terminar.
func (o *Outbox) Enqueue(order entity.ColumnOrder) {
	if o.cache != nil {
		if err := o.cache.Save(context.Background(), order); err != nil {
			log.Printf("⚠️ [OUTBOX] Falha ao gravar cache local: %v", err)
			o.fail("cache", err)
		}
	}

	if o.remote == nil {
		return
	}

	o.mu.Lock()
	if o.inflight {
		o.pending = order
		o.mu.Unlock()
		return
	}
	o.inflight = true
	o.mu.Unlock()

	go o.run(order)
}

func (o *Outbox) run(order entity.ColumnOrder) {
	for {
		job := uuid.New().String()[:8]
		if err := o.remote.SaveOrder(context.Background(), order); err != nil {
			log.Printf("❌ [OUTBOX] Job %s falhou ao persistir ordenação: %v", job, err)
			o.fail("remote", err)
		} else {
			log.Printf("📤 [OUTBOX] Job %s persistiu a ordenação", job)
		}

		o.mu.Lock()
		if o.pending != nil {
			order = o.pending
			o.pending = nil
			o.mu.Unlock()
			continue
		}
		o.inflight = false
		o.cond.Broadcast()
		o.mu.Unlock()
		return
	}
}

func (o *Outbox) fail(stage string, err error) {
	if o.onError != nil {
		o.onError(stage, err)
	}
}

// Flush bloqueia até o outbox esvaziar. Uso em testes e shutdown.
func (o *Outbox) Flush() {
	o.mu.Lock()
	for o.inflight {
		o.cond.Wait()
	}
	o.mu.Unlock()
}
