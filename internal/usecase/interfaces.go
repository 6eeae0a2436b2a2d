package usecase

import (
	"context"

	"github.com/imobsites/crm-board/internal/entity"
)

// LeadGateway busca a coleção de leads no serviço de clientes (GET /api/clientes).
type LeadGateway interface {
	FetchLeads(ctx context.Context) ([]entity.Lead, error)
}

// OrderPersister grava a ordenação manual no endpoint remoto (POST /api/clientes).
type OrderPersister interface {
	SaveOrder(ctx context.Context, order entity.ColumnOrder) error
}

// OrderCache é o cache local da ordenação (chave kanbanColumnOrder).
// Load devolve (nil, nil) quando nunca houve gravação.
type OrderCache interface {
	Load(ctx context.Context) (entity.ColumnOrder, error)
	Save(ctx context.Context, order entity.ColumnOrder) error
}

// EmailService avisa a equipe quando um lead chega em VISITA.
type EmailService interface {
	SendVisitAlert(to string, lead entity.Lead) error
}
