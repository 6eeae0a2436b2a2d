package board

import (
	"github.com/imobsites/crm-board/internal/entity"
	"github.com/imobsites/crm-board/internal/usecase"
)

// Event é uma transição discreta do quadro. Todas as mutações de estado
// passam por Store.Dispatch com um destes tipos.
type Event interface {
	isEvent()
}

// EventLeadsLoaded: uma busca de leads terminou. Seq é a sequência
// emitida por Store.NextFetchSeq na hora do disparo da busca; respostas
// de buscas já superadas são descartadas. Seq 0 = sem sequenciamento.
type EventLeadsLoaded struct {
	Seq   uint64
	Leads []entity.Lead
}

// EventOrderLoaded: o cache local (ou o endpoint remoto) entregou a
// ordenação persistida. Order nula significa primeira sessão.
type EventOrderLoaded struct {
	Order entity.ColumnOrder
}

// EventDragEnd: o usuário soltou um card.
type EventDragEnd struct {
	Move usecase.MoveInput
}

// EventLeadUpserted: um lead chegou ou mudou fora do fluxo de busca
// (formulário do painel, webhook).
type EventLeadUpserted struct {
	Lead entity.Lead
}

// EventLeadRemoved: um lead foi apagado upstream.
type EventLeadRemoved struct {
	ID string
}

func (EventLeadsLoaded) isEvent()  {}
func (EventOrderLoaded) isEvent()  {}
func (EventDragEnd) isEvent()      {}
func (EventLeadUpserted) isEvent() {}
func (EventLeadRemoved) isEvent()  {}
