package board

import (
	"log"
	"sync"

	"github.com/imobsites/crm-board/internal/entity"
	"github.com/imobsites/crm-board/internal/usecase"
)

// Phase é o estado de prontidão do quadro. A reconciliação só roda em
// READY, alcançado quando a carga da ordenação E uma carga não-vazia de
// leads já aconteceram — as duas corridas de inicialização não podem
// carimbar uma ordenação vazia por cima de uma recém-carregada.
type Phase string

const (
	PhaseInit    Phase = "INIT"
	PhaseLoading Phase = "LOADING"
	PhaseReady   Phase = "READY"
)

// Snapshot é uma visão imutável do estado para renderização.
type Snapshot struct {
	Phase Phase
	Leads []entity.Lead
	Order entity.ColumnOrder
}

// Store é o contêiner de estado do quadro, no estilo reducer: todo o
// estado mutável (coleção de leads + ordenação + fase) vive aqui e só
// muda via Dispatch. Assinantes são avisados após cada transição.
type Store struct {
	mu sync.Mutex

	phase       Phase
	leads       []entity.Lead
	order       entity.ColumnOrder
	leadsLoaded bool
	orderLoaded bool

	issuedSeq uint64

	outbox      *Outbox
	onVisita    func(entity.Lead)
	onReconcile func(changed int)
	subs        []func(Snapshot)
}

type StoreOption func(*Store)

// WithVisitAlert registra o gancho chamado quando um arrasto leva um
// lead para VISITA. Roda fora do lock, melhor esforço.
func WithVisitAlert(fn func(entity.Lead)) StoreOption {
	return func(s *Store) { s.onVisita = fn }
}

// WithReconcileHook registra o callback chamado quando uma reconciliação
// altera colunas (métricas). Recebe quantas colunas mudaram.
func WithReconcileHook(fn func(changed int)) StoreOption {
	return func(s *Store) { s.onReconcile = fn }
}

func NewStore(outbox *Outbox, opts ...StoreOption) *Store {
	s := &Store{
		phase:  PhaseInit,
		order:  entity.NewColumnOrder(),
		outbox: outbox,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NextFetchSeq emite a sequência de uma nova busca de leads. A resposta
// correspondente deve chegar em EventLeadsLoaded com esse valor; se uma
// busca mais nova já foi emitida, a resposta velha é descartada em vez
// de atropelar um arrasto feito no intervalo.
func (s *Store) NextFetchSeq() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.issuedSeq++
	return s.issuedSeq
}

func (s *Store) Subscribe(fn func(Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// State devolve uma cópia do estado atual.
func (s *Store) State() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() Snapshot {
	return Snapshot{
		Phase: s.phase,
		Leads: append([]entity.Lead{}, s.leads...),
		Order: s.order.Clone(),
	}
}

// Dispatch aplica um evento ao estado. Transições são síncronas
// (atualização otimista); persistência sai pelo outbox depois, sem
// bloquear nem reverter o estado em caso de falha.
func (s *Store) Dispatch(ev Event) {
	s.mu.Lock()

	switch e := ev.(type) {
	case EventOrderLoaded:
		s.applyOrderLoaded(e)
	case EventLeadsLoaded:
		if e.Seq != 0 && e.Seq < s.issuedSeq {
			log.Printf("⚠️ [BOARD] Busca de leads obsoleta descartada (seq %d < %d)", e.Seq, s.issuedSeq)
			s.mu.Unlock()
			return
		}
		s.applyLeadsLoaded(e)
	case EventDragEnd:
		visita := s.applyDragEnd(e)
		if visita != nil && s.onVisita != nil {
			lead := *visita
			defer s.onVisita(lead)
		}
	case EventLeadUpserted:
		s.applyLeadUpserted(e)
	case EventLeadRemoved:
		s.applyLeadRemoved(e)
	}

	snap := s.snapshotLocked()
	subs := append([]func(Snapshot){}, s.subs...)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
}

func (s *Store) applyOrderLoaded(e EventOrderLoaded) {
	if e.Order == nil {
		s.order = entity.NewColumnOrder()
	} else {
		s.order = e.Order.Clone()
	}
	s.orderLoaded = true
	s.advancePhase()
	s.reconcileLocked()
}

func (s *Store) applyLeadsLoaded(e EventLeadsLoaded) {
	s.leads = append([]entity.Lead{}, e.Leads...)
	if len(s.leads) > 0 {
		s.leadsLoaded = true
	}
	s.advancePhase()
	s.reconcileLocked()
}

// applyDragEnd devolve o lead movido quando ele acabou de chegar em
// VISITA, para o gancho de notificação.
func (s *Store) applyDragEnd(e EventDragEnd) *entity.Lead {
	if s.phase != PhaseReady {
		log.Printf("⚠️ [BOARD] Arrasto ignorado antes do quadro carregar (fase %s)", s.phase)
		return nil
	}

	res := usecase.ApplyMove(s.order, e.Move)
	if !res.Moved {
		return nil
	}
	s.order = res.Order

	var moved *entity.Lead
	if res.StatusChanged {
		for i := range s.leads {
			if s.leads[i].ID == e.Move.LeadID {
				s.leads[i].StatusLead = res.NewStatus
				moved = &s.leads[i]
				break
			}
		}
	}

	// O payload persistido sempre reflete o estado pós-movimento: o
	// clone sai daqui, nunca de um closure velho.
	s.outbox.Enqueue(s.order.Clone())

	if moved != nil && res.NewStatus == entity.StatusVisita {
		lead := *moved
		return &lead
	}
	return nil
}

func (s *Store) applyLeadUpserted(e EventLeadUpserted) {
	replaced := false
	for i := range s.leads {
		if s.leads[i].ID == e.Lead.ID {
			s.leads[i] = e.Lead
			replaced = true
			break
		}
	}
	if !replaced {
		s.leads = append(s.leads, e.Lead)
	}
	if len(s.leads) > 0 {
		s.leadsLoaded = true
		s.advancePhase()
	}
	s.reconcileLocked()
}

func (s *Store) applyLeadRemoved(e EventLeadRemoved) {
	kept := s.leads[:0]
	for _, lead := range s.leads {
		if lead.ID != e.ID {
			kept = append(kept, lead)
		}
	}
	s.leads = kept
	s.reconcileLocked()
}

func (s *Store) advancePhase() {
	switch {
	case s.leadsLoaded && s.orderLoaded:
		s.phase = PhaseReady
	case s.leadsLoaded || s.orderLoaded:
		s.phase = PhaseLoading
	}
}

// reconcileLocked sincroniza a ordenação com a coleção atual. Só produz
// efeito em READY; colunas intactas não disparam persistência.
func (s *Store) reconcileLocked() {
	if s.phase != PhaseReady {
		return
	}

	res := usecase.Reconcile(s.leads, s.order)
	if !res.Dirty() {
		return
	}

	log.Printf("🔄 [BOARD] Reconciliação alterou %d coluna(s)", len(res.Changed))
	s.order = res.Order
	if s.onReconcile != nil {
		s.onReconcile(len(res.Changed))
	}
	s.outbox.Enqueue(s.order.Clone())
}
