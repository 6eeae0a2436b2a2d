package board

import (
	"context"
	"log"
	"sync"

	"github.com/imobsites/crm-board/internal/usecase"
)

// Loader executa as cargas de inicialização do quadro: a coleção de
// leads (remota) e a ordenação persistida (cache local). As duas correm
// em paralelo; o gate de prontidão fica no Store.
type Loader struct {
	store   *Store
	gateway usecase.LeadGateway
	cache   usecase.OrderCache
}

func NewLoader(store *Store, gateway usecase.LeadGateway, cache usecase.OrderCache) *Loader {
	return &Loader{store: store, gateway: gateway, cache: cache}
}

// Mount dispara as duas cargas e espera ambas terminarem. Erros não são
// fatais: o quadro continua interativo com o que tiver; devolve o
// primeiro erro só para notificação.
func (l *Loader) Mount(ctx context.Context) error {
	var wg sync.WaitGroup
	var mu sync.Mutex
	var first error

	record := func(err error) {
		if err == nil {
			return
		}
		mu.Lock()
		if first == nil {
			first = err
		}
		mu.Unlock()
	}

	wg.Add(2)
	go func() {
		defer wg.Done()
		record(l.LoadOrder(ctx))
	}()
	go func() {
		defer wg.Done()
		record(l.RefreshLeads(ctx))
	}()
	wg.Wait()

	return first
}

// RefreshLeads busca a coleção no serviço de clientes e despacha o
// resultado. A sequência é emitida ANTES da chamada de rede: se outra
// busca for disparada no meio, esta resposta será descartada pelo Store.
func (l *Loader) RefreshLeads(ctx context.Context) error {
	seq := l.store.NextFetchSeq()

	leads, err := l.gateway.FetchLeads(ctx)
	if err != nil {
		log.Printf("❌ [BOARD] Falha ao buscar leads: %v", err)
		return &usecase.TechnicalError{Code: "LEADS_FETCH", Message: "não foi possível carregar os leads"}
	}

	l.store.Dispatch(EventLeadsLoaded{Seq: seq, Leads: leads})
	return nil
}

// LoadOrder lê a ordenação do cache local. Falha de leitura vale como
// "sem ordenação salva": o quadro segue com ordem natural e o usuário
// recebe só um aviso.
func (l *Loader) LoadOrder(ctx context.Context) error {
	order, err := l.cache.Load(ctx)
	if err != nil {
		log.Printf("⚠️ [BOARD] Falha ao ler ordenação do cache: %v", err)
		l.store.Dispatch(EventOrderLoaded{})
		return &usecase.TechnicalError{Code: "ORDER_LOAD", Message: "não foi possível ler a ordenação salva"}
	}

	l.store.Dispatch(EventOrderLoaded{Order: order})
	return nil
}
