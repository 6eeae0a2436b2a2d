package testserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/imobsites/crm-board/internal/entity"
	"github.com/imobsites/crm-board/internal/usecase"
)

// ClientesServer é um dublê em memória do serviço de clientes do painel,
// honrando o contrato de GET/POST /api/clientes. Usado pelos testes do
// cliente HTTP e pelos cenários ponta a ponta.
type ClientesServer struct {
	Server *httptest.Server

	mu          sync.Mutex
	leads       []usecase.LeadPayload
	savedOrders []entity.ColumnOrder

	// FailSaves faz o POST recusar gravações (simula persistência fora do ar).
	FailSaves bool
	// FailList faz o GET devolver o envelope de erro.
	FailList bool
}

func New(t *testing.T, leads []usecase.LeadPayload) *ClientesServer {
	t.Helper()

	cs := &ClientesServer{leads: leads}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/clientes", cs.handle)
	cs.Server = httptest.NewServer(mux)

	t.Cleanup(cs.Server.Close)

	return cs
}

func (cs *ClientesServer) URL() string {
	return cs.Server.URL
}

func (cs *ClientesServer) handle(w http.ResponseWriter, r *http.Request) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")

	switch r.Method {
	case http.MethodGet:
		if cs.FailList {
			json.NewEncoder(w).Encode(map[string]any{
				"success": false,
				"data":    nil,
				"error":   "banco indisponível",
			})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data":    cs.leads,
		})

	case http.MethodPost:
		if cs.FailSaves {
			json.NewEncoder(w).Encode(map[string]any{
				"success": false,
				"error":   "gravação recusada",
			})
			return
		}
		var body struct {
			Order entity.ColumnOrder `json:"order"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]any{"success": false, "error": "JSON inválido"})
			return
		}
		cs.savedOrders = append(cs.savedOrders, body.Order.Clone())
		json.NewEncoder(w).Encode(map[string]any{"success": true, "message": "ordenação salva"})

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// SetLeads troca a coleção devolvida pelo GET.
func (cs *ClientesServer) SetLeads(leads []usecase.LeadPayload) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.leads = leads
}

// SavedOrders devolve as ordenações recebidas via POST, na ordem.
func (cs *ClientesServer) SavedOrders() []entity.ColumnOrder {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	out := make([]entity.ColumnOrder, len(cs.savedOrders))
	copy(out, cs.savedOrders)
	return out
}

// LastOrder devolve a última ordenação persistida, ou nil.
func (cs *ClientesServer) LastOrder() entity.ColumnOrder {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	if len(cs.savedOrders) == 0 {
		return nil
	}
	return cs.savedOrders[len(cs.savedOrders)-1]
}
