package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/imobsites/crm-board/internal/board"
	"github.com/imobsites/crm-board/internal/entity"
	"github.com/imobsites/crm-board/internal/infra/http/middleware"
	"github.com/imobsites/crm-board/internal/usecase"
)

// BoardHandler é a superfície HTTP que o painel consome: projeção das
// colunas e o evento de arrasto. O CRUD de leads em si continua no
// serviço de clientes.
type BoardHandler struct {
	Store  *board.Store
	Loader *board.Loader
}

func NewBoardHandler(store *board.Store, loader *board.Loader) *BoardHandler {
	return &BoardHandler{Store: store, Loader: loader}
}

type ColumnView struct {
	entity.Column
	Leads []entity.Lead `json:"leads"`
}

type BoardResponse struct {
	Success bool         `json:"success"`
	Fase    board.Phase  `json:"fase"`
	Colunas []ColumnView `json:"colunas,omitempty"`
	Error   string       `json:"error,omitempty"`
	Message string       `json:"message,omitempty"`
}

// HandleGetBoard devolve as 4 colunas projetadas.
func (h *BoardHandler) HandleGetBoard(w http.ResponseWriter, r *http.Request) {
	snap := h.Store.State()

	colunas := make([]ColumnView, 0, len(entity.Topology()))
	for _, col := range entity.Topology() {
		colunas = append(colunas, ColumnView{
			Column: col,
			Leads:  usecase.Project(col.ID, snap.Leads, snap.Order),
		})
	}

	writeJSON(w, http.StatusOK, BoardResponse{
		Success: true,
		Fase:    snap.Phase,
		Colunas: colunas,
	})
}

// HandleGetColumn devolve uma coluna projetada.
func (h *BoardHandler) HandleGetColumn(w http.ResponseWriter, r *http.Request) {
	col := entity.ColumnID(strings.ToUpper(chi.URLParam(r, "coluna")))
	if !col.Valid() {
		writeJSON(w, http.StatusNotFound, BoardResponse{
			Success: false,
			Error:   usecase.ErrColunaInvalida.Message,
		})
		return
	}

	snap := h.Store.State()

	var meta entity.Column
	for _, c := range entity.Topology() {
		if c.ID == col {
			meta = c
			break
		}
	}

	writeJSON(w, http.StatusOK, BoardResponse{
		Success: true,
		Fase:    snap.Phase,
		Colunas: []ColumnView{{
			Column: meta,
			Leads:  usecase.Project(col, snap.Leads, snap.Order),
		}},
	})
}

// HandleMove aplica um gesto de arrasto. A resposta já traz o quadro
// pós-movimento (atualização otimista: a persistência remota segue em
// segundo plano e não segura esta resposta).
func (h *BoardHandler) HandleMove(w http.ResponseWriter, r *http.Request) {
	var input usecase.MoveInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, BoardResponse{
			Success: false,
			Error:   "JSON inválido",
		})
		return
	}

	if errs := usecase.ValidateMoveInput(input); len(errs) > 0 {
		msgs := make([]string, 0, len(errs))
		for _, e := range errs {
			msgs = append(msgs, e.Error())
		}
		writeJSON(w, http.StatusBadRequest, BoardResponse{
			Success: false,
			Error:   strings.Join(msgs, "; "),
		})
		return
	}

	if input.SemDestino {
		// Soltou fora do quadro: gesto cancelado, nada muda.
		writeJSON(w, http.StatusOK, BoardResponse{
			Success: true,
			Fase:    h.Store.State().Phase,
			Message: "gesto sem destino ignorado",
		})
		return
	}

	h.Store.Dispatch(board.EventDragEnd{Move: input})

	if input.Origem == input.Destino {
		middleware.RecordLeadMove("reorder")
	} else {
		middleware.RecordLeadMove("cross_column")
	}

	h.HandleGetBoard(w, r)
}

// HandleRefresh força uma nova busca de leads no serviço de clientes.
func (h *BoardHandler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	if err := h.Loader.RefreshLeads(r.Context()); err != nil {
		writeJSON(w, http.StatusBadGateway, BoardResponse{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	h.HandleGetBoard(w, r)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
