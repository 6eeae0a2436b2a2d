package usecase

import (
	"github.com/imobsites/crm-board/internal/entity"
)

// MoveResult é o efeito de um gesto de arrasto sobre o quadro.
type MoveResult struct {
	Order entity.ColumnOrder
	// Moved indica se algo mudou (gesto sem destino é no-op).
	Moved bool
	// StatusChanged indica movimento entre colunas; NewStatus é o
	// status que o lead arrastado deve assumir.
	StatusChanged bool
	NewStatus     entity.StatusLead
}

// ApplyMove aplica um gesto de drag-and-drop à ordenação.
//
// Mesma coluna: só reposiciona, status intacto. Colunas diferentes:
// remove da origem, insere no índice pedido do destino e sinaliza a
// troca de status (coluna direta mapeia 1:1 para status). A entrada
// nunca é mutada; o chamador aplica Order e NewStatus aos stores.
func ApplyMove(current entity.ColumnOrder, input MoveInput) MoveResult {
	if input.SemDestino || !input.Destino.Valid() || !input.Origem.Valid() || input.LeadID == "" {
		return MoveResult{Order: current, Moved: false}
	}

	order := current.Clone()

	// Remove o lead de onde quer que esteja na coluna de origem; o
	// índice informado pode estar defasado se houve reconciliação no
	// meio do gesto.
	src := order[input.Origem]
	filtered := make([]string, 0, len(src))
	for _, id := range src {
		if id != input.LeadID {
			filtered = append(filtered, id)
		}
	}
	order[input.Origem] = filtered

	dst := order[input.Destino]
	idx := input.DestinoIndex
	if idx < 0 {
		idx = 0
	}
	if idx > len(dst) {
		idx = len(dst)
	}

	inserted := make([]string, 0, len(dst)+1)
	inserted = append(inserted, dst[:idx]...)
	inserted = append(inserted, input.LeadID)
	inserted = append(inserted, dst[idx:]...)
	order[input.Destino] = inserted

	result := MoveResult{Order: order, Moved: true}
	if input.Origem != input.Destino {
		result.StatusChanged = true
		result.NewStatus = input.Destino.Status()
	}

	return result
}
