package usecase

import (
	"github.com/imobsites/crm-board/internal/entity"
)

// ReconcileResult carrega a ordenação sincronizada e quais colunas mudaram,
// para a persistência pular colunas intactas.
type ReconcileResult struct {
	Order   entity.ColumnOrder
	Changed []entity.ColumnID
}

func (r ReconcileResult) Dirty() bool {
	return len(r.Changed) > 0
}

// Reconcile sincroniza a ordenação manual com a coleção viva de leads.
//
// Regras, por coluna da topologia:
//   - a coluna sempre existe no resultado (vazia se preciso);
//   - IDs já ordenados que continuam pertencendo à coluna mantêm a
//     posição relativa escolhida pelo usuário;
//   - IDs cujo lead sumiu ou mudou de coluna são podados;
//   - duplicatas herdadas de gravações antigas ficam com a primeira
//     ocorrência;
//   - leads recém-chegados entram no fim, na ordem da coleção.
//
// A operação é idempotente e não tem entrada inválida: qualquer combinação
// de leads/ordenação produz um resultado consistente.
func Reconcile(leads []entity.Lead, current entity.ColumnOrder) ReconcileResult {
	// Pertencimento esperado por coluna, na ordem de iteração da coleção.
	expected := make(map[entity.ColumnID][]string, len(entity.ColumnIDs()))
	member := make(map[entity.ColumnID]map[string]bool, len(entity.ColumnIDs()))
	for _, col := range entity.ColumnIDs() {
		expected[col] = nil
		member[col] = make(map[string]bool)
	}
	for _, lead := range leads {
		col := entity.ResolveColumn(lead.StatusLead)
		if member[col][lead.ID] {
			continue
		}
		member[col][lead.ID] = true
		expected[col] = append(expected[col], lead.ID)
	}

	result := ReconcileResult{Order: entity.NewColumnOrder()}

	for _, col := range entity.ColumnIDs() {
		kept := make([]string, 0, len(expected[col]))
		seen := make(map[string]bool, len(expected[col]))

		// Sobreviventes preservam a ordem manual.
		for _, id := range current[col] {
			if !member[col][id] || seen[id] {
				continue
			}
			seen[id] = true
			kept = append(kept, id)
		}

		// Novos entram no fim.
		for _, id := range expected[col] {
			if seen[id] {
				continue
			}
			seen[id] = true
			kept = append(kept, id)
		}

		result.Order[col] = kept

		if !result.Order.ColumnEqual(current, col) {
			result.Changed = append(result.Changed, col)
		}
	}

	return result
}
