package usecase

import (
	"github.com/imobsites/crm-board/internal/entity"
)

// Project deriva a lista renderizável de uma coluna, mesclando a
// ordenação manual com o conteúdo vivo dos leads.
//
// Precedência:
//  1. coluna sem ordenação registrada → ordem natural da coleção;
//  2. IDs da ordenação, ignorando os que não acham mais lead
//     (movido/apagado — tolerado, não é erro);
//  3. leads da coluna ainda fora da ordenação entram no fim (janela
//     entre a chegada do lead e a próxima reconciliação);
//  4. dedup por ID, primeira ocorrência vence.
//
// Derivação pura: nunca falha, se auto-corrige filtrando.
func Project(col entity.ColumnID, leads []entity.Lead, order entity.ColumnOrder) []entity.Lead {
	byID := make(map[string]entity.Lead, len(leads))
	for _, lead := range leads {
		if _, dup := byID[lead.ID]; dup {
			continue
		}
		byID[lead.ID] = lead
	}

	seen := make(map[string]bool)
	var out []entity.Lead

	appendLead := func(lead entity.Lead) {
		if seen[lead.ID] {
			return
		}
		seen[lead.ID] = true
		out = append(out, lead)
	}

	ordered := order[col]
	if len(ordered) == 0 {
		for _, lead := range leads {
			if entity.ResolveColumn(lead.StatusLead) == col {
				appendLead(lead)
			}
		}
		return out
	}

	for _, id := range ordered {
		if lead, ok := byID[id]; ok {
			appendLead(lead)
		}
	}

	for _, lead := range leads {
		if entity.ResolveColumn(lead.StatusLead) == col {
			appendLead(lead)
		}
	}

	return out
}
