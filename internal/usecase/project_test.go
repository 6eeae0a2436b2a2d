package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/imobsites/crm-board/internal/entity"
)

func idsOf(leads []entity.Lead) []string {
	ids := make([]string, 0, len(leads))
	for _, l := range leads {
		ids = append(ids, l.ID)
	}
	return ids
}

func TestProjectFollowsManualOrder(t *testing.T) {
	leads := []entity.Lead{
		lead("1", entity.StatusNovo),
		lead("2", entity.StatusNovo),
		lead("3", entity.StatusNovo),
	}
	order := entity.NewColumnOrder()
	order[entity.ColunaNovo] = []string{"3", "1", "2"}

	out := Project(entity.ColunaNovo, leads, order)

	assert.Equal(t, []string{"3", "1", "2"}, idsOf(out))
}

func TestProjectFallsBackToNaturalOrder(t *testing.T) {
	leads := []entity.Lead{
		lead("1", entity.StatusContato),
		lead("2", entity.StatusNovo),
		lead("3", entity.StatusContato),
	}

	// Coluna sem ordenação registrada: ordem da coleção.
	out := Project(entity.ColunaContato, leads, entity.NewColumnOrder())

	assert.Equal(t, []string{"1", "3"}, idsOf(out))
}

func TestProjectDropsStaleIDs(t *testing.T) {
	leads := []entity.Lead{lead("1", entity.StatusNovo)}
	order := entity.NewColumnOrder()
	order[entity.ColunaNovo] = []string{"sumiu", "1", "tambem-sumiu"}

	out := Project(entity.ColunaNovo, leads, order)

	assert.Equal(t, []string{"1"}, idsOf(out))
}

// Leads da coluna ainda fora da ordenação entram no fim (janela até a
// próxima reconciliação).
func TestProjectAppendsUnorderedMembers(t *testing.T) {
	leads := []entity.Lead{
		lead("novo", entity.StatusNovo),
		lead("1", entity.StatusNovo),
	}
	order := entity.NewColumnOrder()
	order[entity.ColunaNovo] = []string{"1"}

	out := Project(entity.ColunaNovo, leads, order)

	assert.Equal(t, []string{"1", "novo"}, idsOf(out))
}

// Determinismo e dedup mesmo com dados sujos dos dois lados.
func TestProjectDeduplicates(t *testing.T) {
	leads := []entity.Lead{
		lead("1", entity.StatusNovo),
		lead("1", entity.StatusNovo), // duplicata na coleção
		lead("2", entity.StatusNovo),
	}
	order := entity.NewColumnOrder()
	order[entity.ColunaNovo] = []string{"2", "2", "1"}

	out := Project(entity.ColunaNovo, leads, order)

	assert.Equal(t, []string{"2", "1"}, idsOf(out))

	seen := map[string]bool{}
	for _, l := range out {
		assert.False(t, seen[l.ID], "id duplicado na projeção: %s", l.ID)
		seen[l.ID] = true
	}
}

func TestProjectEmptyColumn(t *testing.T) {
	out := Project(entity.ColunaVisita, nil, entity.NewColumnOrder())
	assert.Empty(t, out)
}
