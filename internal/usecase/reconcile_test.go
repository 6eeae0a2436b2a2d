package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/imobsites/crm-board/internal/entity"
)

func lead(id string, status entity.StatusLead) entity.Lead {
	return entity.Lead{ID: id, Nome: "Lead " + id, StatusLead: status, Temperatura: 3}
}

// Cenário ponta a ponta: coleção nova, ordenação vazia.
func TestReconcileFromEmptyOrder(t *testing.T) {
	leads := []entity.Lead{
		lead("1", entity.StatusNovo),
		lead("2", entity.StatusContato),
	}

	res := Reconcile(leads, entity.NewColumnOrder())

	assert.True(t, res.Dirty())
	assert.Equal(t, []string{"1"}, res.Order[entity.ColunaNovo])
	assert.Equal(t, []string{"2"}, res.Order[entity.ColunaContato])
	assert.Empty(t, res.Order[entity.ColunaInteressado])
	assert.Empty(t, res.Order[entity.ColunaVisita])
}

func TestReconcileIsIdempotent(t *testing.T) {
	leads := []entity.Lead{
		lead("a", entity.StatusNovo),
		lead("b", entity.StatusNovo),
		lead("c", entity.StatusVisita),
	}

	first := Reconcile(leads, entity.NewColumnOrder())
	second := Reconcile(leads, first.Order)

	assert.True(t, first.Order.Equal(second.Order))
	assert.False(t, second.Dirty())
}

// Todo lead vivo aparece em exatamente uma coluna: a resolvida pelo status.
func TestReconcileNoLoss(t *testing.T) {
	leads := []entity.Lead{
		lead("1", entity.StatusNovo),
		lead("2", entity.StatusProposta),
		lead("3", entity.StatusPerdido),
		lead("4", entity.StatusVisita),
	}

	res := Reconcile(leads, entity.NewColumnOrder())

	for _, l := range leads {
		want := entity.ResolveColumn(l.StatusLead)
		count := 0
		for _, col := range entity.ColumnIDs() {
			for _, id := range res.Order[col] {
				if id == l.ID {
					count++
					assert.Equal(t, want, col, "lead %s na coluna errada", l.ID)
				}
			}
		}
		assert.Equal(t, 1, count, "lead %s deveria aparecer exatamente uma vez", l.ID)
	}
}

func TestReconcilePreservesManualOrderAndAppendsNew(t *testing.T) {
	current := entity.NewColumnOrder()
	current[entity.ColunaNovo] = []string{"3", "1"} // arranjo manual

	leads := []entity.Lead{
		lead("1", entity.StatusNovo),
		lead("2", entity.StatusNovo), // recém-chegado
		lead("3", entity.StatusNovo),
	}

	res := Reconcile(leads, current)

	// Sobreviventes mantêm a posição escolhida; o novo entra no fim.
	assert.Equal(t, []string{"3", "1", "2"}, res.Order[entity.ColunaNovo])
	assert.Equal(t, []entity.ColumnID{entity.ColunaNovo}, res.Changed)
}

// Lead apagado upstream some de todas as colunas.
func TestReconcilePrunesDeletedLead(t *testing.T) {
	current := entity.NewColumnOrder()
	current[entity.ColunaNovo] = []string{"1", "3"}

	res := Reconcile([]entity.Lead{lead("1", entity.StatusNovo)}, current)

	assert.Equal(t, []string{"1"}, res.Order[entity.ColunaNovo])
	assert.True(t, res.Dirty())
}

func TestReconcileMovesLeadWhoseStatusChanged(t *testing.T) {
	current := entity.NewColumnOrder()
	current[entity.ColunaNovo] = []string{"1", "2"}

	leads := []entity.Lead{
		lead("1", entity.StatusNovo),
		lead("2", entity.StatusContato), // mudou via formulário
	}

	res := Reconcile(leads, current)

	assert.Equal(t, []string{"1"}, res.Order[entity.ColunaNovo])
	assert.Equal(t, []string{"2"}, res.Order[entity.ColunaContato])
}

func TestReconcileDropsDuplicatesFromStaleWrites(t *testing.T) {
	current := entity.NewColumnOrder()
	current[entity.ColunaNovo] = []string{"1", "1", "2"}

	leads := []entity.Lead{
		lead("1", entity.StatusNovo),
		lead("2", entity.StatusNovo),
	}

	res := Reconcile(leads, current)

	assert.Equal(t, []string{"1", "2"}, res.Order[entity.ColunaNovo])
}

func TestReconcileUnchangedColumnsNotReported(t *testing.T) {
	current := entity.NewColumnOrder()
	current[entity.ColunaNovo] = []string{"1"}
	current[entity.ColunaVisita] = []string{"9"}

	leads := []entity.Lead{
		lead("1", entity.StatusNovo),
		lead("9", entity.StatusVisita),
		lead("5", entity.StatusContato),
	}

	res := Reconcile(leads, current)

	assert.Equal(t, []entity.ColumnID{entity.ColunaContato}, res.Changed)
}
