package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Mapeamento total: qualquer status (os 8, vazio ou lixo) resolve para
// exatamente uma das 4 colunas.
func TestResolveColumnIsTotal(t *testing.T) {
	inputs := append([]StatusLead{}, AllStatuses...)
	inputs = append(inputs, StatusLead(""), StatusLead("QUALQUER_COISA"))

	for _, status := range inputs {
		col := ResolveColumn(status)
		assert.True(t, col.Valid(), "status %q resolveu para coluna inválida %q", status, col)
	}
}

func TestResolveColumnDirectStatuses(t *testing.T) {
	assert.Equal(t, ColunaNovo, ResolveColumn(StatusNovo))
	assert.Equal(t, ColunaContato, ResolveColumn(StatusContato))
	assert.Equal(t, ColunaInteressado, ResolveColumn(StatusInteressado))
	assert.Equal(t, ColunaVisita, ResolveColumn(StatusVisita))
}

func TestResolveColumnFunnelTail(t *testing.T) {
	// Estágios pós-interesse continuam visíveis em INTERESSADO.
	assert.Equal(t, ColunaInteressado, ResolveColumn(StatusProposta))
	assert.Equal(t, ColunaInteressado, ResolveColumn(StatusContrato))
	assert.Equal(t, ColunaInteressado, ResolveColumn(StatusFechado))
}

func TestResolveColumnFallbacks(t *testing.T) {
	assert.Equal(t, ColunaNovo, ResolveColumn(StatusPerdido))
	assert.Equal(t, ColunaNovo, ResolveColumn(StatusLead("")))
	assert.Equal(t, ColunaNovo, ResolveColumn(StatusLead("DESCONHECIDO")))
}

func TestTopologyIsFixed(t *testing.T) {
	cols := Topology()
	assert.Len(t, cols, 4)
	assert.Equal(t, []ColumnID{ColunaNovo, ColunaContato, ColunaInteressado, ColunaVisita}, ColumnIDs())

	for i, col := range cols {
		assert.Equal(t, ColumnIDs()[i], col.ID)
		assert.NotEmpty(t, col.Titulo)
		assert.NotEmpty(t, col.Cor)
	}
}

func TestColumnStatusRoundTrip(t *testing.T) {
	for _, col := range ColumnIDs() {
		assert.Equal(t, col, ResolveColumn(col.Status()))
	}
}

func TestNewLeadDefaults(t *testing.T) {
	lead, err := NewLead("Maria Souza", "maria@email.com", "(61) 99876-1020")
	assert.NoError(t, err)
	assert.NotEmpty(t, lead.ID)
	assert.Equal(t, StatusNovo, lead.StatusLead)
	assert.Equal(t, 3, lead.Temperatura)

	_, err = NewLead("", "sem-nome@email.com", "")
	assert.Error(t, err)
}

func TestColumnOrderCloneIsDeep(t *testing.T) {
	order := NewColumnOrder()
	order[ColunaNovo] = []string{"1", "2"}

	clone := order.Clone()
	clone[ColunaNovo][0] = "trocado"

	assert.Equal(t, "1", order[ColunaNovo][0])
	assert.True(t, order.ColumnEqual(order, ColunaNovo))
	assert.False(t, order.Equal(clone))
}
