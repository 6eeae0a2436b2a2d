package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/imobsites/crm-board/internal/entity"
)

func TestParseLeadsDropsRecordsWithoutID(t *testing.T) {
	out := ParseLeads([]LeadPayload{
		{ID: "", Nome: "Sem ID"},
		{ID: "1", Nome: "Com ID", StatusLead: "NOVO", Temperatura: 3},
	})

	assert.Len(t, out, 1)
	assert.Equal(t, "1", out[0].ID)
}

func TestParseLeadsKeepsFirstDuplicate(t *testing.T) {
	out := ParseLeads([]LeadPayload{
		{ID: "1", Nome: "Primeiro", Temperatura: 3},
		{ID: "1", Nome: "Segundo", Temperatura: 3},
	})

	assert.Len(t, out, 1)
	assert.Equal(t, "Primeiro", out[0].Nome)
}

func TestParseLeadsClampsTemperatura(t *testing.T) {
	out := ParseLeads([]LeadPayload{
		{ID: "1", Nome: "Frio", Temperatura: -2},
		{ID: "2", Nome: "Quente", Temperatura: 42},
	})

	assert.Equal(t, 1, out[0].Temperatura)
	assert.Equal(t, 5, out[1].Temperatura)
}

func TestParseLeadsDates(t *testing.T) {
	out := ParseLeads([]LeadPayload{{
		ID:             "1",
		Nome:           "Com datas",
		Temperatura:    3,
		CreatedAt:      "2026-03-10T14:30:00Z",
		ProximoContato: "2026-03-15",
		Prazo:          "não é data",
	}})

	assert.Equal(t, 2026, out[0].CreatedAt.Year())
	assert.NotNil(t, out[0].ProximoContato)
	assert.Nil(t, out[0].Prazo)
}

func TestParseLeadsInvalidEmailIgnored(t *testing.T) {
	out := ParseLeads([]LeadPayload{
		{ID: "1", Nome: "A", Email: "isso não é email", Temperatura: 3},
		{ID: "2", Nome: "B", Email: "b@email.com", Temperatura: 3},
	})

	assert.Empty(t, out[0].Email)
	assert.Equal(t, "b@email.com", out[1].Email)
}

// Status desconhecido passa adiante: quem decide coluna é o mapeador.
func TestParseLeadsUnknownStatusPassesThrough(t *testing.T) {
	out := ParseLeads([]LeadPayload{
		{ID: "1", Nome: "A", StatusLead: "QUALQUER", Temperatura: 3},
	})

	assert.Equal(t, entity.StatusLead("QUALQUER"), out[0].StatusLead)
	assert.Equal(t, entity.ColunaNovo, entity.ResolveColumn(out[0].StatusLead))
}
